// Package services holds the error taxonomy shared by the matching pipeline
// and its external collaborators. Errors are tagged with sentinel markers so
// callers can classify failures (transient vs contract violation vs input
// defect) without string matching.
package services
