// Command gavelmatch reconciles committee channel videos with official
// registry events and manages the resulting verdicts.
package main
