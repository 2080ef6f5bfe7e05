// Package textutil provides the text primitives behind title matching:
// normalization of noisy event titles (case folding, boilerplate prefixes,
// stopwords), term-frequency fingerprints, and cosine similarity between
// fingerprints.
//
// Tokenization lowercases text, splits on non-alphanumeric characters, and
// filters stopwords and single-character tokens. Normalized titles of the
// same real-world event compare close to 1.0 even when the two sources word
// them differently.
package textutil
