// Package textutil provides text processing utilities for edit-distance
// matching and filename sanitization.
//
// The primary use cases are:
//   - Computing the Levenshtein distance between a noisy label and known
//     candidate strings
//   - Sanitizing filenames and path segments for safe filesystem use
package textutil
