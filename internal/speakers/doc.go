// Package speakers resolves hand-entered speaker labels to canonical
// identities.
//
// Caption operators type speaker names by hand, so typos are routine. The
// Resolver corrects a raw label by picking the known name with the lowest
// Levenshtein edit distance, and memoizes each answer so a given typo is
// only ever scored once per run.
package speakers
