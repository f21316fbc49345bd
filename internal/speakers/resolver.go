package speakers

import (
	"scribe/internal/textutil"
)

// Correction records one inferred raw-to-canonical mapping.
type Correction struct {
	Raw       string `json:"raw"`
	Canonical string `json:"canonical"`
}

// Resolver maps raw speaker labels to canonical names from a fixed roster.
// State ownership is explicit: the resolver owns its memoization cache and
// holds the roster as read-only reference data. A resolver is scoped to one
// caption file; it is not safe for concurrent use and is not meant to be.
type Resolver struct {
	roster      Roster
	infer       bool
	cache       map[string]string
	corrections []Correction
}

// NewResolver builds a resolver over the given roster. The cache is seeded
// with an identity entry for every known name, so exact matches never reach
// the edit-distance scan. When infer is false the resolver is a passthrough.
func NewResolver(roster Roster, infer bool) *Resolver {
	cache := make(map[string]string, len(roster))
	for _, name := range roster {
		cache[name] = name
	}
	return &Resolver{
		roster: roster,
		infer:  infer,
		cache:  cache,
	}
}

// Resolve returns the canonical identity for a raw label. Results are
// memoized: once a label has been resolved its mapping never changes within
// the run, and repeat lookups are cache hits.
func (r *Resolver) Resolve(raw string) string {
	if !r.infer {
		return raw
	}
	if canonical, ok := r.cache[raw]; ok {
		return canonical
	}
	canonical := r.closestMatch(raw)
	r.cache[raw] = canonical
	r.corrections = append(r.corrections, Correction{Raw: raw, Canonical: canonical})
	return canonical
}

// Corrections returns every non-identity mapping inferred so far, in the
// order the raw labels were first seen.
func (r *Resolver) Corrections() []Correction {
	return r.corrections
}

// closestMatch scans the whole roster for the lowest edit distance. Ties go
// to the earlier roster entry, which keeps the answer deterministic. The
// roster always contains at least the Unknown sentinel, so a best candidate
// always exists.
func (r *Resolver) closestMatch(raw string) string {
	best := r.roster[0]
	bestDistance := textutil.Levenshtein(raw, best)
	for _, candidate := range r.roster[1:] {
		if distance := textutil.Levenshtein(raw, candidate); distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}
