package dictionary

import "strings"

// Candidate is a single resolvable name pair handed to pickers.
type Candidate struct {
	JA string
	EN string
}

// Index is the process-local resolution index derived from one
// Dictionary. It is read-only after construction; a refreshed
// dictionary is reloaded into a new Index, never patched in place.
type Index struct {
	names   map[string]string
	entries []Entry
}

// NewIndex builds the lookup index in O(n). When two entries share a
// Japanese name the later entry wins, matching the documented
// exact-lookup ambiguity of the data format.
func NewIndex(dict *Dictionary) *Index {
	names := make(map[string]string, len(dict.Entries))
	for _, entry := range dict.Entries {
		names[entry.JA] = entry.EN
	}
	return &Index{names: names, entries: dict.Entries}
}

// Exact returns the English name for a case-sensitive, unnormalized
// match against the Japanese name.
func (idx *Index) Exact(query string) (string, bool) {
	english, ok := idx.names[query]
	return english, ok
}

// Partial returns every entry whose lower-cased Japanese name contains
// the lower-cased query. An empty query matches all entries. Results
// follow record order; callers that need another ordering sort downstream.
func (idx *Index) Partial(query string) []Candidate {
	queryLower := strings.ToLower(query)

	var matches []Candidate
	for _, entry := range idx.entries {
		if strings.Contains(strings.ToLower(entry.JA), queryLower) {
			matches = append(matches, Candidate{JA: entry.JA, EN: entry.EN})
		}
	}
	return matches
}

// AllEntries returns every entry in record order.
func (idx *Index) AllEntries() []Candidate {
	all := make([]Candidate, 0, len(idx.entries))
	for _, entry := range idx.entries {
		all = append(all, Candidate{JA: entry.JA, EN: entry.EN})
	}
	return all
}

// SpeciesID returns the species id of the first entry, in record order,
// whose English name equals the query. If that entry carries no id the
// result is absent, even when a later duplicate has one.
func (idx *Index) SpeciesID(englishName string) (uint, bool) {
	for _, entry := range idx.entries {
		if entry.EN != englishName {
			continue
		}
		if entry.ID == nil {
			return 0, false
		}
		return *entry.ID, true
	}
	return 0, false
}

// Len returns the number of distinct Japanese names in the index.
func (idx *Index) Len() int {
	return len(idx.names)
}
