package corpus

import "fmt"

// countKey is the accumulation key for one (group, lemma, pos) cell.
type countKey struct {
	group string
	lemma string
	pos   string
}

// Count aggregates tokens into one CountRecord per distinct
// (group, lemma, part-of-speech) combination, joining each token to its
// group through groups.
//
// Output order is unspecified (map iteration); downstream stages must
// sort explicitly. Returns ErrUnmappedDocument (wrapped with the
// offending id) if any token's document id is absent from groups.
//
// Complexity: O(len(tokens)) time, O(distinct combinations) space.
func Count(tokens []Token, groups GroupSource) ([]CountRecord, error) {
	acc := make(map[countKey]int)
	for _, t := range tokens {
		grp, ok := groups.Group(t.DocumentID)
		if !ok {
			return nil, fmt.Errorf("document %q: %w", t.DocumentID, ErrUnmappedDocument)
		}
		acc[countKey{group: grp, lemma: t.Lemma, pos: t.POS}]++
	}

	out := make([]CountRecord, 0, len(acc))
	for k, n := range acc {
		out = append(out, CountRecord{Group: k.group, Lemma: k.lemma, POS: k.pos, Count: n})
	}

	return out, nil
}

// PerDocumentCounts collapses tokens into per-document lemma counts,
// ignoring part of speech. This is the shape the sparse feature builder
// consumes; group metadata is not needed here.
func PerDocumentCounts(tokens []Token) map[string]map[string]int {
	byDoc := make(map[string]map[string]int)
	for _, t := range tokens {
		m, ok := byDoc[t.DocumentID]
		if !ok {
			m = make(map[string]int)
			byDoc[t.DocumentID] = m
		}
		m[t.Lemma]++
	}

	return byDoc
}
