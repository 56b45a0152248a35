package corpus_test

import (
	"testing"

	"github.com/andrewheiss/tidytext-pos-john/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokensOf builds tokens from compact (doc, lemma, pos) rows.
func tokensOf(rows ...[3]string) []corpus.Token {
	var out []corpus.Token
	for _, r := range rows {
		out = append(out, corpus.Token{DocumentID: r[0], Lemma: r[1], POS: r[2]})
	}

	return out
}

// TestCount_AggregatesByGroupLemmaPOS verifies one record per distinct
// (group, lemma, pos) with the exact occurrence count.
func TestCount_AggregatesByGroupLemmaPOS(t *testing.T) {
	groups := corpus.Groups([]corpus.Document{
		{DocumentID: "d1", Group: "john"},
		{DocumentID: "d2", Group: "john"},
		{DocumentID: "d3", Group: "acts"},
	})
	tokens := tokensOf(
		[3]string{"d1", "love", "VERB"},
		[3]string{"d1", "love", "VERB"},
		[3]string{"d2", "love", "VERB"},
		[3]string{"d2", "love", "NOUN"},
		[3]string{"d3", "love", "VERB"},
	)

	recs, err := corpus.Count(tokens, groups)
	require.NoError(t, err)
	require.Len(t, recs, 3, "three distinct (group, lemma, pos) cells")

	got := make(map[corpus.CountRecord]bool, len(recs))
	for _, r := range recs {
		got[r] = true
	}
	assert.True(t, got[corpus.CountRecord{Group: "john", Lemma: "love", POS: "VERB", Count: 3}])
	assert.True(t, got[corpus.CountRecord{Group: "john", Lemma: "love", POS: "NOUN", Count: 1}])
	assert.True(t, got[corpus.CountRecord{Group: "acts", Lemma: "love", POS: "VERB", Count: 1}])
}

// TestCount_GroupTotalsMatchTokenTotals checks the invariant
// sum(Count over a group) == total tokens observed for that group.
func TestCount_GroupTotalsMatchTokenTotals(t *testing.T) {
	groups := corpus.GroupMap{"a": "g1", "b": "g1", "c": "g2"}
	tokens := []corpus.Token{
		{DocumentID: "a", Lemma: "x", POS: "NOUN"},
		{DocumentID: "a", Lemma: "y", POS: "NOUN"},
		{DocumentID: "b", Lemma: "x", POS: "VERB"},
		{DocumentID: "c", Lemma: "z", POS: "NOUN"},
		{DocumentID: "c", Lemma: "z", POS: "NOUN"},
	}

	recs, err := corpus.Count(tokens, groups)
	require.NoError(t, err)

	totals := make(map[string]int)
	for _, r := range recs {
		totals[r.Group] += r.Count
	}
	assert.Equal(t, 3, totals["g1"], "g1 saw three tokens")
	assert.Equal(t, 2, totals["g2"], "g2 saw two tokens")
}

// TestCount_UnmappedDocument ensures referential-integrity violations
// surface as ErrUnmappedDocument rather than being silently dropped.
func TestCount_UnmappedDocument(t *testing.T) {
	groups := corpus.GroupMap{"known": "g"}
	tokens := []corpus.Token{
		{DocumentID: "known", Lemma: "x", POS: "NOUN"},
		{DocumentID: "ghost", Lemma: "y", POS: "NOUN"},
	}

	_, err := corpus.Count(tokens, groups)
	assert.ErrorIs(t, err, corpus.ErrUnmappedDocument)
	assert.ErrorContains(t, err, "ghost", "error names the offending document")
}

// TestCount_EmptyInput returns an empty record set, not an error.
func TestCount_EmptyInput(t *testing.T) {
	recs, err := corpus.Count(nil, corpus.GroupMap{})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// TestPerDocumentCounts_CollapsesPOS verifies lemma counts merge across
// part-of-speech variants within one document.
func TestPerDocumentCounts_CollapsesPOS(t *testing.T) {
	tokens := []corpus.Token{
		{DocumentID: "d1", Lemma: "love", POS: "VERB"},
		{DocumentID: "d1", Lemma: "love", POS: "NOUN"},
		{DocumentID: "d2", Lemma: "light", POS: "NOUN"},
	}

	byDoc := corpus.PerDocumentCounts(tokens)
	require.Len(t, byDoc, 2)
	assert.Equal(t, map[string]int{"love": 2}, byDoc["d1"])
	assert.Equal(t, map[string]int{"light": 1}, byDoc["d2"])
}

// TestGroupMap_Lookup covers the trivial GroupSource implementation.
func TestGroupMap_Lookup(t *testing.T) {
	g := corpus.Groups([]corpus.Document{{DocumentID: "d", Group: "john"}})

	grp, ok := g.Group("d")
	assert.True(t, ok)
	assert.Equal(t, "john", grp)

	_, ok = g.Group("missing")
	assert.False(t, ok)
}
