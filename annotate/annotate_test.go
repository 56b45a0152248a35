package annotate_test

import (
	"testing"

	"github.com/andrewheiss/tidytext-pos-john/annotate"
	"github.com/andrewheiss/tidytext-pos-john/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The package must satisfy the pipeline's capability interface.
var _ corpus.Annotator = (*annotate.Annotator)(nil)

// findLemmas collects the lemmas of all tokens carrying a given tag.
func findLemmas(tokens []corpus.Token, pos string) []string {
	var out []string
	for _, t := range tokens {
		if t.POS == pos {
			out = append(out, t.Lemma)
		}
	}

	return out
}

// TestAnnotate_TokensCarryDocID: every token is tagged with the id it
// was produced for.
func TestAnnotate_TokensCarryDocID(t *testing.T) {
	tokens, err := annotate.New().Annotate("john-3", "For God so loved the world")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	for _, tok := range tokens {
		assert.Equal(t, "john-3", tok.DocumentID)
	}
}

// TestAnnotate_ArchaicVerbEndings: -eth and -est surface forms tag as
// VERB and stem toward the base form.
func TestAnnotate_ArchaicVerbEndings(t *testing.T) {
	tokens, err := annotate.New().Annotate("d", "he that abideth loveth the light")
	require.NoError(t, err)

	verbs := findLemmas(tokens, "VERB")
	assert.Len(t, verbs, 2, "abideth and loveth must be tagged VERB")
}

// TestAnnotate_ClosedClassBeatsSuffix: "during" ends in -ing but is an
// adposition, "the" is a determiner, "verily" an adverb.
func TestAnnotate_ClosedClassBeatsSuffix(t *testing.T) {
	tokens, err := annotate.New().Annotate("d", "verily during the night")
	require.NoError(t, err)

	assert.Contains(t, findLemmas(tokens, "ADP"), "during")
	assert.Contains(t, findLemmas(tokens, "DET"), "the")
	assert.NotEmpty(t, findLemmas(tokens, "ADV"))
}

// TestAnnotate_CaseAndPunctuation: normalization folds case and strips
// punctuation before tokenizing.
func TestAnnotate_CaseAndPunctuation(t *testing.T) {
	a, err := annotate.New().Annotate("d", "Light, LIGHT; (light)!")
	require.NoError(t, err)
	require.Len(t, a, 3)
	for _, tok := range a {
		assert.Equal(t, a[0].Lemma, tok.Lemma, "all three spellings share a lemma")
	}
}

// TestAnnotate_Numbers keeps digit runs as NUM tokens.
func TestAnnotate_Numbers(t *testing.T) {
	tokens, err := annotate.New().Annotate("d", "chapter 3 verse 16")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"3", "16"}, findLemmas(tokens, "NUM"))
}

// TestAnnotate_ShortTokensDropped: single letters vanish.
func TestAnnotate_ShortTokensDropped(t *testing.T) {
	tokens, err := annotate.New().Annotate("d", "o I x light")
	require.NoError(t, err)
	for _, tok := range tokens {
		if tok.POS != "NUM" {
			assert.GreaterOrEqual(t, len(tok.Lemma), 1)
			assert.NotEqual(t, "o", tok.Lemma)
			assert.NotEqual(t, "x", tok.Lemma)
		}
	}
}

// TestAnnotate_EmptyText yields no tokens and no error.
func TestAnnotate_EmptyText(t *testing.T) {
	tokens, err := annotate.New().Annotate("d", "   \n\t ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

// TestAnnotate_Deterministic: same text, same tokens, same order.
func TestAnnotate_Deterministic(t *testing.T) {
	const text = "In the beginning was the Word, and the Word was with God"
	a, err := annotate.New().Annotate("d", text)
	require.NoError(t, err)
	b, err := annotate.New().Annotate("d", text)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
