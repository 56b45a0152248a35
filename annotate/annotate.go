package annotate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/andrewheiss/tidytext-pos-john/corpus"
	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

// wordRe extracts word runs, keeping internal apostrophes ("spirit's").
var wordRe = regexp.MustCompile(`[a-z]+(?:'[a-z]+)*`)

// Annotator tokenizes raw text into corpus.Tokens. The zero value is
// not usable; construct with New. Safe for concurrent use.
type Annotator struct {
	minLen int
}

// New returns an Annotator that drops tokens shorter than two letters.
func New() *Annotator {
	return &Annotator{minLen: 2}
}

// Annotate implements corpus.Annotator: NFC-normalize, lowercase,
// extract word runs, tag each word, then lemmatize via Snowball
// stemming. Numbers are tagged NUM and kept verbatim.
func (a *Annotator) Annotate(docID, text string) ([]corpus.Token, error) {
	clean := norm.NFC.String(strings.ToLower(text))

	var out []corpus.Token
	for _, field := range strings.FieldsFunc(clean, isSeparator) {
		if isNumeric(field) {
			out = append(out, corpus.Token{DocumentID: docID, Lemma: field, POS: "NUM"})

			continue
		}
		for _, word := range wordRe.FindAllString(field, -1) {
			if len(word) < a.minLen {
				continue
			}
			pos, closed := tagOf(word)
			lemma := word
			// Closed-class words keep their surface form; stemming "during"
			// to "dur" would only harm downstream counting.
			if !closed {
				stem, err := snowball.Stem(word, "english", true)
				if err != nil {
					return nil, fmt.Errorf("annotate: stem %q: %w", word, err)
				}
				if stem != "" {
					lemma = stem
				}
			}
			out = append(out, corpus.Token{DocumentID: docID, Lemma: lemma, POS: pos})
		}
	}

	return out, nil
}

// isSeparator splits on anything that is not letter, digit or apostrophe.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
}

// isNumeric reports whether s is all digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
