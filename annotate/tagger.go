package annotate

import "strings"

// closedClass maps function words to their tags; checked before any
// suffix heuristic so "during" never becomes a VERB.
var closedClass = map[string]string{
	// determiners
	"a": "DET", "an": "DET", "the": "DET", "this": "DET", "that": "DET",
	"these": "DET", "those": "DET", "every": "DET", "no": "DET",
	// pronouns
	"i": "PRON", "me": "PRON", "my": "PRON", "we": "PRON", "us": "PRON",
	"our": "PRON", "you": "PRON", "ye": "PRON", "thou": "PRON", "thee": "PRON",
	"thy": "PRON", "thine": "PRON", "he": "PRON", "him": "PRON", "his": "PRON",
	"she": "PRON", "her": "PRON", "it": "PRON", "its": "PRON", "they": "PRON",
	"them": "PRON", "their": "PRON", "who": "PRON", "whom": "PRON", "which": "PRON",
	"what": "PRON", "himself": "PRON", "herself": "PRON", "themselves": "PRON",
	// adpositions
	"of": "ADP", "in": "ADP", "on": "ADP", "at": "ADP", "by": "ADP",
	"to": "ADP", "from": "ADP", "with": "ADP", "unto": "ADP", "upon": "ADP",
	"into": "ADP", "over": "ADP", "under": "ADP", "through": "ADP",
	"before": "ADP", "after": "ADP", "during": "ADP", "against": "ADP",
	"among": "ADP", "between": "ADP",
	// conjunctions
	"and": "CONJ", "or": "CONJ", "but": "CONJ", "nor": "CONJ", "for": "CONJ",
	"so": "CONJ", "yet": "CONJ", "if": "CONJ", "because": "CONJ",
	"while": "CONJ", "when": "CONJ", "though": "CONJ", "although": "CONJ",
	// frequent verbs that defeat suffix rules
	"is": "VERB", "am": "VERB", "are": "VERB", "was": "VERB", "were": "VERB",
	"be": "VERB", "been": "VERB", "hath": "VERB", "hast": "VERB", "have": "VERB",
	"has": "VERB", "had": "VERB", "do": "VERB", "doth": "VERB", "did": "VERB",
	"shall": "VERB", "will": "VERB", "may": "VERB", "might": "VERB",
	"can": "VERB", "could": "VERB", "should": "VERB", "would": "VERB",
	"said": "VERB", "saith": "VERB",
	// frequent adverbs
	"not": "ADV", "verily": "ADV", "then": "ADV", "there": "ADV",
	"here": "ADV", "now": "ADV", "also": "ADV", "again": "ADV",
	"even": "ADV", "therefore": "ADV", "thus": "ADV",
}

// suffixRules are checked longest-first against the surface form.
var suffixRules = []struct {
	suffix string
	tag    string
}{
	{"ingly", "ADV"},
	{"fully", "ADV"},
	{"ly", "ADV"},
	{"eth", "VERB"}, // abideth, loveth
	{"est", "VERB"}, // lovest, knowest
	{"ing", "VERB"},
	{"ed", "VERB"},
	{"ize", "VERB"},
	{"ise", "VERB"},
	{"ous", "ADJ"},
	{"ful", "ADJ"},
	{"ive", "ADJ"},
	{"able", "ADJ"},
	{"ible", "ADJ"},
	{"less", "ADJ"},
	{"ish", "ADJ"},
	{"al", "ADJ"},
}

// tagOf assigns a part-of-speech tag to a lowercase surface word:
// closed-class lexicon first, then suffix heuristics, default NOUN.
// closed reports a lexicon hit, whose lemma should stay unstemmed.
func tagOf(word string) (tag string, closed bool) {
	if tag, ok := closedClass[word]; ok {
		return tag, true
	}
	for _, rule := range suffixRules {
		// The suffix must leave a plausible stem behind.
		if len(word) > len(rule.suffix)+2 && strings.HasSuffix(word, rule.suffix) {
			return rule.tag, false
		}
	}

	return "NOUN", false
}
