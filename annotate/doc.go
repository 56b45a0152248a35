// Package annotate is a small, self-contained implementation of the
// corpus.Annotator capability: tokenize, lemmatize, tag.
//
// It is deliberately modest — a Snowball stem stands in for a true
// lemma, and part-of-speech tags come from a closed-class lexicon plus
// suffix heuristics (including the archaic -eth/-est verb endings found
// in older English corpora). That is good enough to drive the pipeline
// end to end from plain text; callers with a real NLP stack should wrap
// it behind corpus.Annotator instead and ignore this package.
//
// The tag set: NOUN, VERB, ADJ, ADV, DET, PRON, ADP, CONJ, NUM.
package annotate
