// Package tfidf scores how distinctive each lemma is to each document
// group, using term-frequency × inverse-document-frequency.
//
// Definitions (counts kept per (group, lemma, part-of-speech) cell, so
// that ranking can later be filtered by part of speech):
//
//	tf      = count / total tokens in the group
//	df(l)   = number of distinct groups where lemma l appears at all
//	idf(l)  = ln(number of groups / df(l))
//	tf_idf  = tf × idf
//
// A lemma that appears in every group has idf = ln(1) = 0 and therefore
// tf_idf = 0 regardless of tf. That is the intended degenerate case, not
// an error: such a word carries no group-distinguishing signal.
//
// Score is deterministic and idempotent — records sort descending by
// tf_idf with lemma, then part of speech, then group as tie-breakers, so
// re-scoring the same counts yields byte-identical output.
package tfidf
