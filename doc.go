// Package tidytextpos discovers which lemmatized words most strongly
// distinguish one group of documents from the rest of a tagged corpus.
//
// 🚀 What does it do?
//
//	Given annotated tokens (lemma + part of speech per document) and a
//	group label per document, the library answers two questions:
//	  • Which words are most distinctive to each group? (tf-idf ranking)
//	  • Which words best *predict* membership in a target group?
//	    (cross-validated L1/LASSO logistic regression)
//
// ✨ Pipeline, leaf-first:
//
//	corpus/   — token counting over (group, lemma, part-of-speech)
//	tfidf/    — term-frequency × inverse-document-frequency ranking
//	split/    — reproducible seeded train/test partitioning
//	sparse/   — column-major document-term matrix over the training set
//	lasso/    — coordinate-descent LASSO path + k-fold cross-validation,
//	            lambda_min / lambda_1se selection, coefficient ranking
//	annotate/ — a bundled tokenizer/lemmatizer/POS-tagger satisfying the
//	            corpus.Annotator capability (swap in your own NLP stack)
//
// Everything is deterministic: same inputs and seed ⇒ identical output,
// whether cross-validation folds run sequentially or in parallel.
//
// The packages are pure computation — no I/O, no logging, no globals.
// See cmd/posterms for the CLI that wires them to a directory of text files.
package tidytextpos
