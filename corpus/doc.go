// Package corpus defines the annotated-token data model shared by the
// whole pipeline and performs the first aggregation step: collapsing raw
// (document, lemma, part-of-speech) tokens into per-group counts.
//
// The package also declares the two capability interfaces through which
// external collaborators enter the system:
//
//   - Annotator   — produces Tokens for a (documentID, text) pair.
//     Tokenization, lemmatization and tagging live behind this boundary;
//     any conforming implementation may be substituted (see annotate/).
//   - GroupSource — answers "which group does this document belong to?".
//
// Aggregation is a single pass of mapping-keyed accumulation: one map
// from (group, lemma, pos) to a running count. Output order is
// unspecified; downstream stages sort explicitly.
//
// Errors:
//   - ErrUnmappedDocument — a token references a document id with no
//     group metadata (referential-integrity violation).
package corpus
