// Package sparse builds the document-term matrix consumed by the lasso
// classifier: rows are training documents, columns are lemmas, cells are
// raw occurrence counts.
//
// Layout is column-major (CSC-style postings): each column stores the
// sorted row indices where its lemma occurs plus the matching counts.
// Coordinate descent walks one coefficient — one column — at a time, so
// column access is the hot path.
//
// Determinism and restriction rules:
//   - columns are the lemmas observed in the TRAINING documents only,
//     ordered lexicographically; test-only lemmas never become features.
//   - rows are the training ids that produced at least one token, in the
//     order the caller supplied them. Documents with zero training
//     tokens are absent, not zero-filled — align labels via Labels.
//
// Errors:
//   - ErrEmptyVocabulary — no token fell inside the training id set.
package sparse
