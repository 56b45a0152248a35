package corpus

import "errors"

// ErrUnmappedDocument is returned when a token's document id has no group
// in the supplied document metadata.
var ErrUnmappedDocument = errors.New("corpus: token references unmapped document id")

// Token is one annotated word occurrence, as produced by an Annotator.
// Many tokens share a DocumentID; Tokens are value-like and never mutated.
type Token struct {
	// DocumentID identifies the source document.
	DocumentID string

	// Lemma is the normalized base form of the word ("abideth" → "abide").
	Lemma string

	// POS is the part-of-speech tag assigned by the annotator
	// (e.g. "NOUN", "VERB"); the tag set is the annotator's own.
	POS string
}

// Document carries the group membership of one document. Exactly one
// group per document id; the group is the unit of tf-idf aggregation
// and the classification target.
type Document struct {
	DocumentID string
	Group      string
}

// CountRecord is the aggregate of all tokens sharing one
// (group, lemma, part-of-speech) combination. Count ≥ 1 always:
// combinations that never occur simply have no record.
type CountRecord struct {
	Group string
	Lemma string
	POS   string
	Count int
}

// Annotator produces annotated tokens for one input document.
// Implementations must tag every returned Token with the given docID.
type Annotator interface {
	Annotate(docID, text string) ([]Token, error)
}

// GroupSource resolves a document id to its group label.
// The second result is false when the id is unknown.
type GroupSource interface {
	Group(docID string) (string, bool)
}

// GroupMap is the trivial map-backed GroupSource.
type GroupMap map[string]string

// Group implements GroupSource.
func (g GroupMap) Group(docID string) (string, bool) {
	grp, ok := g[docID]

	return grp, ok
}

// Groups builds a GroupMap from document metadata. Later duplicates of
// the same document id overwrite earlier ones.
func Groups(docs []Document) GroupMap {
	g := make(GroupMap, len(docs))
	for _, d := range docs {
		g[d.DocumentID] = d.Group
	}

	return g
}
