package sparse

import (
	"errors"
	"fmt"
	"sort"

	"github.com/andrewheiss/tidytext-pos-john/corpus"
)

// ErrEmptyVocabulary is returned when no token belongs to any training
// document, leaving the matrix without a single feature column.
var ErrEmptyVocabulary = errors.New("sparse: no tokens in training set, vocabulary is empty")

// column is one lemma's postings: parallel slices of row index and count,
// sorted ascending by row.
type column struct {
	rows []int
	vals []float64
}

// Matrix is an immutable document-term count matrix in column-major
// (CSC) form. Construct with Build; the zero value is not usable.
type Matrix struct {
	docIDs []string // row index → document id
	terms  []string // column index → lemma, lexicographic
	cols   []column
	nnz    int
}

// Build constructs the training document-term matrix.
//
// Only tokens whose document id is in trainIDs contribute. Rows keep the
// order of trainIDs, skipping ids with zero qualifying tokens; columns
// are the surviving lemmas in lexicographic order. Cell values are raw
// counts as float64.
//
// Returns ErrEmptyVocabulary when nothing qualifies.
//
// Complexity: O(len(tokens) + nnz·log nnz) time.
func Build(tokens []corpus.Token, trainIDs []string) (*Matrix, error) {
	inTrain := make(map[string]bool, len(trainIDs))
	for _, id := range trainIDs {
		inTrain[id] = true
	}

	// Per-document lemma counts, restricted to the training ids.
	byDoc := make(map[string]map[string]int)
	for _, t := range tokens {
		if !inTrain[t.DocumentID] {
			continue
		}
		m, ok := byDoc[t.DocumentID]
		if !ok {
			m = make(map[string]int)
			byDoc[t.DocumentID] = m
		}
		m[t.Lemma]++
	}
	if len(byDoc) == 0 {
		return nil, ErrEmptyVocabulary
	}

	// Rows: caller-supplied order, zero-token ids silently absent.
	docIDs := make([]string, 0, len(byDoc))
	for _, id := range trainIDs {
		if _, ok := byDoc[id]; ok {
			docIDs = append(docIDs, id)
		}
	}

	// Columns: lexicographic vocabulary over surviving lemmas.
	termSet := make(map[string]int)
	for _, counts := range byDoc {
		for lemma := range counts {
			termSet[lemma] = -1
		}
	}
	terms := make([]string, 0, len(termSet))
	for lemma := range termSet {
		terms = append(terms, lemma)
	}
	sort.Strings(terms)
	for j, lemma := range terms {
		termSet[lemma] = j
	}

	cols := make([]column, len(terms))
	nnz := 0
	for i, id := range docIDs {
		for lemma, n := range byDoc[id] {
			j := termSet[lemma]
			cols[j].rows = append(cols[j].rows, i)
			cols[j].vals = append(cols[j].vals, float64(n))
			nnz++
		}
	}
	// Row indices land in map-iteration order per column; sort each
	// column's postings so iteration order is reproducible.
	for j := range cols {
		c := &cols[j]
		sort.Sort(&byRow{c.rows, c.vals})
	}

	return &Matrix{docIDs: docIDs, terms: terms, cols: cols, nnz: nnz}, nil
}

// byRow co-sorts a column's (rows, vals) postings by row index.
type byRow struct {
	rows []int
	vals []float64
}

func (s *byRow) Len() int           { return len(s.rows) }
func (s *byRow) Less(i, j int) bool { return s.rows[i] < s.rows[j] }
func (s *byRow) Swap(i, j int) {
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

// Rows returns the row document ids in matrix order. The slice is shared;
// callers must not modify it.
func (m *Matrix) Rows() []string { return m.docIDs }

// Terms returns the column lemmas in matrix order (lexicographic).
// The slice is shared; callers must not modify it.
func (m *Matrix) Terms() []string { return m.terms }

// NumRows returns the number of document rows.
func (m *Matrix) NumRows() int { return len(m.docIDs) }

// NumTerms returns the number of feature columns.
func (m *Matrix) NumTerms() int { return len(m.terms) }

// Column returns column j's postings: the sorted row indices holding a
// non-zero count and the counts themselves. Shared slices; read-only.
func (m *Matrix) Column(j int) (rows []int, vals []float64) {
	c := m.cols[j]

	return c.rows, c.vals
}

// Density reports nnz / (rows × cols); 0 for a degenerate shape.
func (m *Matrix) Density() float64 {
	cells := m.NumRows() * m.NumTerms()
	if cells == 0 {
		return 0
	}

	return float64(m.nnz) / float64(cells)
}

// Labels builds the boolean target vector aligned to m's row order:
// true iff the row's document group equals target.
//
// Every row must resolve through groups; a missing id is a referential
// break and returns corpus.ErrUnmappedDocument.
func Labels(m *Matrix, groups corpus.GroupSource, target string) ([]bool, error) {
	y := make([]bool, m.NumRows())
	for i, id := range m.docIDs {
		grp, ok := groups.Group(id)
		if !ok {
			return nil, fmt.Errorf("row %q: %w", id, corpus.ErrUnmappedDocument)
		}
		y[i] = grp == target
	}

	return y, nil
}
