package store

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// ElementsFile is the name of the CSV file backing the element store.
const ElementsFile = "prompt_elements.csv"

// elementColumns is the canonical column set, in persisted order.
var elementColumns = []string{"title", "type", "content"}

// Element is a reusable, typed text snippet.
type Element struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ElementRow pairs an element with its position in the stored table.
// Positions identify rows for Update and Delete and are only stable until
// the next mutation.
type ElementRow struct {
	Position int `json:"position"`
	Element
}

// ElementStore persists elements to a CSV file. Each operation is a full
// load, mutate, rewrite cycle against the file.
type ElementStore struct {
	path string
}

// NewElementStore creates an element store backed by prompt_elements.csv
// under dataDir.
func NewElementStore(dataDir string) *ElementStore {
	return &ElementStore{path: filepath.Join(dataDir, ElementsFile)}
}

// Load returns all elements in stored order, creating or repairing the
// backing file as needed.
func (s *ElementStore) Load() ([]Element, error) {
	t, err := s.load()
	if err != nil {
		return nil, err
	}
	return toElements(t), nil
}

// Add appends a new element. Title and content are trimmed; blank values,
// unknown types, and an existing element with the same trimmed title and
// type are rejected without touching the file.
func (s *ElementStore) Add(title, typ, content string) (Element, error) {
	title, content, err := validateElement(title, typ, content)
	if err != nil {
		return Element{}, err
	}

	t, err := s.load()
	if err != nil {
		return Element{}, err
	}
	for _, row := range t.rows {
		if row[0] == title && row[1] == typ {
			return Element{}, ErrDuplicateElement
		}
	}

	t.rows = append(t.rows, []string{title, typ, content})
	if err := t.write(s.path); err != nil {
		return Element{}, err
	}
	return Element{Title: title, Type: typ, Content: content}, nil
}

// Update overwrites the row at position with trimmed values.
func (s *ElementStore) Update(position int, title, typ, content string) (Element, error) {
	title, content, err := validateElement(title, typ, content)
	if err != nil {
		return Element{}, err
	}

	t, err := s.load()
	if err != nil {
		return Element{}, err
	}
	if position < 0 || position >= len(t.rows) {
		return Element{}, ErrNotFound
	}

	t.rows[position] = []string{title, typ, content}
	if err := t.write(s.path); err != nil {
		return Element{}, err
	}
	return Element{Title: title, Type: typ, Content: content}, nil
}

// Delete removes the row at position. Remaining rows shift down; deletion
// is immediate and permanent.
func (s *ElementStore) Delete(position int) error {
	t, err := s.load()
	if err != nil {
		return err
	}
	if position < 0 || position >= len(t.rows) {
		return ErrNotFound
	}

	t.rows = append(t.rows[:position], t.rows[position+1:]...)
	return t.write(s.path)
}

// ReplaceAll overwrites the entire table with externally supplied rows.
// The header must include all canonical columns; extra columns are dropped
// and rows are written projected onto the canonical order. No per-row
// validation is applied, matching the bulk-import contract.
func (s *ElementStore) ReplaceAll(header []string, rows [][]string) error {
	idx := make(map[string]int, len(header))
	for i, c := range header {
		idx[c] = i
	}
	for _, c := range elementColumns {
		if _, ok := idx[c]; !ok {
			return ErrMissingColumns
		}
	}

	t := &table{columns: elementColumns, rows: make([][]string, 0, len(rows))}
	for _, rec := range rows {
		row := make([]string, len(elementColumns))
		for i, c := range elementColumns {
			if j := idx[c]; j < len(rec) {
				row[i] = rec[j]
			}
		}
		t.rows = append(t.rows, row)
	}
	return t.write(s.path)
}

// Filter returns elements whose title or content contains q
// (case-insensitive), restricted to typ unless typ is empty or "all".
// Results are ordered ascending by (type, title) and carry their position
// in the full table.
func (s *ElementStore) Filter(q, typ string) ([]ElementRow, error) {
	t, err := s.load()
	if err != nil {
		return nil, err
	}

	q = strings.ToLower(strings.TrimSpace(q))
	rows := make([]ElementRow, 0, len(t.rows))
	for i, e := range toElements(t) {
		if typ != "" && typ != "all" && e.Type != typ {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Content), q) {
			continue
		}
		rows = append(rows, ElementRow{Position: i, Element: e})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Type != rows[j].Type {
			return rows[i].Type < rows[j].Type
		}
		return rows[i].Title < rows[j].Title
	})
	return rows, nil
}

// ExportCSV streams the full elements table as CSV, no transformation
// applied beyond standard quoting.
func (s *ElementStore) ExportCSV(w io.Writer) error {
	t, err := s.load()
	if err != nil {
		return err
	}
	return t.writeTo(w)
}

func (s *ElementStore) load() (*table, error) {
	return loadTable(s.path, elementColumns)
}

func toElements(t *table) []Element {
	out := make([]Element, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, Element{Title: row[0], Type: row[1], Content: row[2]})
	}
	return out
}
