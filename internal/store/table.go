package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// table is an in-memory CSV table: a header plus rows whose cells line up
// with the header. Stores load a table, mutate it, and write the whole
// thing back per operation; there is no shared cache between operations.
type table struct {
	columns []string
	rows    [][]string
}

// loadTable reads the CSV at path, creating it with the given header if it
// does not exist. If the file exists but is missing any of the expected
// columns, the missing columns are appended empty-valued, the table is
// reordered to the canonical column order, and the repaired file is written
// back. Rows are always returned projected onto the canonical columns.
func loadTable(path string, columns []string) (*table, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		t := &table{columns: columns}
		if err := t.write(path); err != nil {
			return nil, err
		}
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		t := &table{columns: columns}
		if err := t.write(path); err != nil {
			return nil, err
		}
		return t, nil
	}

	header := records[0]
	idx := make(map[string]int, len(header))
	for i, c := range header {
		idx[c] = i
	}

	repair := false
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			repair = true
			break
		}
	}

	t := &table{columns: columns, rows: make([][]string, 0, len(records)-1)}
	for _, rec := range records[1:] {
		row := make([]string, len(columns))
		for i, c := range columns {
			if j, ok := idx[c]; ok && j < len(rec) {
				row[i] = rec[j]
			}
		}
		t.rows = append(t.rows, row)
	}

	if repair {
		if err := t.write(path); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// writeTo serializes the table as CSV to w.
func (t *table) writeTo(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.columns); err != nil {
		return err
	}
	if err := cw.WriteAll(t.rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// write persists the table atomically: contents go to a temp file in the
// same directory which is then renamed over path, so a failed write never
// leaves a truncated table behind.
func (t *table) write(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := t.writeTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
