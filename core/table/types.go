package table

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the type of value held by a Cell.
type Kind int

const (
	// Empty marks a blank or missing cell.
	Empty Kind = iota
	// Number marks a numeric cell.
	Number
	// Text marks a textual cell.
	Text
	// Time marks a date or date-time cell.
	Time
)

// TimeLayout renders Time cells as text.
const TimeLayout = "2006-01-02 15:04:05"

// Cell is a single spreadsheet value.
type Cell struct {
	Kind Kind
	Num  float64
	Str  string
	Time time.Time
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: Number, Num: v}
}

// TextCell returns a text cell. An empty string yields the Empty cell.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: Text, Str: s}
}

// TimeCell returns a date or date-time cell.
func TimeCell(t time.Time) Cell {
	return Cell{Kind: Time, Time: t}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

// String renders the cell the way it would appear in a text export.
func (c Cell) String() string {
	switch c.Kind {
	case Number:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case Text:
		return c.Str
	case Time:
		return c.Time.Format(TimeLayout)
	default:
		return ""
	}
}

// naMarkers are the spreadsheet placeholders read as missing values.
var naMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {},
	"None": {}, "n/a": {}, "nan": {}, "null": {},
}

// isNAMarker reports whether raw is an exact missing-value placeholder.
func isNAMarker(raw string) bool {
	_, ok := naMarkers[raw]
	return ok
}

// sheetCell types a value read from a file export. Missing-value placeholders become Empty.
func sheetCell(raw string) Cell {
	if isNAMarker(raw) {
		return Cell{}
	}
	return inferCell(raw)
}

// inferCell types a raw textual value: numbers become Number cells, anything else stays Text.
// Whitespace-only values stay Text.
func inferCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return TextCell(raw)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(s, "xXnNiI") {
		return NumberCell(v)
	}
	return TextCell(raw)
}

// Row is a single data row. Cells are positional and aligned with the owning table's columns.
type Row struct {
	// Line is the 1-based position of the row in its source (sheet row, CSV record or result row).
	Line int
	// Cells holds one value per table column.
	Cells []Cell

	index map[string]int
}

// Get returns the cell under the given column, or the Empty cell if the column does not exist.
func (r Row) Get(column string) Cell {
	i, ok := r.index[column]
	if !ok || i >= len(r.Cells) {
		return Cell{}
	}
	return r.Cells[i]
}

// IsBlank reports whether every cell of the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r.Cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Table is an ordered collection of rows sharing a normalized header.
type Table struct {
	// Columns holds the normalized, unique column names in source order.
	Columns []string
	// Rows holds the data rows in source order.
	Rows []Row

	index map[string]int
}

// New builds a table from a raw header and records. Header names are normalized and
// de-duplicated; records are padded or truncated to the header width.
// Row lines are numbered from firstLine.
func New(header []string, records [][]Cell, firstLine int) *Table {
	columns := buildColumns(header)
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}

	t := &Table{
		Columns: columns,
		Rows:    make([]Row, 0, len(records)),
		index:   index,
	}
	for i, rec := range records {
		cells := make([]Cell, len(columns))
		copy(cells, rec)
		t.Rows = append(t.Rows, Row{Line: firstLine + i, Cells: cells, index: index})
	}
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column with the given normalized name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Subset returns a table with the same columns holding the rows at the given positions,
// in the order the positions are given.
func (t *Table) Subset(positions []int) *Table {
	out := &Table{
		Columns: t.Columns,
		Rows:    make([]Row, 0, len(positions)),
		index:   t.index,
	}
	for _, p := range positions {
		out.Rows = append(out.Rows, t.Rows[p])
	}
	return out
}
