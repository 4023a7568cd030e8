package model

import "fmt"

// TextStyle is a formatting hint for table columns. All size values are in
// CSS units. The zero value applies no styling.
//
// TextStyle is a plain value type attached by composition; it has no identity
// or lifecycle of its own.
type TextStyle struct {
	// Size is the font size, e.g. "12px" or "0.9em".
	Size string

	// Weight is the font weight. Use WeightBold for bold text.
	Weight string

	// Align is the horizontal text alignment: "left", "right", or "center".
	Align string

	// Color is the text color, e.g. "#cc0000".
	Color string
}

// WeightBold is the font weight value for bold text.
const WeightBold = "bold"

// IsZero reports whether the style applies no formatting.
func (s TextStyle) IsZero() bool {
	return s == TextStyle{}
}

// Table is a tabular content node: named columns and rows of string cells.
//
// Design decision: Cells are strings rather than a numeric or interface type.
// The engines render cell content verbatim; callers format numbers, dates,
// and currencies before constructing the table. This keeps formatting
// decisions in one place and makes rendered output deterministic.
type Table struct {
	title        string
	columns      []string
	rows         [][]string
	header       bool
	index        bool
	columnStyles map[string]TextStyle
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithTableTitle sets an optional caption rendered above the table.
func WithTableTitle(title string) TableOption {
	return func(t *Table) {
		t.title = title
	}
}

// WithoutHeader hides the column header row.
func WithoutHeader() TableOption {
	return func(t *Table) {
		t.header = false
	}
}

// WithIndex renders a leading column containing the row number.
func WithIndex() TableOption {
	return func(t *Table) {
		t.index = true
	}
}

// WithColumnStyle applies a TextStyle to every cell of the named column.
func WithColumnStyle(column string, style TextStyle) TableOption {
	return func(t *Table) {
		if t.columnStyles == nil {
			t.columnStyles = make(map[string]TextStyle)
		}
		t.columnStyles[column] = style
	}
}

// NewTable creates a Table from named columns and rows of cells.
//
// Every row must have exactly len(columns) cells; a ragged row fails
// construction with ErrRaggedRow. An empty dataset (no columns, no rows)
// is valid and renders as an empty grid. A column style referencing a column
// that does not exist fails with ErrUnknownColumn.
func NewTable(columns []string, rows [][]string, opts ...TableOption) (*Table, error) {
	t := &Table{
		title:   "",
		columns: append([]string(nil), columns...),
		rows:    make([][]string, 0, len(rows)),
		header:  true,
		index:   false,
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrRaggedRow, i, len(row), len(columns))
		}
		t.rows = append(t.rows, append([]string(nil), row...))
	}

	for _, opt := range opts {
		opt(t)
	}

	for col := range t.columnStyles {
		if !t.hasColumn(col) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
	}

	return t, nil
}

// hasColumn reports whether the table has a column with the given name.
func (t *Table) hasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Title returns the optional table caption. Empty means no caption.
func (t *Table) Title() string {
	return t.title
}

// Columns returns the column names in order.
// The returned slice must not be modified.
func (t *Table) Columns() []string {
	return t.columns
}

// Rows returns the table rows in insertion order.
// The returned slices must not be modified.
func (t *Table) Rows() [][]string {
	return t.rows
}

// Header reports whether the column header row is rendered.
func (t *Table) Header() bool {
	return t.header
}

// Index reports whether a leading row-number column is rendered.
func (t *Table) Index() bool {
	return t.index
}

// ColumnStyle returns the TextStyle for the named column.
// The zero TextStyle is returned for unstyled columns.
func (t *Table) ColumnStyle(column string) TextStyle {
	return t.columnStyles[column]
}

func (t *Table) node() {}
