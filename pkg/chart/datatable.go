package chart

import (
	"encoding/json"
	"sort"
	"strings"
)

// Row is one observation: a partial mapping from column id to value. Every
// row must carry a value for the domain column; all other columns are
// optional and render as null when absent.
type Row map[string]any

// DataTable accumulates rows under a plot description and serializes them
// into the two-level array literal the chart renderer consumes. Row
// identity is the zero-based position in insertion order; there is no
// deletion path, so positions are stable for the lifetime of the table.
//
// The table takes ownership of rows passed to AddRow and SetRow.
type DataTable struct {
	desc    *PlotDescription
	rows    []Row
	options map[string]any
}

// NewDataTable creates an empty table bound to desc.
func NewDataTable(desc *PlotDescription) *DataTable {
	return &DataTable{
		desc:    desc,
		options: make(map[string]any),
	}
}

// Description returns the plot description the table validates against.
func (dt *DataTable) Description() *PlotDescription {
	return dt.desc
}

// AddColumn registers an additional column on the underlying description.
// Like PlotDescription.AddColumn it is idempotent when the id exists.
func (dt *DataTable) AddColumn(col ColumnDesc) {
	dt.desc.AddColumn(col)
}

// AddRow validates and appends a row.
//
// Parameters:
//   - row: values keyed by column id; the domain id must be present,
//     ordering of keys is irrelevant, all other columns are optional
//
// Returns:
//   - int: zero-based index of the new row, its identifier for the
//     lifetime of the table
//   - error: MISSING_DOMAIN_VALUE or UNKNOWN_COLUMN; on error the table
//     is unchanged
func (dt *DataTable) AddRow(row Row) (int, error) {
	if _, ok := row[dt.desc.DomainID()]; !ok {
		return 0, newMissingDomainValueError(dt.desc.DomainID())
	}
	if err := dt.checkKnownColumns(row); err != nil {
		return 0, err
	}
	idx := len(dt.rows)
	dt.rows = append(dt.rows, row)
	return idx, nil
}

// Row returns the row stored at index.
//
// Returns:
//   - Row: the stored row (not a copy)
//   - error: ROW_INDEX_OUT_OF_RANGE when index is outside [0, RowCount())
func (dt *DataTable) Row(index int) (Row, error) {
	if index < 0 || index >= len(dt.rows) {
		return nil, newRowIndexError(index, len(dt.rows))
	}
	return dt.rows[index], nil
}

// SetRow replaces the row at index. The domain value must be present in
// the replacement; unknown columns are not re-checked here.
func (dt *DataTable) SetRow(index int, row Row) error {
	if _, ok := row[dt.desc.DomainID()]; !ok {
		return newMissingDomainValueError(dt.desc.DomainID())
	}
	if index < 0 || index >= len(dt.rows) {
		return newRowIndexError(index, len(dt.rows))
	}
	dt.rows[index] = row
	return nil
}

// RowCount returns the number of rows.
func (dt *DataTable) RowCount() int {
	return len(dt.rows)
}

// Rows returns the stored rows in insertion order. The slice and the rows
// are shared with the table; callers must treat them as read-only.
func (dt *DataTable) Rows() []Row {
	return dt.rows
}

// SetOptions replaces the options map attached to the table. Options are
// opaque passthrough metadata for the chart renderer (title, axis
// formatting and so on); the core only requires them to be
// JSON-representable.
func (dt *DataTable) SetOptions(options map[string]any) {
	if options == nil {
		options = make(map[string]any)
	}
	dt.options = options
}

// Options returns the options map attached to the table.
func (dt *DataTable) Options() map[string]any {
	return dt.options
}

// OptionsJSON returns the options map as plain JSON.
func (dt *DataTable) OptionsJSON() (string, error) {
	data, err := json.Marshal(dt.options)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ChartArray serializes the table into the chart-literal format:
//
//	'[[colDesc1, colDesc2, ...], [row1 values], [row2 values], ...]'
//
// The leading element is the JSON array of column descriptors in
// registration order; every following element is a positional array of
// encoded values in the same order, with absent values rendered as null.
// The whole literal is wrapped in single quotes so it can be embedded as
// one quoted string in a generated document and parsed back with
// JSON.parse at render time.
//
// Serialization is read-only and may be called repeatedly.
func (dt *DataTable) ChartArray() (string, error) {
	cols := dt.desc.Columns()
	colJSON, err := json.Marshal(cols)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("'[")
	b.Write(colJSON)
	for _, row := range dt.rows {
		vals := make([]string, len(cols))
		for i, col := range cols {
			v, present := row[col.ID]
			enc, err := encodeValue(col.Type, v, present)
			if err != nil {
				return "", err
			}
			vals[i] = enc
		}
		b.WriteString(", [")
		b.WriteString(strings.Join(vals, ","))
		b.WriteString("]")
	}
	b.WriteString("]'")
	return b.String(), nil
}

// checkKnownColumns rejects rows referencing ids outside the description,
// collecting the full offending set for diagnostics.
func (dt *DataTable) checkKnownColumns(row Row) error {
	var unknown []string
	for id := range row {
		if !dt.desc.ContainsColumn(id) {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return newUnknownColumnError(unknown)
	}
	return nil
}
