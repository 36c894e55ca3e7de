package chart

// PlotDescription is an ordered, unique-keyed collection of column
// descriptors plus the designated domain column id. Column order is
// significant: it is the registration order and defines the serialization
// order of every table built on top of the description.
type PlotDescription struct {
	domainID string
	order    []string
	columns  map[string]ColumnDesc
}

// NewPlotDescription creates a plot description from the given columns,
// registered in list order. By convention callers list the domain column
// first; the constructor preserves whatever order it is given.
//
// Duplicate ids collapse to a single column: the first occurrence fixes the
// position, the last occurrence wins on content.
//
// Returns:
//   - *PlotDescription: the constructed description
//   - error: a MISSING_DOMAIN_COLUMN error when no column has id domainID
func NewPlotDescription(domainID string, cols []ColumnDesc) (*PlotDescription, error) {
	d := &PlotDescription{
		domainID: domainID,
		columns:  make(map[string]ColumnDesc, len(cols)),
	}
	for _, col := range cols {
		if _, seen := d.columns[col.ID]; !seen {
			d.order = append(d.order, col.ID)
		}
		d.columns[col.ID] = col
	}
	if !d.ContainsColumn(domainID) {
		return nil, newMissingDomainColumnError(domainID)
	}
	return d, nil
}

// AddColumn registers an additional column at the end of the order. The
// call is idempotent: when a column with the same id already exists it is
// left untouched, so incremental schema discovery from several data
// sources never reorders or rewrites the description. The domain mapping
// is never disturbed.
func (d *PlotDescription) AddColumn(col ColumnDesc) {
	if d.ContainsColumn(col.ID) {
		return
	}
	d.order = append(d.order, col.ID)
	d.columns[col.ID] = col
}

// ContainsColumn reports whether a column with the given id is registered.
func (d *PlotDescription) ContainsColumn(id string) bool {
	_, ok := d.columns[id]
	return ok
}

// DomainID returns the id of the domain (x-axis) column.
func (d *PlotDescription) DomainID() string {
	return d.domainID
}

// Column returns the descriptor registered under id.
func (d *PlotDescription) Column(id string) (ColumnDesc, bool) {
	col, ok := d.columns[id]
	return col, ok
}

// Columns returns all descriptors in registration order.
func (d *PlotDescription) Columns() []ColumnDesc {
	out := make([]ColumnDesc, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.columns[id])
	}
	return out
}

// ColumnIDs returns the registered ids in registration order.
func (d *PlotDescription) ColumnIDs() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// NumColumns returns the number of registered columns.
func (d *PlotDescription) NumColumns() int {
	return len(d.order)
}
