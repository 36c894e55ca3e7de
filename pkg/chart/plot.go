package chart

// Plot is a DataTable that keeps a secondary index from domain value to
// row position, so repeated submissions for the same domain point merge
// into one row instead of appending duplicates. The domain column is the
// x-axis; every other column is a series plotted over it.
//
// The index has no deletion path and is always consistent with the row
// arena: every indexed domain value maps to exactly one row and vice
// versa.
type Plot struct {
	DataTable
	domainIndex map[any]int
	domainOrder []any
}

// NewPlot creates an empty plot bound to desc.
func NewPlot(desc *PlotDescription) *Plot {
	return &Plot{
		DataTable:   *NewDataTable(desc),
		domainIndex: make(map[any]int),
	}
}

// AddValue upserts series values at the given domain value.
//
// For an unseen domain value a full row is synthesized from values plus
// the domain entry and appended. For an already indexed domain value the
// given values are merged into the existing row in place: keys absent from
// values are left untouched, so repeated calls accumulate different
// measured series at the same domain point without clobbering each other.
// A domain key inside values is ignored; the indexed domain value wins.
//
// Returns:
//   - error: UNKNOWN_COLUMN when values references an unregistered id; the
//     plot is unchanged on error
func (p *Plot) AddValue(domainValue any, values Row) error {
	if err := p.checkKnownColumns(values); err != nil {
		return err
	}
	domainID := p.desc.DomainID()

	idx, seen := p.domainIndex[domainValue]
	if !seen {
		row := make(Row, len(values)+1)
		for k, v := range values {
			row[k] = v
		}
		row[domainID] = domainValue
		rowID, err := p.AddRow(row)
		if err != nil {
			return err
		}
		p.domainIndex[domainValue] = rowID
		p.domainOrder = append(p.domainOrder, domainValue)
		return nil
	}

	row := p.rows[idx]
	for k, v := range values {
		if k == domainID {
			continue
		}
		row[k] = v
	}
	return nil
}

// Get returns the row stored for the given domain value.
//
// Returns:
//   - Row: the stored row (not a copy)
//   - error: DOMAIN_VALUE_NOT_FOUND when the domain value was never added
func (p *Plot) Get(domainValue any) (Row, error) {
	idx, ok := p.domainIndex[domainValue]
	if !ok {
		return nil, newDomainValueNotFoundError(domainValue)
	}
	return p.rows[idx], nil
}

// Set stores values at the given domain value. Unlike AddValue, an
// existing row is fully replaced through the base table's SetRow; an
// unseen domain value behaves exactly like AddValue's insert path.
func (p *Plot) Set(domainValue any, values Row) error {
	idx, ok := p.domainIndex[domainValue]
	if !ok {
		return p.AddValue(domainValue, values)
	}
	row := make(Row, len(values)+1)
	for k, v := range values {
		row[k] = v
	}
	row[p.desc.DomainID()] = domainValue
	return p.SetRow(idx, row)
}

// DomainValues returns every indexed domain value in first-seen insertion
// order. The order is not guaranteed to be sorted.
func (p *Plot) DomainValues() []any {
	out := make([]any, len(p.domainOrder))
	copy(out, p.domainOrder)
	return out
}
