package chart

// ColumnType identifies the data type stored in a column. The values map
// directly onto the type names the chart renderer understands, so they are
// matched case-sensitively and serialized verbatim.
type ColumnType string

const (
	TypeString    ColumnType = "string"
	TypeDate      ColumnType = "date"
	TypeDateTime  ColumnType = "datetime"
	TypeNumber    ColumnType = "number"
	TypeBoolean   ColumnType = "boolean"
	TypeTimeOfDay ColumnType = "timeofday"
)

var allowedTypes = []ColumnType{
	TypeString, TypeDate, TypeDateTime, TypeNumber, TypeBoolean, TypeTimeOfDay,
}

// AllowedTypes returns the set of valid column types in declaration order.
func AllowedTypes() []ColumnType {
	out := make([]ColumnType, len(allowedTypes))
	copy(out, allowedTypes)
	return out
}

// IsValidType reports whether t is one of the allowed column types.
func IsValidType(t ColumnType) bool {
	for _, allowed := range allowedTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// ColumnDesc describes a single column of a plot: its internal id, the
// label shown to the user, the value type, and an optional role such as
// "annotation" or "tooltip". Descriptors are plain values and are not
// modified after construction.
//
// The JSON form is consumed by the chart renderer; Role is omitted
// entirely (not emitted as null) when no role was given.
type ColumnDesc struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Type  ColumnType `json:"type"`
	Role  string     `json:"role,omitempty"`
}

// NewColumn creates a column descriptor.
//
// Parameters:
//   - id: identifier used to reference the column in rows
//   - label: display name; defaults to id when empty
//   - typ: one of the allowed column types
//   - role: optional renderer role; kept only when non-empty
//
// Returns:
//   - ColumnDesc: the constructed descriptor
//   - error: an INVALID_COLUMN_TYPE error when typ is outside the allowed set
func NewColumn(id, label string, typ ColumnType, role string) (ColumnDesc, error) {
	if !IsValidType(typ) {
		return ColumnDesc{}, newInvalidColumnTypeError(typ)
	}
	if label == "" {
		label = id
	}
	return ColumnDesc{ID: id, Label: label, Type: typ, Role: role}, nil
}
