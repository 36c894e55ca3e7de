package chart

import (
	"encoding/json"
	"fmt"
	"time"
)

// encodeValue renders a single cell as a literal acceptable to JSON.parse.
// Absent and nil values render as null regardless of column type.
//
// Dates encode as the renderer's constructor-call-shaped string literal
// with a zero-based month ("Date(2021,0,2)" is January 2nd). This is the
// date literal syntax of the consuming chart library, not an off-by-one.
// Values of unexpected runtime type, and types with no special handling
// (number, boolean, timeofday), fall through to plain JSON encoding.
func encodeValue(typ ColumnType, v any, present bool) (string, error) {
	if !present || v == nil {
		return "null", nil
	}

	switch typ {
	case TypeDate:
		if t, ok := v.(time.Time); ok {
			return fmt.Sprintf("\"Date(%d,%d,%d)\"",
				t.Year(), int(t.Month())-1, t.Day()), nil
		}
	case TypeDateTime:
		if t, ok := v.(time.Time); ok {
			return fmt.Sprintf("\"Date(%d,%d,%d,%d,%d,%d)\"",
				t.Year(), int(t.Month())-1, t.Day(),
				t.Hour(), t.Minute(), t.Second()), nil
		}
	case TypeString:
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		data, err := json.Marshal(s)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
