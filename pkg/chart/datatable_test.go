package chart

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func benchTable(t *testing.T) *DataTable {
	t.Helper()
	return NewDataTable(benchDescription(t))
}

func TestDataTable_AddRow(t *testing.T) {
	dt := benchTable(t)
	when := time.Date(2021, time.January, 2, 3, 4, 5, 0, time.UTC)

	idx, err := dt.AddRow(Row{"date": when, "cpu_time": 42})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if idx != 0 {
		t.Errorf("Expected first row index 0, got %d", idx)
	}

	idx, err = dt.AddRow(Row{"date": when.AddDate(0, 0, 1)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("Expected second row index 1, got %d", idx)
	}
	if dt.RowCount() != 2 {
		t.Errorf("Expected 2 rows, got %d", dt.RowCount())
	}
}

func TestDataTable_AddRowMissingDomain(t *testing.T) {
	dt := benchTable(t)

	_, err := dt.AddRow(Row{"cpu_time": 42})
	if err == nil {
		t.Fatal("Expected error for row without domain value")
	}
	if CodeOf(err) != ErrMissingDomainValue {
		t.Errorf("Expected code %s, got %s", ErrMissingDomainValue, CodeOf(err))
	}
	if dt.RowCount() != 0 {
		t.Errorf("Expected table unchanged on failure, got %d rows", dt.RowCount())
	}
}

func TestDataTable_AddRowUnknownColumns(t *testing.T) {
	dt := benchTable(t)
	when := time.Date(2021, time.January, 2, 0, 0, 0, 0, time.UTC)

	_, err := dt.AddRow(Row{"date": when, "wall_time": 1, "allocs": 2})
	if err == nil {
		t.Fatal("Expected error for unknown columns")
	}
	if CodeOf(err) != ErrUnknownColumn {
		t.Errorf("Expected code %s, got %s", ErrUnknownColumn, CodeOf(err))
	}

	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *chart.Error, got %T", err)
	}
	if !reflect.DeepEqual(ce.Columns, []string{"allocs", "wall_time"}) {
		t.Errorf("Expected full offending id set sorted, got %v", ce.Columns)
	}
	if dt.RowCount() != 0 {
		t.Errorf("Expected table unchanged on failure, got %d rows", dt.RowCount())
	}
}

func TestDataTable_RowBounds(t *testing.T) {
	dt := benchTable(t)
	when := time.Date(2021, time.January, 2, 0, 0, 0, 0, time.UTC)
	if _, err := dt.AddRow(Row{"date": when}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		index int
	}{
		{"negative index", -1},
		{"index equal to row count", 1},
		{"index beyond row count", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := dt.Row(tt.index); CodeOf(err) != ErrRowIndexOutOfRange {
				t.Errorf("Row: expected code %s, got %v", ErrRowIndexOutOfRange, err)
			}
			err := dt.SetRow(tt.index, Row{"date": when})
			if CodeOf(err) != ErrRowIndexOutOfRange {
				t.Errorf("SetRow: expected code %s, got %v", ErrRowIndexOutOfRange, err)
			}
		})
	}
}

func TestDataTable_SetRow(t *testing.T) {
	dt := benchTable(t)
	when := time.Date(2021, time.January, 2, 0, 0, 0, 0, time.UTC)
	idx, err := dt.AddRow(Row{"date": when, "cpu_time": 42})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	replacement := Row{"date": when, "real_time": 7}
	if err := dt.SetRow(idx, replacement); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	row, err := dt.Row(idx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := row["cpu_time"]; ok {
		t.Error("Expected full replace to drop cpu_time")
	}
	if row["real_time"] != 7 {
		t.Errorf("Expected real_time 7, got %v", row["real_time"])
	}
}

func TestDataTable_SetRowRequiresDomain(t *testing.T) {
	dt := benchTable(t)
	when := time.Date(2021, time.January, 2, 0, 0, 0, 0, time.UTC)
	idx, err := dt.AddRow(Row{"date": when})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	err = dt.SetRow(idx, Row{"cpu_time": 42})
	if CodeOf(err) != ErrMissingDomainValue {
		t.Errorf("Expected code %s, got %v", ErrMissingDomainValue, err)
	}

	// Unknown columns are deliberately not re-checked on SetRow.
	if err := dt.SetRow(idx, Row{"date": when, "wall_time": 1}); err != nil {
		t.Errorf("Expected lenient SetRow to accept unknown column, got %v", err)
	}
}

func TestDataTable_ChartArrayRoundTrip(t *testing.T) {
	desc, err := NewPlotDescription("date", []ColumnDesc{
		mustColumn(t, "date", "Date", TypeDateTime),
		mustColumn(t, "cpu_time", "CPU Time", TypeNumber),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	dt := NewDataTable(desc)

	when := time.Date(2021, time.January, 2, 3, 4, 5, 0, time.UTC)
	if _, err := dt.AddRow(Row{"date": when, "cpu_time": 42}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := dt.ChartArray()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := `'[[{"id":"date","label":"Date","type":"datetime"},` +
		`{"id":"cpu_time","label":"CPU Time","type":"number"}], ` +
		`["Date(2021,0,2,3,4,5)",42]]'`
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestDataTable_ChartArrayEncoding(t *testing.T) {
	desc, err := NewPlotDescription("day", []ColumnDesc{
		mustColumn(t, "day", "Day", TypeDate),
		mustColumn(t, "name", "Name", TypeString),
		mustColumn(t, "passed", "Passed", TypeBoolean),
		mustColumn(t, "score", "Score", TypeNumber),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	dt := NewDataTable(desc)

	day := time.Date(2020, time.December, 31, 23, 59, 59, 0, time.UTC)
	if _, err := dt.AddRow(Row{"day": day, "name": `say "hi"`, "passed": true, "score": 1.5}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Missing values render as null.
	if _, err := dt.AddRow(Row{"day": day.AddDate(0, 0, 1)}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := dt.ChartArray()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, want := range []string{
		`["Date(2020,11,31)","say \"hi\"",true,1.5]`,
		`["Date(2021,0,1)",null,null,null]`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected serialized output to contain %s, got %s", want, got)
		}
	}
}

func TestDataTable_ChartArrayEmpty(t *testing.T) {
	dt := benchTable(t)

	got, err := dt.ChartArray()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "'[[") || !strings.HasSuffix(got, "]]'") {
		t.Errorf("Expected descriptor array with zero row elements, got %s", got)
	}
	if strings.Contains(got, "], [") {
		t.Errorf("Expected no row elements, got %s", got)
	}
}

func TestDataTable_Options(t *testing.T) {
	dt := benchTable(t)

	got, err := dt.OptionsJSON()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "{}" {
		t.Errorf("Expected empty options {}, got %s", got)
	}

	dt.SetOptions(map[string]any{"title": "INSERT", "curveType": "function"})
	got, err = dt.OptionsJSON()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := `{"curveType":"function","title":"INSERT"}`
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}
