package chart

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is a unique identifier for a validation failure kind.
type ErrorCode string

const (
	// ErrInvalidColumnType reports a column type outside the allowed set.
	ErrInvalidColumnType ErrorCode = "INVALID_COLUMN_TYPE"

	// ErrMissingDomainColumn reports a plot description constructed without
	// its declared domain column.
	ErrMissingDomainColumn ErrorCode = "MISSING_DOMAIN_COLUMN"

	// ErrMissingDomainValue reports a row submitted without a value for the
	// domain column.
	ErrMissingDomainValue ErrorCode = "MISSING_DOMAIN_VALUE"

	// ErrUnknownColumn reports a row or value set referencing column ids not
	// present in the plot description.
	ErrUnknownColumn ErrorCode = "UNKNOWN_COLUMN"

	// ErrRowIndexOutOfRange reports indexed access outside [0, rowCount).
	ErrRowIndexOutOfRange ErrorCode = "ROW_INDEX_OUT_OF_RANGE"

	// ErrDomainValueNotFound reports a lookup of a domain value that was
	// never indexed.
	ErrDomainValueNotFound ErrorCode = "DOMAIN_VALUE_NOT_FOUND"
)

// Error is a structured validation error raised by the chart data model.
// All failures are local and fail-fast: a rejected operation leaves the
// table unchanged, and nothing in this package retries.
type Error struct {
	// Code identifies the failure kind.
	Code ErrorCode

	// Message is a human-readable description of what went wrong.
	Message string

	// ColumnType and Allowed are set for INVALID_COLUMN_TYPE.
	ColumnType ColumnType
	Allowed    []ColumnType

	// DomainID is set for MISSING_DOMAIN_COLUMN and MISSING_DOMAIN_VALUE.
	DomainID string

	// Columns holds the full offending id set for UNKNOWN_COLUMN, sorted.
	Columns []string

	// Index and RowCount are set for ROW_INDEX_OUT_OF_RANGE.
	Index    int
	RowCount int

	// Domain is the looked-up value for DOMAIN_VALUE_NOT_FOUND.
	Domain any
}

// Error implements the error interface. The format follows the pattern
// [ERROR_CODE] message.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// CodeOf returns the ErrorCode carried by err, or the empty code when err
// is not a chart error. Intended for callers that branch on failure kind
// without unpacking the whole struct.
func CodeOf(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

func newInvalidColumnTypeError(typ ColumnType) *Error {
	allowed := AllowedTypes()
	names := make([]string, len(allowed))
	for i, t := range allowed {
		names[i] = string(t)
	}
	return &Error{
		Code:       ErrInvalidColumnType,
		Message:    fmt.Sprintf("type %q is not supported, supported types are: %s", typ, strings.Join(names, ", ")),
		ColumnType: typ,
		Allowed:    allowed,
	}
}

func newMissingDomainColumnError(domainID string) *Error {
	return &Error{
		Code:     ErrMissingDomainColumn,
		Message:  fmt.Sprintf("plot description must contain domain column %q", domainID),
		DomainID: domainID,
	}
}

func newMissingDomainValueError(domainID string) *Error {
	return &Error{
		Code:     ErrMissingDomainValue,
		Message:  fmt.Sprintf("row is missing a value for domain column %q", domainID),
		DomainID: domainID,
	}
}

func newUnknownColumnError(columns []string) *Error {
	return &Error{
		Code:    ErrUnknownColumn,
		Message: fmt.Sprintf("unknown column ids: %s", strings.Join(columns, ", ")),
		Columns: columns,
	}
}

func newRowIndexError(index, rowCount int) *Error {
	return &Error{
		Code:     ErrRowIndexOutOfRange,
		Message:  fmt.Sprintf("row index %d out of bounds [0, %d)", index, rowCount),
		Index:    index,
		RowCount: rowCount,
	}
}

func newDomainValueNotFoundError(domain any) *Error {
	return &Error{
		Code:    ErrDomainValueNotFound,
		Message: fmt.Sprintf("domain value %v was never added", domain),
		Domain:  domain,
	}
}
