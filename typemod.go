package sqldialect

import (
	"fmt"
	"math"
	"strings"
)

// DataKind is the coarse category of a column's data type.
type DataKind int

const (
	DataKindUnknown DataKind = iota
	DataKindString
	DataKindNumeric
	DataKindDateTime
	DataKindBinary
	DataKindContent
	DataKindBoolean
)

// String returns the string representation of DataKind
func (k DataKind) String() string {
	switch k {
	case DataKindString:
		return "STRING"
	case DataKindNumeric:
		return "NUMERIC"
	case DataKindDateTime:
		return "DATETIME"
	case DataKindBinary:
		return "BINARY"
	case DataKindContent:
		return "CONTENT"
	case DataKindBoolean:
		return "BOOLEAN"
	default:
		return "UNKNOWN"
	}
}

// ColumnType describes a column's or parameter's declared type as
// reported by the metadata provider. Scale below zero means the scale is
// not specified.
type ColumnType struct {
	TypeName  string
	DataKind  DataKind
	MaxLength int64
	Precision int
	Scale     int
}

// Column pairs a column's declared type with the matching user-defined
// type descriptor, when the metadata provider found one.
type Column struct {
	ColumnType
	UserType *ColumnType
}

// ColumnTypeModifiers decides the parenthesized length/precision/scale
// suffix for a column in generated DDL, e.g. "(255)" or "(10,2)". An
// empty string means the bare type name is sufficient. The suffix is
// suppressed when the column's user-defined type already carries the same
// precision or length; for string kinds the engine-reported maximum
// string length caps the suffix, with limits at or below zero meaning
// unlimited.
func (d *Dialect) ColumnTypeModifiers(col Column, features FeatureSource) string {
	typeName := strings.ToUpper(col.TypeName)

	if ut := col.UserType; ut != nil && ut.Scale == col.Scale &&
		((ut.Precision > 0 && ut.Precision == col.Precision) ||
			(ut.MaxLength > 0 && ut.MaxLength == col.MaxLength)) {
		return ""
	}

	switch col.DataKind {
	case DataKindString:
		if strings.ContainsRune(typeName, '(') {
			return ""
		}
		maxLength := col.MaxLength
		if maxLength <= 0 || maxLength == math.MaxInt32 || maxLength == math.MaxInt64 {
			return ""
		}
		if features != nil {
			if limit, ok := features.DataSourceFeature(FeatureMaxStringLength); ok {
				if limit <= 0 {
					return ""
				}
				if int64(limit) < maxLength {
					maxLength = int64(limit)
				}
			}
		}
		return fmt.Sprintf("(%d)", maxLength)

	case DataKindBinary, DataKindContent:
		if strings.Contains(typeName, "LOB") {
			return ""
		}
		if col.MaxLength > 0 && col.MaxLength < math.MaxInt32 {
			return fmt.Sprintf("(%d)", col.MaxLength)
		}

	case DataKindNumeric:
		switch typeName {
		case "DECIMAL", "NUMERIC", "NUMBER":
			precision := col.Precision
			if precision == 0 {
				// Some drivers report precision through max length.
				precision = int(col.MaxLength)
			}
			if col.Scale >= 0 && precision >= 0 && !(col.Scale == 0 && precision == 0) {
				return fmt.Sprintf("(%d,%d)", precision, col.Scale)
			}
		case "BIT":
			if col.Precision > 1 {
				return fmt.Sprintf("(%d)", col.Precision)
			}
		}
	}

	return ""
}
