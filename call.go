package sqldialect

import (
	"strings"
	"unicode"
)

// ProcedureKind distinguishes routines that return a value from plain
// procedures.
type ProcedureKind int

const (
	ProcedureKindProcedure ProcedureKind = iota
	ProcedureKindFunction
)

// String returns the string representation of ProcedureKind
func (k ProcedureKind) String() string {
	if k == ProcedureKindFunction {
		return "FUNCTION"
	}
	return "PROCEDURE"
}

// ParameterKind is the direction of a routine parameter.
type ParameterKind int

const (
	ParameterIn ParameterKind = iota
	ParameterOut
	ParameterInOut
	ParameterReturn
)

// String returns the string representation of ParameterKind
func (k ParameterKind) String() string {
	switch k {
	case ParameterOut:
		return "OUT"
	case ParameterInOut:
		return "INOUT"
	case ParameterReturn:
		return "RETURN"
	default:
		return "IN"
	}
}

// ProcedureParameter describes one parameter of a routine as reported by
// the metadata provider.
type ProcedureParameter struct {
	Name     string
	Kind     ParameterKind
	TypeName string
}

// Procedure describes the routine a call statement is synthesized for.
// Name is the fully qualified routine name, already formatted for DML
// context.
type Procedure struct {
	Name       string
	Kind       ProcedureKind
	Parameters []ProcedureParameter
}

// GenerateProcedureCall appends a call statement for proc to buf in this
// dialect's calling convention: named ":param" binds for IN parameters,
// positional "?" binds for OUT/INOUT parameters when the dialect includes
// them, RETURN parameters never emitted. The statement ends with the
// call end clause (if any), a delimiter or ODBC bracket, and a blank
// line.
func (d *Dialect) GenerateProcedureCall(buf *strings.Builder, proc Procedure) {
	if d.BracketedExecCall {
		buf.WriteString("{ ")
	}
	buf.WriteString(d.procedureCallInitialClause(proc))
	buf.WriteString("(")

	first := true
	for _, param := range proc.Parameters {
		switch param.Kind {
		case ParameterReturn:
			continue
		case ParameterIn:
			if !first {
				buf.WriteString(",")
			}
			buf.WriteString(":")
			buf.WriteString(escapeParameterName(param.Name))
			first = false
		default:
			// A skipped out-parameter must not consume a comma, or the
			// argument list would start or end with a stray separator.
			if d.CallIncludesOutParameters {
				if !first {
					buf.WriteString(",")
				}
				buf.WriteString("?")
				first = false
			}
		}
	}

	buf.WriteString(")")
	if d.ProcedureCallEndClause != "" {
		buf.WriteString(" ")
		buf.WriteString(d.ProcedureCallEndClause)
	}
	if d.BracketedExecCall {
		buf.WriteString(" }")
	} else {
		buf.WriteString(";")
	}
	buf.WriteString("\n\n")
}

// procedureCallInitialClause is the opening clause of the call: the query
// keyword for functions and for dialects without an execute keyword, the
// first execute keyword otherwise.
func (d *Dialect) procedureCallInitialClause(proc Procedure) string {
	if proc.Kind == ProcedureKindFunction || len(d.ExecuteKeywords) == 0 {
		return d.queryKeyword() + " " + proc.Name
	}
	return d.ExecuteKeywords[0] + " " + proc.Name
}

func (d *Dialect) queryKeyword() string {
	if len(d.QueryKeywords) > 0 {
		return d.QueryKeywords[0]
	}
	return "SELECT"
}

// escapeParameterName sanitizes a parameter name for use in a named bind
// placeholder, replacing anything outside the letter/digit/underscore
// class.
func escapeParameterName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, name)
}
