package sqldialect

import "errors"

// Common errors used throughout the sqldialect package
var (
	// ErrUnknownDialect is returned when a profile names a base dialect
	// that is not built in.
	ErrUnknownDialect = errors.New("unknown base dialect")
	// ErrEmptyProfile indicates the profile document had no content.
	ErrEmptyProfile = errors.New("empty dialect profile")
	// ErrInvalidQuotePair indicates a quote pair without exactly an open
	// and a close token.
	ErrInvalidQuotePair = errors.New("quote pair must have an open and a close token")
	// ErrInvalidIdentifierCase indicates an unrecognized case policy name.
	ErrInvalidIdentifierCase = errors.New("identifier case must be upper, lower or mixed")
	// ErrInvalidParameterKind indicates an unrecognized parameter
	// direction name in a CLI or profile parameter spec.
	ErrInvalidParameterKind = errors.New("parameter kind must be in, out, inout or return")
)
