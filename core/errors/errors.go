// Package errors provides error handling for dtsgen.
//
// It re-exports github.com/cockroachdb/errors and defines the three error
// kinds the generator reports. Kinds are attached with errors.Mark so they
// survive any number of Wrap layers:
//
//	if errors.Is(err, errors.ErrParse) {
//	    // descriptor could not be decoded
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetailf  = crdb.WithDetailf
	Is           = crdb.Is
	As           = crdb.As
	Mark         = crdb.Mark
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

var (
	// ErrInvalidType marks a qualified type name with no trailing segment.
	ErrInvalidType = crdb.New("invalid type")
	// ErrParse marks descriptor content that is malformed or has the wrong shape.
	ErrParse = crdb.New("parse error")
	// ErrIO marks filesystem read or write failures.
	ErrIO = crdb.New("io error")
)

// InvalidType reports a type name that ends in a separator.
func InvalidType(typeName string) error {
	return crdb.Mark(crdb.Newf("invalid type %q: missing type name after last '.'", typeName), ErrInvalidType)
}

// Parse marks err as a descriptor parse failure for path.
func Parse(err error, path string) error {
	return crdb.Mark(crdb.Wrapf(err, "failed to parse descriptor %s", path), ErrParse)
}

// Parsef creates a new parse failure.
func Parsef(format string, args ...interface{}) error {
	return crdb.Mark(crdb.Newf(format, args...), ErrParse)
}

// IO marks err as a filesystem failure.
func IO(err error, format string, args ...interface{}) error {
	return crdb.Mark(crdb.Wrapf(err, format, args...), ErrIO)
}

// Kind returns a short name for the error kind carried by err, or "" if it
// carries none.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case crdb.Is(err, ErrInvalidType):
		return "invalid_type"
	case crdb.Is(err, ErrParse):
		return "parse"
	case crdb.Is(err, ErrIO):
		return "io"
	default:
		return ""
	}
}
