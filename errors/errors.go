// Package errors provides error handling for assocgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints surfaced to CLI users
//
// It also defines the two fatal error classes of a generation run:
//
//	// Malformed or inconsistent input schema
//	return errors.NewSchemaErrorf("entity %q: unknown target %q", src, dst)
//
//	// Internal inconsistency discovered during emission
//	return errors.NewGenerationErrorf("entity %q: method %q declared twice", name, m)
//
//	// Check errors
//	if errors.IsSchemaError(err) {
//	    // exit with the schema-error code
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll

	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the two fatal failure classes of a run.
// Wrap these with errors.Wrap() to add context while preserving the type;
// check with errors.Is() or the helpers below.
var (
	// ErrSchema indicates a malformed or inconsistent input schema:
	// a dangling entity reference, a missing join-table name, or an
	// alias collision. Always fatal to the run.
	ErrSchema = New("invalid schema")

	// ErrGeneration indicates an internal inconsistency discovered during
	// emission, such as two distinct method signatures resolving to the
	// same name. Always fatal to the run.
	ErrGeneration = New("generation failed")
)

// IsSchemaError checks if an error is or wraps ErrSchema
func IsSchemaError(err error) bool {
	return err != nil && Is(err, ErrSchema)
}

// IsGenerationError checks if an error is or wraps ErrGeneration
func IsGenerationError(err error) bool {
	return err != nil && Is(err, ErrGeneration)
}

// NewSchemaErrorf creates a schema error with a formatted message.
// The message should identify the offending entity or association.
func NewSchemaErrorf(format string, args ...interface{}) error {
	return Wrap(ErrSchema, Newf(format, args...).Error())
}

// NewGenerationErrorf creates a generation error with a formatted message.
// The message should identify the offending entity and method.
func NewGenerationErrorf(format string, args ...interface{}) error {
	return Wrap(ErrGeneration, Newf(format, args...).Error())
}

// WrapSchema wraps an error as a schema error with context
func WrapSchema(err error, context string) error {
	return Wrap(Wrap(ErrSchema, err.Error()), context)
}
