// Package errors provides structured error types for programmatic error
// handling across the generator, oracle and CLI packages.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeOverflow,
//	    "version component exceeds 64-bit range",
//	    cause,
//	    map[string]any{
//	        "input": s,
//	    },
//	)
//
// Generators that detect an internal consistency failure panic with an
// ErrCodeInternal error instead of returning it.
package errors
