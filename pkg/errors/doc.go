// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "foundry not found in PATH",
//	    lookErr,
//	    map[string]interface{}{
//	        "bin": bin,
//	    },
//	)
package errors
