// Package errors provides the structured error type used across seqkit.
// Errors carry a machine-readable code, a message, optional details and an
// underlying cause, and map to process exit codes for command-line callers.
package errors
