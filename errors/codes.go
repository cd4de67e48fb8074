package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Sequence errors
const (
	// ErrCodeIndexOutOfRange indicates an index outside a sequence's bounds.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	// ErrCodeDuplicateKey indicates two elements share a lookup key.
	ErrCodeDuplicateKey ErrorCode = "DUPLICATE_KEY"
	// ErrCodeNotFound indicates the requested element was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a value has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeInvalidConfig indicates the loaded configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeUnsupported indicates an operation not supported for the input.
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED_OPERATION"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Exit codes follow the BSD sysexits convention.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
	ExitConfig   = 78
)

var exitCodes = map[ErrorCode]int{
	ErrCodeIndexOutOfRange: ExitDataErr,
	ErrCodeDuplicateKey:    ExitDataErr,
	ErrCodeNotFound:        ExitNoInput,
	ErrCodeInvalidInput:    ExitDataErr,
	ErrCodeMissingField:    ExitUsage,
	ErrCodeInvalidFormat:   ExitDataErr,
	ErrCodeInvalidConfig:   ExitConfig,
	ErrCodeUnsupported:     ExitUsage,
	ErrCodeInternal:        ExitSoftware,
}

// ExitCodeFor returns the process exit code for an error code.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return ExitFailure
}
