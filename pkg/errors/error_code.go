package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeUnknownParameter      ErrorCode = 100
	ErrCodeInvalidParameterValue ErrorCode = 101
	ErrCodeInvalidDefinition     ErrorCode = 102

	// Registry errors (200-299)
	ErrCodeUnknownIndicator    ErrorCode = 200
	ErrCodeDuplicateDefinition ErrorCode = 201

	// Compute/backend errors (300-399)
	ErrCodeUnsupportedBackend ErrorCode = 300
	ErrCodeMissingInput       ErrorCode = 301

	// Export errors (400-499)
	ErrCodeExportFailed ErrorCode = 400
)
