package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrBindFlags     ErrorCode = "bind_flags_failed"
	ErrReadConfig    ErrorCode = "read_config_failed"
	ErrInvalidOutput ErrorCode = "invalid_output_path"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Resource errors
	ErrAlreadyRunning   ErrorCode = "already_running"
	ErrResourceNotFound ErrorCode = "resource_not_found"

	// Parse errors
	ErrAttributeNotFound ErrorCode = "attribute_not_found"
	ErrInvalidValue      ErrorCode = "invalid_value"

	// Application errors
	ErrReadSource   ErrorCode = "source_read_failed"
	ErrAppendCSV    ErrorCode = "csv_append_failed"
	ErrRecordStatus ErrorCode = "record_status_failed"

	// Operation errors
	ErrTimeout ErrorCode = "operation_timeout"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:          "Internal error occurred",
	ErrInvalidArgument:   "Invalid argument provided",
	ErrInvalidConfig:     "Invalid configuration",
	ErrBindFlags:         "Failed to bind flags",
	ErrReadConfig:        "Failed to read config file",
	ErrInvalidOutput:     "Invalid output path",
	ErrInvalidLogLevel:   "Invalid log level",
	ErrInitFailed:        "Initialization failed",
	ErrShutdownFailed:    "Shutdown failed",
	ErrAlreadyRunning:    "Another instance is already running",
	ErrResourceNotFound:  "Resource not found",
	ErrAttributeNotFound: "Attribute not found",
	ErrInvalidValue:      "Failed to parse value",
	ErrReadSource:        "Failed to read battery status",
	ErrAppendCSV:         "Failed to append CSV record",
	ErrRecordStatus:      "Failed to record battery status",
	ErrTimeout:           "Operation timed out",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
