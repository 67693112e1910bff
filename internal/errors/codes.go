package errors

import "sync"

// Common error codes
const (
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrInvalidUsage    ErrorCode = "invalid_usage"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"
	ErrInvalidFormat   ErrorCode = "invalid_format"
)

var (
	messagesMu    sync.RWMutex
	errorMessages = map[ErrorCode]string{
		ErrInvalidArgument: "Invalid argument provided",
		ErrInvalidUsage:    "Invalid usage",
		ErrInvalidConfig:   "Invalid configuration",
		ErrBindFlags:       "Failed to bind flags",
		ErrReadConfig:      "Failed to read config file",
		ErrInvalidLogLevel: "Invalid log level",
		ErrInvalidFormat:   "Invalid output format",
	}
)

// RegisterMessages adds the messages of a package's own codes. Packages
// call it from init.
func RegisterMessages(messages map[ErrorCode]string) {
	messagesMu.Lock()
	defer messagesMu.Unlock()

	for code, msg := range messages {
		errorMessages[code] = msg
	}
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	messagesMu.RLock()
	defer messagesMu.RUnlock()

	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
