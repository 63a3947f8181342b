package response

import "time"

const (
	// MessageSuccess is the message carried by every OK envelope.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "internal server error"

	// InternalServerErrorCode is the envelope error code for unmapped failures.
	InternalServerErrorCode = 500

	// DateFormat is the wire format for date-only values.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = time.RFC3339
)
