package errors

// HTTPError pairs a status code with a client-facing message. Delivery layers
// build these from domain errors; pkg/response writes them out.
type HTTPError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) HTTPError {
	return HTTPError{
		Status:  status,
		Message: message,
	}
}
