package errors

import "net/http"

// HTTPError is an error that already knows how it should be rendered.
type HTTPError struct {
	Status  int
	Message string
	Errors  *FieldErrors
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// Canonical messages rendered by the API.
const (
	MessageBadRequest          = "Bad Request"
	MessageUnauthorized        = "Unauthorized Access"
	MessageForbidden           = "Forbidden Access"
	MessageNotFound            = "Not Found"
	MessageUnprocessable       = "Unprocessable Entity"
	MessageTooManyRequests     = "Too Many Requests"
	MessageInternalServerError = "Internal Server Error"
)

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, MessageBadRequest)
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, MessageUnauthorized)
	ErrForbidden           = NewHTTPError(http.StatusForbidden, MessageForbidden)
	ErrNotFound            = NewHTTPError(http.StatusNotFound, MessageNotFound)
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, MessageTooManyRequests)
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, MessageInternalServerError)
)

// NewUnprocessable wraps field errors in a 422 HTTPError.
func NewUnprocessable(fields *FieldErrors) *HTTPError {
	return &HTTPError{
		Status:  http.StatusUnprocessableEntity,
		Message: MessageUnprocessable,
		Errors:  fields,
	}
}
