package router

import (
	"net/http"

	"github.com/MyelinBots/nabeatsu-go/internal/apperror"
)

var (
	// ErrInvalidData is sent when a value in request is invalid
	ErrInvalidData = "INVALID_DATA"
	// ErrParsing is sent when the request body or form cannot be parsed
	ErrParsing = "PARSING_ERROR"
	// ErrUnauthorized is sent when line_user_id does not belong to a known user
	ErrUnauthorized = "UNAUTHORIZED"
	// ErrForbidden is sent when the caller does not own the target
	ErrForbidden = "FORBIDDEN"
	// ErrNotFound is sent when a referenced entity is missing
	ErrNotFound = "NOT_FOUND"
	// ErrInternal is send when a internal server error occurs.
	ErrInternal = "INTERNAL_ERROR"
)

// fromError maps a service error onto the response sent to the client.
// Internal failures are logged and answered with a generic message.
func fromError(err error) *HTTPError {
	switch apperror.KindOf(err) {
	case apperror.Validation:
		return &HTTPError{IError: err, Level: 1, Status: http.StatusBadRequest, Message: apperror.MessageOf(err), ErrorCode: ErrInvalidData}
	case apperror.Unauthorized:
		return &HTTPError{IError: err, Level: 1, Status: http.StatusUnauthorized, Message: apperror.MessageOf(err), ErrorCode: ErrUnauthorized}
	case apperror.Forbidden:
		return &HTTPError{IError: err, Level: 1, Status: http.StatusForbidden, Message: apperror.MessageOf(err), ErrorCode: ErrForbidden}
	case apperror.NotFound:
		return &HTTPError{IError: err, Level: 1, Status: http.StatusNotFound, Message: apperror.MessageOf(err), ErrorCode: ErrNotFound}
	default:
		return handleInternalError(err)
	}
}

func handleInternalError(err error) *HTTPError {
	return &HTTPError{
		IError:    err,
		Level:     3,
		Status:    http.StatusInternalServerError,
		Message:   http.StatusText(http.StatusInternalServerError),
		ErrorCode: ErrInternal,
	}
}

func handleBadRequest(err error, code, message string) *HTTPError {
	return &HTTPError{
		IError:    err,
		Level:     1,
		Status:    http.StatusBadRequest,
		Message:   message,
		ErrorCode: code,
	}
}
