package errors

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ToHTTPStatus converts an error code into an HTTP status code.
func ToHTTPStatus(code string) int {
	return GetCodeMapping(code)
}

// NewErrorResponse builds the status code and body for err.
func NewErrorResponse(err error, now time.Time) (int, ErrorResponse) {
	var appErr *AppError
	if As(err, &appErr) {
		return ToHTTPStatus(appErr.Code()), ErrorResponse{
			Code:      appErr.Code(),
			Message:   appErr.Message(),
			Details:   appErr.Details(),
			Timestamp: now,
		}
	}

	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = http.StatusText(echoErr.Code)
		}
		return echoErr.Code, ErrorResponse{
			Code:      httpStatusToCode(echoErr.Code),
			Message:   msg,
			Timestamp: now,
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Code:      ErrInternal,
		Message:   http.StatusText(http.StatusInternalServerError),
		Timestamp: now,
	}
}

// FromHTTPError converts an echo HTTP error into an AppError.
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return err
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		code := httpStatusToCode(echoErr.Code)
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = "HTTP error"
		}
		return NewAppError(code, msg, echoErr.Internal)
	}

	return NewAppError(ErrInternal, err.Error(), err)
}
