package errors

import (
	"errors"
	"fmt"
)

// Re-exported so callers only need this package.
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error extends the builtin error with a stable code.
type Error interface {
	error
	Code() string
	Unwrap() error
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the application error carried from repositories up to the HTTP boundary.
type AppError struct {
	code    string
	message string
	err     error
	details interface{}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message returns the message without the wrapped cause.
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// Details returns extra payload rendered to clients, e.g. []FieldError.
func (e *AppError) Details() interface{} {
	return e.details
}

// WithDetails returns a copy of e carrying details.
func (e *AppError) WithDetails(details interface{}) *AppError {
	cp := *e
	cp.details = details
	return &cp
}

// NewAppError creates an application error.
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// NewValidationError reports rejected request fields as INVALID_ARGUMENT.
func NewValidationError(fields []FieldError) *AppError {
	return &AppError{
		code:    ErrInvalidArgument,
		message: "validation failed",
		details: fields,
	}
}

// Wrap adds context to err, keeping the code of an existing AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return &AppError{
			code:    appErr.Code(),
			message: message,
			err:     err,
			details: appErr.Details(),
		}
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf returns the code of the first AppError in err's chain, ErrInternal otherwise.
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}
