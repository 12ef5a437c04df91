package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/storefront/constant"
)

type CustomError struct {
	errType constant.ErrorType
	cause   error
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Unwrap exposes the underlying store or driver error, if any.
func (c CustomError) Unwrap() error {
	return c.cause
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Wrap keeps the original error as cause while presenting errorType to callers.
func Wrap(errorType constant.ErrorType, cause error) CustomError {
	return CustomError{
		errType: errorType,
		cause:   cause,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}
