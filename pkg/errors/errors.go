package errors

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeInvalidData          Code = "INVALID_DATA"
	CodeNotFound             Code = "NOT_FOUND"
	CodeCategoryNotFound     Code = "CATEGORY_NOT_FOUND"
	CodeInvalidSignature     Code = "INVALID_SIGNATURE"
	CodeIncorrectOldPassword Code = "INCORRECT_OLD_PASSWORD"
	CodeAlreadyExists        Code = "ALREADY_EXISTS"
	CodeBadCredentials       Code = "BAD_CREDENTIALS"
	CodePendingApproval      Code = "PENDING_APPROVAL"
)

var (
	ErrUnauthorized         = NewAppError(CodeUnauthorized, "Unauthorized access.", nil)
	ErrInvalidData          = NewAppError(CodeInvalidData, "Invalid data", nil)
	ErrInvalidSignature     = NewAppError(CodeInvalidSignature, "Invalid JWT signature", nil)
	ErrIncorrectOldPassword = NewAppError(CodeIncorrectOldPassword, "Incorrect Old Password", nil)
	ErrEmailAlreadyExists   = NewAppError(CodeAlreadyExists, "Email already exists", nil)
	ErrBadCredentials       = NewAppError(CodeBadCredentials, "Bad Credentials.", nil)
	ErrPendingApproval      = NewAppError(CodePendingApproval, "Wait for admin approval.", nil)
	ErrUserNotFoundByEmail  = NewAppError(CodeInvalidData, "User not found with the provided email.", nil)
	ErrUserIDNotFound       = NewAppError(CodeNotFound, "User id does not exist", nil)
)

type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports a match on code and message so that wrapped copies of a sentinel
// still satisfy errors.Is.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func NewAppError(code Code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func InvalidData(err error) *AppError {
	return NewAppError(CodeInvalidData, ErrInvalidData.Message, err)
}

func NotFound(format string, args ...any) *AppError {
	return NewAppError(CodeNotFound, fmt.Sprintf(format, args...), nil)
}

func CategoryNotFound(categoryID uint) *AppError {
	return NewAppError(CodeCategoryNotFound, fmt.Sprintf("Category with id %d does not exist.", categoryID), nil)
}

// CodeOf returns the code of the first AppError in err's chain.
func CodeOf(err error) (Code, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
