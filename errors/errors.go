package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an application error class
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Payroll / liquidation errors
	ErrCodeInvalidInput           ErrorCode = "INVALID_INPUT"
	ErrCodeInvalidDateRange       ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeMissingTerminationDate ErrorCode = "MISSING_TERMINATION_DATE"
	ErrCodeLiquidationExists      ErrorCode = "LIQUIDATION_EXISTS"
	ErrCodeToleranceExceeded      ErrorCode = "TOLERANCE_EXCEEDED"
	ErrCodeInvalidAmount          ErrorCode = "INVALID_AMOUNT"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError carries a code, a human message and an optional cause
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err is an AppError with the given code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is inactive")

	// Payroll errors
	ErrPayrollNotFound = errors.New("payroll not found")
	ErrPayrollPaid     = errors.New("payroll already paid")

	// Liquidation errors
	ErrLiquidationExists      = errors.New("liquidation already exists")
	ErrInvalidDateRange       = errors.New("termination date precedes hire date")
	ErrMissingTerminationDate = errors.New("employee has no termination date")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
