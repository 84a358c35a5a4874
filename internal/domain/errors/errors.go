package errors

import (
	"net/http"

	"taskboard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is treats two BaseErrors with the same business error code as the same
// error, so copies produced by WithDetails still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUsernameAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USERNAME_ALREADY_EXISTS",
		"此使用者名稱已被註冊",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"建立使用者失敗",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"帳號或密碼錯誤",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"尚未登入或憑證無效",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Task-related errors
	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"找不到該任務",
		"",
	)

	ErrTaskCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"TASK_CREATION_FAILED",
		"建立任務失敗",
		"",
	)

	ErrTaskUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"TASK_UPDATE_FAILED",
		"更新任務失敗",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrInvalidTaskStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TASK_STATUS",
		"無效的任務狀態",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
