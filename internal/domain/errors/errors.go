package errors

import (
	"fmt"
	"net/http"

	"reviewhub/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches another BaseError carrying the same error code, so errors produced
// by WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	// Credential-related errors
	ErrCredentialNotFound = NewBaseError(
		http.StatusNotFound,
		"CREDENTIAL_NOT_FOUND",
		"No connected account found for this platform",
		"",
	)

	ErrCredentialInactive = NewBaseError(
		http.StatusUnauthorized,
		"CREDENTIAL_INACTIVE",
		"The connected account has been disconnected",
		"",
	)

	ErrCredentialExpired = NewBaseError(
		http.StatusUnauthorized,
		"CREDENTIAL_EXPIRED",
		"The connected account token has expired",
		"",
	)

	ErrCredentialAmbiguous = NewBaseError(
		http.StatusConflict,
		"CREDENTIAL_AMBIGUOUS",
		"More than one connected account matches this platform",
		"",
	)

	// Platform-related errors
	ErrUnsupportedPlatform = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PLATFORM",
		"Platform is not supported for this operation",
		"",
	)

	ErrPlatformRequestFailed = NewBaseError(
		http.StatusBadGateway,
		"PLATFORM_REQUEST_FAILED",
		"The platform rejected the request",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrResponseNotFound = NewBaseError(
		http.StatusNotFound,
		"RESPONSE_NOT_FOUND",
		"Review response not found",
		"",
	)

	ErrResponseAlreadyExists = NewBaseError(
		http.StatusConflict,
		"RESPONSE_ALREADY_EXISTS",
		"This review already has a response",
		"",
	)

	ErrInvalidResponseTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_RESPONSE_TRANSITION",
		"The response cannot move to the requested status",
		"",
	)

	// Listing-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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

// Unwrap exposes the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// PublishFailureReason classifies why publishing a reply to a platform failed.
type PublishFailureReason string

const (
	PublishReasonNoCredential   PublishFailureReason = "no_credential"
	PublishReasonExpiredToken   PublishFailureReason = "expired_token"
	PublishReasonRemoteRejected PublishFailureReason = "remote_rejected"
	PublishReasonBrokenLink     PublishFailureReason = "broken_link"
)

// PublishError is returned when a review response could not be delivered to its platform.
// Nothing is persisted when it is raised.
type PublishError struct {
	Platform string
	Reason   PublishFailureReason
	err      error
}

// NewPublishError builds a PublishError for platform with the given reason and cause.
func NewPublishError(platform string, reason PublishFailureReason, cause error) *PublishError {
	return &PublishError{
		Platform: platform,
		Reason:   reason,
		err:      cause,
	}
}

// Error implements the error interface
func (e *PublishError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("publish to %s failed: %s", e.Platform, e.Reason)
	}

	return fmt.Sprintf("publish to %s failed: %s: %v", e.Platform, e.Reason, e.err)
}

// Unwrap returns the underlying cause
func (e *PublishError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PublishError) HTTPCode() int {
	switch e.Reason {
	case PublishReasonNoCredential:
		return http.StatusPreconditionFailed
	case PublishReasonExpiredToken:
		return http.StatusUnauthorized
	case PublishReasonBrokenLink:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *PublishError) ErrorCode() string {
	return "PUBLISH_FAILED"
}

// Message returns the user-friendly error message
func (e *PublishError) Message() string {
	switch e.Reason {
	case PublishReasonNoCredential:
		return fmt.Sprintf("No %s account is connected for this location", e.Platform)
	case PublishReasonExpiredToken:
		return fmt.Sprintf("The %s connection has expired, please reconnect", e.Platform)
	case PublishReasonBrokenLink:
		return fmt.Sprintf("The review can no longer be replied to on %s", e.Platform)
	default:
		return fmt.Sprintf("%s rejected the reply", e.Platform)
	}
}

// Details returns detailed error information
func (e *PublishError) Details() string {
	return string(e.Reason)
}
