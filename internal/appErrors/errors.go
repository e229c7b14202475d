package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class across the API surface.
type ErrorCode string

// AppError is the error type every handler ultimately responds with.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication / authorization
	ErrUnauthorized = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrForbidden    = New(CodeForbidden, "Access denied", http.StatusForbidden)

	// Resources
	ErrUserNotFound        = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrProjectNotFound     = New(CodeProjectNotFound, "Project not found", http.StatusNotFound)
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrInvalidID        = New(CodeInvalidID, "Invalid identifier", http.StatusBadRequest)
	ErrInvalidAction    = New(CodeInvalidAction, "Invalid action. Use 'approve' or 'reject'", http.StatusBadRequest)

	// Approval workflow
	ErrProjectNotAccepting  = New(CodeProjectNotAccepting, "This project is not accepting applications", http.StatusConflict)
	ErrNoSeatsAvailable     = New(CodeNoSeatsAvailable, "No seats available for this project", http.StatusConflict)
	ErrDuplicateApplication = New(CodeDuplicateApplication, "You have already applied to this project", http.StatusConflict)
	ErrAlreadyProcessed     = New(CodeAlreadyProcessed, "Application has already been processed", http.StatusConflict)
	ErrSeatCountOutOfRange  = New(CodeSeatCountOutOfRange, "Seat count must stay between 0 and total seats", http.StatusBadRequest)

	// Payments / webhooks
	ErrInvalidPaymentRequest = New(CodeInvalidPaymentRequest, "Missing required payment fields", http.StatusBadRequest)
	ErrInvalidSignature      = New(CodeInvalidSignature, "Invalid signature", http.StatusBadRequest)
	ErrWebhookVerifyFailed   = New(CodeWebhookVerifyFailed, "Webhook signature verification failed", http.StatusBadRequest)
)

// Helpers for errors built with details at the call site.

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func ExternalServiceError(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "External service request failed", http.StatusBadGateway)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}
