package errors

import (
	"net/http"

	"kinconnect/internal/errors"
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

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on error code so copies made by WithDetails still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
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
	// Request errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired session token",
		"",
	)

	// Session errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Session not found or expired",
		"",
	)

	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"Family member not found",
		"",
	)

	// Workflow errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"This step cannot be reached from the current step",
		"",
	)

	ErrActionNotAllowed = NewBaseError(
		http.StatusConflict,
		"ACTION_NOT_ALLOWED",
		"This action is not available at the current step",
		"",
	)

	ErrGenerationInProgress = NewBaseError(
		http.StatusConflict,
		"GENERATION_IN_PROGRESS",
		"A design is already being generated for this member",
		"",
	)

	ErrOrderInProgress = NewBaseError(
		http.StatusConflict,
		"ORDER_IN_PROGRESS",
		"This order is already being placed",
		"",
	)
	ErrDraftSuperseded = NewBaseError(
		http.StatusConflict,
		"DRAFT_SUPERSEDED",
		"The order was restarted while this request was running",
		"",
	)

	ErrNoGroupPhoto = NewBaseError(
		http.StatusBadRequest,
		"NO_GROUP_PHOTO",
		"Upload a group photo first",
		"",
	)

	ErrNoFrontArtwork = NewBaseError(
		http.StatusBadRequest,
		"NO_FRONT_ARTWORK",
		"Generate the family front design first",
		"",
	)

	// Order errors
	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"The order total must be greater than zero",
		"",
	)

	ErrNoValidLineItems = NewBaseError(
		http.StatusBadRequest,
		"NO_VALID_LINE_ITEMS",
		"No valid line items could be created from input",
		"",
	)

	ErrPaymentDeclined = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_DECLINED",
		"Payment was declined",
		"",
	)

	ErrFulfillmentNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"FULFILLMENT_NOT_CONFIGURED",
		"Printify auth/env not fully configured",
		"",
	)

	ErrPaymentNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_NOT_CONFIGURED",
		"Payment provider not configured",
		"",
	)

	ErrWebhookSignatureInvalid = NewBaseError(
		http.StatusBadRequest,
		"WEBHOOK_SIGNATURE_INVALID",
		"Webhook signature verification failed",
		"",
	)

	// Vendor errors
	ErrVendorUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"VENDOR_UNAUTHORIZED",
		"Authorization failed or API key invalid, please re-authenticate",
		"",
	)

	ErrVendorUnavailable = NewBaseError(
		http.StatusBadGateway,
		"VENDOR_UNAVAILABLE",
		"An external service failed, please try again",
		"",
	)

	ErrVendorNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"VENDOR_NOT_CONFIGURED",
		"The external service is not configured",
		"",
	)
)
