package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// authFailureMarkers are body fragments vendors use for credential or permission problems.
var authFailureMarkers = []string{
	"PERMISSION_DENIED",
	"Requested entity was not found",
	"UNAUTHENTICATED",
}

// VendorError records a failed call to an external vendor. It classifies as
// ErrVendorUnauthorized or ErrVendorUnavailable so callers can tell a
// re-authentication prompt apart from a retry prompt.
type VendorError struct {
	Vendor string
	// Status is the HTTP status returned by the vendor, 0 when no response arrived.
	Status int
	Body   []byte

	kind  *BaseError
	cause error
}

// NewVendorError builds a VendorError, classifying it from the status and body.
func NewVendorError(vendor string, status int, body []byte, cause error) *VendorError {
	kind := ErrVendorUnavailable
	if isAuthFailure(status, body) {
		kind = ErrVendorUnauthorized
	}

	return &VendorError{
		Vendor: vendor,
		Status: status,
		Body:   body,
		kind:   kind,
		cause:  cause,
	}
}

func isAuthFailure(status int, body []byte) bool {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return true
	}

	text := string(body)
	for _, marker := range authFailureMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	return false
}

func (e *VendorError) Error() string {
	var b strings.Builder
	b.WriteString(e.Vendor)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if len(e.Body) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(string(e.Body)))
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}

	return b.String()
}

func (e *VendorError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}

	return []error{e.kind, e.cause}
}

func (e *VendorError) Unauthorized() bool {
	return e.kind == ErrVendorUnauthorized
}

func (e *VendorError) HTTPCode() int {
	return e.kind.HTTPCode()
}

func (e *VendorError) ErrorCode() string {
	return e.kind.ErrorCode()
}

func (e *VendorError) Message() string {
	return e.kind.Message()
}

func (e *VendorError) Details() string {
	return e.Vendor
}
