package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the failure taxonomy. Handlers map these onto HTTP
// status codes; anything unrecognised becomes a generic 500.
var (
	// ErrForbidden marks a valid identity attempting an action its role or
	// the self-action rules do not allow. Wrap it with a human-readable
	// reason: fmt.Errorf("%w: reason", ErrForbidden).
	ErrForbidden = errors.New("forbidden")

	// ErrPaymentProvider marks a failure talking to the payment processor.
	ErrPaymentProvider = errors.New("payment provider error")
)

// ValidationError carries a field -> message map describing a rejected
// payload. No write is performed when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewFieldError builds a single-field ValidationError.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
