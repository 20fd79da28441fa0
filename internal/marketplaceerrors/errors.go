package marketplaceerrors

import (
	"errors"
	"sort"
	"strings"
)

// Repository-level errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrBidNotFound      = errors.New("bid not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrRatingNotFound   = errors.New("rating not found")
	ErrDuplicateName    = errors.New("duplicate category name")
)

// access errors
var (
	ErrUnauthenticated = errors.New("authentication credentials were not provided")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
)

// ValidationError carries client-correctable problems keyed by request field.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for field, keeping the first one reported.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// OrNil returns nil when no field failed, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsValidation extracts a ValidationError from an error chain
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
