package apperrors

import (
	"fmt"
	"sort"
	"strings"
)

// Kinded is implemented by every error in this package. Kind is the name
// reported to API clients in the error envelope and the X-Error header.
type Kinded interface {
	error
	Kind() string
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", capitalize(e.Resource), e.ID)
	}
	return fmt.Sprintf("%s not found", capitalize(e.Resource))
}

func (e *NotFoundError) Kind() string { return "NotFoundError" }

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError carries one message per offending field. Field and Message
// describe the first failure for callers that only care about one.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 1 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
		}
		return strings.Join(parts, "; ")
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Kind() string { return "ValidationError" }

func NewValidationError(field, message string) *ValidationError {
	ve := &ValidationError{Field: field, Message: message}
	if field != "" {
		ve.Fields = map[string]string{field: message}
	}
	return ve
}

// NewFieldsValidationError returns nil when fields is empty so callers can
// collect failures and return the result unconditionally.
func NewFieldsValidationError(fields map[string]string) *ValidationError {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &ValidationError{
		Field:   keys[0],
		Message: fields[keys[0]],
		Fields:  fields,
	}
}

type DuplicateNameError struct {
	Resource string
	Name     string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s name already exists", capitalize(e.Resource))
}

func (e *DuplicateNameError) Kind() string { return "DuplicateNameError" }

func NewDuplicateNameError(resource, name string) *DuplicateNameError {
	return &DuplicateNameError{Resource: resource, Name: name}
}

type InvalidAPIVersionError struct {
	Requested string
}

func (e *InvalidAPIVersionError) Error() string {
	return "The requested API version is not supported"
}

func (e *InvalidAPIVersionError) Kind() string { return "InvalidApiVersionError" }

func NewInvalidAPIVersionError(requested string) *InvalidAPIVersionError {
	return &InvalidAPIVersionError{Requested: requested}
}

type ServiceUnavailableError struct {
	Message string
}

func (e *ServiceUnavailableError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("service unavailable: %s", e.Message)
	}
	return "service unavailable"
}

func (e *ServiceUnavailableError) Kind() string { return "ServiceUnavailableError" }

func NewServiceUnavailableError(message string) *ServiceUnavailableError {
	return &ServiceUnavailableError{Message: message}
}

type TimeoutError struct {
	Operation string
}

func (e *TimeoutError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("operation timed out: %s", e.Operation)
	}
	return "operation timed out"
}

func (e *TimeoutError) Kind() string { return "TimeoutError" }

func NewTimeoutError(operation string) *TimeoutError {
	return &TimeoutError{Operation: operation}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
