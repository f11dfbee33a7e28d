package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("product", "prod_123")
	assert.Equal(t, "Product prod_123 not found", err.Error())
	assert.Equal(t, "NotFoundError", err.Kind())

	assert.Equal(t, "Product not found", NewNotFoundError("product", "").Error())
}

func TestValidationError_SingleField(t *testing.T) {
	err := NewValidationError("price", "must be greater than 0")
	assert.Equal(t, "price: must be greater than 0", err.Error())
	assert.Equal(t, map[string]string{"price": "must be greater than 0"}, err.Fields)
}

func TestValidationError_NoField(t *testing.T) {
	err := NewValidationError("", "invalid request body")
	assert.Equal(t, "invalid request body", err.Error())
	assert.Nil(t, err.Fields)
}

func TestNewFieldsValidationError(t *testing.T) {
	assert.Nil(t, NewFieldsValidationError(nil))
	assert.Nil(t, NewFieldsValidationError(map[string]string{}))

	err := NewFieldsValidationError(map[string]string{
		"price": "must be greater than 0",
		"name":  "must not be blank",
	})
	require.NotNil(t, err)
	assert.Equal(t, "name", err.Field)
	assert.Equal(t, "must not be blank", err.Message)
	assert.Equal(t, "name: must not be blank; price: must be greater than 0", err.Error())
}

func TestKindsSurviveWrapping(t *testing.T) {
	cases := []struct {
		err  error
		kind string
	}{
		{NewNotFoundError("product", "x"), "NotFoundError"},
		{NewValidationError("name", "bad"), "ValidationError"},
		{NewDuplicateNameError("product", "Widget"), "DuplicateNameError"},
		{NewInvalidAPIVersionError("0.9"), "InvalidApiVersionError"},
		{NewServiceUnavailableError("db down"), "ServiceUnavailableError"},
		{NewTimeoutError("list products"), "TimeoutError"},
	}

	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tc.err)

			var kinded Kinded
			require.True(t, errors.As(wrapped, &kinded))
			assert.Equal(t, tc.kind, kinded.Kind())
		})
	}
}

func TestDuplicateNameError(t *testing.T) {
	err := NewDuplicateNameError("product", "Widget")
	assert.Equal(t, "Product name already exists", err.Error())
	assert.Equal(t, "Widget", err.Name)
}
