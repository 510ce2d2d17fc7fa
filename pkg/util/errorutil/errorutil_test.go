package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThroughWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewNotFound("employee", map[string]any{"id": int64(7)}))

	de := ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, CodeNotFound, de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "employee not found", de.Message)
	assert.Equal(t, int64(7), de.Details["id"])
}

func TestToDomainErrorWrapsUnknownAsInternal(t *testing.T) {
	cause := errors.New("disk full")

	de := ToDomainError(cause)
	assert.Equal(t, CodeInternal, de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.ErrorIs(t, de, cause)
	assert.Nil(t, ToDomainError(nil))
}

func TestNewFieldErrors(t *testing.T) {
	err := NewFieldErrors(map[string]string{"fullName": "Full name is required"})

	assert.True(t, IsCode(err, CodeValidation))
	de := ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, "Full name is required", de.Details["fullName"])
}

func TestIsCode(t *testing.T) {
	assert.False(t, IsCode(errors.New("plain"), CodeInternal))
	assert.True(t, IsCode(NewUnauthorized("no"), CodeUnauthorized))
	assert.False(t, IsCode(nil, CodeUnauthorized))
}
