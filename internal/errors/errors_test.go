package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypes_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", ValidationError("bad input"), http.StatusBadRequest},
		{"not found", NotFoundError("missing"), http.StatusNotFound},
		{"unavailable", UnavailableError("store down", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"internal", InternalError("boom", errors.New("cause")), http.StatusInternalServerError},
		{"unknown type defaults to 500", &Error{Type: "mystery"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestError_MessageFormat(t *testing.T) {
	plain := ValidationError("bad input")
	assert.Equal(t, "validation: bad input", plain.Error())

	withCause := InternalError("query failed", errors.New("connection reset"))
	assert.Equal(t, "internal: query failed: connection reset", withCause.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := InternalError("wrapper", cause)

	assert.ErrorIs(t, err, cause)
}

func TestError_WithField(t *testing.T) {
	err := NotFoundError("menu item not found").
		WithField("slug", "veg-biryani").
		WithField("attempt", 2)

	assert.Equal(t, "veg-biryani", err.Context["slug"])
	assert.Equal(t, 2, err.Context["attempt"])
}

func TestError_ToResponse(t *testing.T) {
	err := ValidationError("slug must not be empty").WithField("slug", "")

	resp := err.ToResponse()

	assert.Equal(t, "slug must not be empty", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, "", resp.Context["slug"])
}

func TestAsStructuredError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.Nil(t, AsStructuredError(nil))
	})

	t.Run("structured error returned unchanged", func(t *testing.T) {
		orig := NotFoundError("gone")
		assert.Same(t, orig, AsStructuredError(orig))
	})

	t.Run("wrapped structured error is unwrapped", func(t *testing.T) {
		orig := UnavailableError("store down", nil)
		wrapped := fmt.Errorf("handler: %w", orig)
		assert.Same(t, orig, AsStructuredError(wrapped))
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := AsStructuredError(errors.New("surprise"))
		require.NotNil(t, got)
		assert.Equal(t, TypeInternal, got.Type)
		assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus())
	})
}
