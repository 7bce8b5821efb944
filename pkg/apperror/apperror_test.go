package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom_PassesThroughAppError(t *testing.T) {
	orig := NotFound("product not found")

	got := From(fmt.Errorf("adjusting stock: %w", orig))

	assert.Equal(t, CodeNotFound, got.Code)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "product not found", got.Message)
}

func TestFrom_WrapsUnknownAsInternal(t *testing.T) {
	got := From(errors.New("pq: connection refused"))

	assert.Equal(t, CodeInternal, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	// Raw driver text goes into details, never into the client message.
	assert.NotContains(t, got.Message, "pq:")
	assert.Contains(t, got.Details, "connection refused")
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", Conflict("duplicate barcode"))

	assert.True(t, IsCode(err, CodeConflict))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), CodeConflict))
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{InsufficientStock("low"), http.StatusConflict},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("no role"), http.StatusForbidden},
		{Internal("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status, tc.err.Code)
	}
}

func TestWithDetails_DoesNotMutateOriginal(t *testing.T) {
	base := Conflict("duplicate")
	detailed := base.WithDetails("unique constraint products_sku_key")

	assert.Empty(t, base.Details)
	assert.Equal(t, "unique constraint products_sku_key", detailed.Details)
}
