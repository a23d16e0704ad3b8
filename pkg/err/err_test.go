package errprocess

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lifetube/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	logger.SetNewNop()

	assert.Equal(t, http.StatusBadRequest, StatusCode(New(Validation, "bad input")))
	assert.Equal(t, http.StatusForbidden, StatusCode(New(Unauthorized, "Unauthorized")))
	assert.Equal(t, http.StatusNotFound, StatusCode(New(NotFound, "missing")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(New(Internal, "boom")))

	// untyped errors collapse to 500
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("plain")))
}

func TestStatusCodeWrappedError(t *testing.T) {
	logger.SetNewNop()

	inner := New(NotFound, "missing")
	wrapped := fmt.Errorf("handler: %w", inner)

	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
}

func TestErrorMessage(t *testing.T) {
	logger.SetNewNop()

	assert.Equal(t, "missing", New(NotFound, "missing").Error())

	cause := errors.New("db error")
	wrapped := Wrap(Internal, "Server error", cause)
	assert.Equal(t, "Server error: db error", wrapped.Error())
	assert.True(t, errors.Is(wrapped, cause))
}
