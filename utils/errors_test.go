package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflictf("slot unavailable")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("booking %s not found", "b-1")))
	assert.Equal(t, KindInternal, KindOf(errors.New("raw error")))

	// Wrapped domain errors still classify.
	wrapped := fmt.Errorf("handler: %w", Forbiddenf("not a party to this booking"))
	assert.Equal(t, KindForbidden, KindOf(wrapped))
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[ErrorKind]int{
		KindValidation:        http.StatusBadRequest,
		KindInvalidOperation:  http.StatusBadRequest,
		KindInvalidTransition: http.StatusBadRequest,
		KindForbidden:         http.StatusForbidden,
		KindNotFound:          http.StatusNotFound,
		KindConflict:          http.StatusConflict,
		KindInternal:          http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.HTTPStatus(), "kind %s", kind)
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("mongo: connection reset")
	err := InternalError(cause)

	assert.Equal(t, "internal error", err.Message)
	assert.True(t, errors.Is(err, cause))
}
