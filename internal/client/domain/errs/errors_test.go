package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"goodnotes/internal/client/domain/errs"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "http error",
			err:  errs.HTTP("GET /notes", http.StatusServiceUnavailable, "Service Unavailable"),
			want: "API Error: 503 - Service Unavailable",
		},
		{
			name: "http error without status text",
			err:  errs.HTTP("GET /notes/1", http.StatusNotFound, ""),
			want: "API Error: 404 - Not Found",
		},
		{
			name: "not found",
			err:  errs.NotFound("toggle", "Action item not found"),
			want: "Action item not found",
		},
		{
			name: "validation",
			err:  errs.Validation("create", errors.New("title must not be empty")),
			want: "invalid input: title must not be empty",
		},
		{
			name: "not implemented",
			err:  errs.NotImplemented("search"),
			want: "search is not implemented",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorsIsMatchesKind(t *testing.T) {
	wrapped := fmt.Errorf("store: %w", errs.NotFound("update", "Note not found"))

	assert.ErrorIs(t, wrapped, errs.ErrNotFound)
	assert.NotErrorIs(t, wrapped, errs.ErrTransport)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(wrapped))
	assert.Equal(t, errs.KindUnknown, errs.KindOf(errors.New("plain")))
}

func TestTransportUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.Transport("GET /notes", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errs.ErrTransport)
	assert.Equal(t, "API request failed: connection refused", err.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, errs.IsNotFound(errs.NotFound("get", "Note not found")))
	assert.True(t, errs.IsNotFound(errs.HTTP("get", http.StatusNotFound, "Not Found")))
	assert.False(t, errs.IsNotFound(errs.HTTP("get", http.StatusInternalServerError, "")))
	assert.False(t, errs.IsNotFound(errors.New("not found")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", errs.Message(nil, "fallback"))
	assert.Equal(t, "boom", errs.Message(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", errs.Message(errors.New(""), "fallback"))
}
