package post

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "post not found",
			err:        ErrPostNotFound,
			wantCode:   "POST_NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "duplicate slug",
			err:        ErrDuplicateSlug,
			wantCode:   "DUPLICATE_SLUG",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing identifier",
			err:        ErrMissingIdentifier,
			wantCode:   "BAD_REQUEST",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped sentinel still maps",
			err:        fmt.Errorf("creating post: %w", ErrDuplicateSlug),
			wantCode:   "DUPLICATE_SLUG",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown error",
			err:        errors.New("connection reset"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ToErrorCode(tt.err))
			assert.Equal(t, tt.wantStatus, ToHTTPStatus(tt.err))
		})
	}
}
