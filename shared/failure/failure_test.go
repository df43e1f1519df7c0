package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "BadRequest",
			err:         failure.BadRequest(errors.New("validation failed")),
			wantCode:    http.StatusBadRequest,
			wantMessage: "validation failed",
		},
		{
			name:        "BadRequestFromString",
			err:         failure.BadRequestFromString("id must be an integer"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "id must be an integer",
		},
		{
			name:        "Unauthorized",
			err:         failure.Unauthorized("missing token"),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "missing token",
		},
		{
			name:        "Forbidden",
			err:         failure.Forbidden("staff only"),
			wantCode:    http.StatusForbidden,
			wantMessage: "staff only",
		},
		{
			name:        "NotFound",
			err:         failure.NotFound("booking"),
			wantCode:    http.StatusNotFound,
			wantMessage: "booking",
		},
		{
			name:        "Conflict",
			err:         failure.Conflict("room 12 is already occupied"),
			wantCode:    http.StatusConflict,
			wantMessage: "room 12 is already occupied",
		},
		{
			name:        "InternalError",
			err:         failure.InternalError(errors.New("boom")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "boom",
		},
		{
			name:        "Upstream keeps the collaborator's code",
			err:         failure.Upstream(http.StatusUnprocessableEntity, "invalid date range"),
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "invalid date range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMessage, tt.err.Error())
		})
	}
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	t.Run("plain error maps to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("opaque")))
	})

	t.Run("unwraps through fmt.Errorf", func(t *testing.T) {
		wrapped := fmt.Errorf("move booking 7: %w", failure.Conflict("occupied"))

		assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	})
}

func TestIsConflict(t *testing.T) {
	assert.True(t, failure.IsConflict(failure.Conflict("occupied")))
	assert.True(t, failure.IsConflict(failure.Upstream(http.StatusConflict, "occupied")))
	assert.False(t, failure.IsConflict(failure.NotFound("booking")))
	assert.False(t, failure.IsConflict(errors.New("opaque")))
}

func TestForbiddenError(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, failure.ForbiddenError.Code)
	assert.NotEmpty(t, failure.ForbiddenError.Message)
}
