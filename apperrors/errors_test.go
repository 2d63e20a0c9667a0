package apperrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"salonbook/apperrors"
)

func TestMapToHTTPStatus(t *testing.T) {
	cases := []struct {
		err      error
		status   int
		category string
	}{
		{apperrors.NewNotFoundError("user %d", 7), http.StatusNotFound, "NOT_FOUND"},
		{apperrors.NewValidationError("duration must be positive"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{apperrors.NewConflictError("slot taken"), http.StatusConflict, "CONFLICT"},
		{apperrors.NewInvalidTransitionError("completed", "scheduled"), http.StatusUnprocessableEntity, "INVALID_TRANSITION"},
		{apperrors.NewReferentialIntegrityError("dangling link"), http.StatusInternalServerError, "REFERENTIAL_INTEGRITY"},
		{apperrors.NewInternalError("boom", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, c := range cases {
		status, category, msg := apperrors.MapToHTTPStatus(c.err)
		assert.Equal(t, c.status, status, c.category)
		assert.Equal(t, c.category, category)
		assert.NotEmpty(t, msg)
	}
}

func TestMapToHTTPStatus_UntypedError(t *testing.T) {
	status, category, _ := apperrors.MapToHTTPStatus(errors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "UNKNOWN_ERROR", category)
}

func TestInternalError_UnwrapsCause(t *testing.T) {
	cause := errors.New("smtp timeout")
	err := apperrors.NewInternalError("sending reminder", cause)
	assert.ErrorIs(t, err, cause)
}

func TestInvalidTransitionError_NamesBothStates(t *testing.T) {
	err := apperrors.NewInvalidTransitionError("cancelled", "completed")
	assert.Contains(t, err.Error(), "cancelled")
	assert.Contains(t, err.Error(), "completed")
}
