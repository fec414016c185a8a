package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"careerai-web/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAs(t *testing.T) {
	t.Run("Should find an AppError through wrapping", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", apperror.BadRequest("Please fill in all required fields"))
		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Please fill in all required fields", appErr.Message)
	})

	t.Run("Should not match plain errors", func(t *testing.T) {
		_, ok := apperror.As(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestIsClientError(t *testing.T) {
	cause := errors.New("illegal")
	assert.True(t, apperror.IsClientError(apperror.Conflict("nope", cause)))
	assert.True(t, apperror.IsClientError(apperror.NotFound("Job not found")))
	assert.False(t, apperror.IsClientError(apperror.Internal(cause)))
	assert.False(t, apperror.IsClientError(cause))
	assert.ErrorIs(t, apperror.Conflict("nope", cause), cause)
}
