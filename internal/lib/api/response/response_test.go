package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	t.Parallel()

	resp := OK()

	assert.True(t, resp.Ok)
	assert.Empty(t, resp.Error)
}

func TestError(t *testing.T) {
	t.Parallel()

	resp := Error("something broke")

	assert.False(t, resp.Ok)
	assert.Equal(t, "something broke", resp.Error)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	type request struct {
		Title string `validate:"required"`
		Email string `validate:"required"`
	}

	err := validator.New().Struct(request{})
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.ErrorAs(t, err, &validateErr)

	resp := ValidationError(validateErr)

	assert.False(t, resp.Ok)
	assert.Contains(t, resp.Error, "field Title is a required field")
	assert.Contains(t, resp.Error, "field Email is a required field")
}
