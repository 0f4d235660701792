package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "title: Title cannot be empty", Validation("title", "Title cannot be empty").Error())
	assert.Equal(t, "Post with ID 42 not found", NotFound("Post", "42").Error())
	assert.Equal(t, "Email is already in use", Conflict("Email is already in use").Error())
}

func TestPersistenceUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("users.create", cause)
	assert.Equal(t, "persistence: users.create: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NotFound("User", "u-1"))
	var nf *NotFoundError
	require.ErrorAs(t, wrapped, &nf)
	assert.Equal(t, "User", nf.Kind)
	assert.Equal(t, "u-1", nf.ID)
}
