package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/domain/errs"
)

func TestNewTitle(t *testing.T) {
	title, err := NewTitle("  My First Post  ")
	require.NoError(t, err)
	assert.Equal(t, "My First Post", title.String())

	_, err = NewTitle("")
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)
	assert.Equal(t, "Title cannot be empty", ve.Message)

	_, err = NewTitle("   \t  ")
	assert.ErrorAs(t, err, &ve)

	_, err = NewTitle(strings.Repeat("a", 201))
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Title cannot exceed 200 characters", ve.Message)

	// exactly at the ceiling is fine
	_, err = NewTitle(strings.Repeat("a", 200))
	assert.NoError(t, err)
}

func TestNewContent(t *testing.T) {
	c, err := NewContent("  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", c.String())

	var ve *errs.ValidationError
	_, err = NewContent("   ")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "content", ve.Field)
}

func TestNewEmail(t *testing.T) {
	ok := []string{
		"test@example.com",
		"a.b+c@sub.domain.org",
	}
	for _, in := range ok {
		_, err := NewEmail(in)
		assert.NoError(t, err, in)
	}

	bad := []string{
		"invalidemail",
		"invalid@",
		"@invalid.com",
		"inv alid@example.com",
	}
	var ve *errs.ValidationError
	for _, in := range bad {
		_, err := NewEmail(in)
		require.ErrorAs(t, err, &ve, in)
		assert.Equal(t, "Invalid email format", ve.Message, in)
	}

	_, err := NewEmail("   ")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Email cannot be empty", ve.Message)
}

func TestNewName(t *testing.T) {
	n, err := NewName(" John ", " Doe ")
	require.NoError(t, err)
	assert.Equal(t, "John", n.FirstName())
	assert.Equal(t, "Doe", n.LastName())
	assert.Equal(t, "John Doe", n.FullName())

	var ve *errs.ValidationError
	_, err = NewName("", "Doe")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "firstName", ve.Field)

	_, err = NewName("John", "  ")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "lastName", ve.Field)
}

func TestRehydrateSkipsValidation(t *testing.T) {
	// storage rows are trusted even when they would fail validation today
	title := RehydrateTitle("")
	assert.Equal(t, "", title.String())

	email := RehydrateEmail("not-an-email")
	assert.Equal(t, "not-an-email", email.String())
}
