package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/domain/valueobject"
)

func mustTitle(t *testing.T, s string) valueobject.Title {
	t.Helper()
	title, err := valueobject.NewTitle(s)
	require.NoError(t, err)
	return title
}

func mustContent(t *testing.T, s string) valueobject.Content {
	t.Helper()
	c, err := valueobject.NewContent(s)
	require.NoError(t, err)
	return c
}

func TestNewPost(t *testing.T) {
	author := NewUser("jdoe", "jdoe@example.com", nil)
	author.ID = "u-1"

	p := NewPost(mustTitle(t, "First"), mustContent(t, "body"), author)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, PostStatusDraft, p.Status)
	assert.Nil(t, p.UpdatedAt)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "jdoe", p.AuthorName)

	// ids are unique per post
	p2 := NewPost(mustTitle(t, "Second"), mustContent(t, "body"), author)
	assert.NotEqual(t, p.ID, p2.ID)
}

func TestNewPostWithoutAuthor(t *testing.T) {
	p := NewPost(mustTitle(t, "Orphan"), mustContent(t, "body"), nil)
	assert.Equal(t, PostStatusDraft, p.Status)
	assert.Empty(t, p.UserID)
	assert.Empty(t, p.AuthorName)
}

func TestPostLifecycle(t *testing.T) {
	p := NewPost(mustTitle(t, "Draft"), mustContent(t, "body"), nil)

	p.Publish()
	assert.Equal(t, PostStatusPublished, p.Status)
	require.NotNil(t, p.UpdatedAt)
	first := *p.UpdatedAt

	// archive follows publish with no transition guard
	p.Archive()
	assert.Equal(t, PostStatusArchived, p.Status)
	require.NotNil(t, p.UpdatedAt)
	assert.False(t, p.UpdatedAt.Before(first))

	// republishing an archived post is allowed too
	p.Publish()
	assert.Equal(t, PostStatusPublished, p.Status)
}

func TestPostUpdate(t *testing.T) {
	p := NewPost(mustTitle(t, "Old"), mustContent(t, "old body"), nil)
	require.Nil(t, p.UpdatedAt)

	p.Update(mustTitle(t, "New"), mustContent(t, "new body"))
	assert.Equal(t, "New", p.Title.String())
	assert.Equal(t, "new body", p.Content.String())
	assert.NotNil(t, p.UpdatedAt)
	assert.Equal(t, PostStatusDraft, p.Status)
}

func TestNewUser(t *testing.T) {
	u := NewUser("jdoe", "jdoe@example.com", nil)
	assert.Empty(t, u.ID)
	assert.Equal(t, UserStatusActive, u.Status)
	assert.Nil(t, u.Name)
	assert.Nil(t, u.UpdatedAt)
}

func TestUserMutators(t *testing.T) {
	u := NewUser("jdoe", "jdoe@example.com", nil)

	name, err := valueobject.NewName("John", "Doe")
	require.NoError(t, err)
	u.Update(&name, UserStatusActive)
	require.NotNil(t, u.Name)
	assert.Equal(t, "John Doe", u.Name.FullName())
	assert.NotNil(t, u.UpdatedAt)

	u.ChangeEmail("new@example.com")
	assert.Equal(t, "new@example.com", u.Email)

	u.ChangeUsername("johnny")
	assert.Equal(t, "johnny", u.Username)

	u.Deactivate()
	assert.Equal(t, UserStatusInactive, u.Status)
}

func TestParsePostStatus(t *testing.T) {
	s, ok := ParsePostStatus("published")
	assert.True(t, ok)
	assert.Equal(t, PostStatusPublished, s)

	_, ok = ParsePostStatus("Published")
	assert.False(t, ok)

	_, ok = ParsePostStatus("deleted")
	assert.False(t, ok)
}

func TestParseUserStatus(t *testing.T) {
	s, ok := ParseUserStatus("inactive")
	assert.True(t, ok)
	assert.Equal(t, UserStatusInactive, s)

	_, ok = ParseUserStatus("banned")
	assert.False(t, ok)
}
