package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/valueobject"
)

func TestToPostDto(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)
	p := entity.RehydratePost(
		"p-1",
		valueobject.RehydrateTitle("Hello"),
		valueobject.RehydrateContent("body"),
		entity.PostStatusPublished,
		"u-1", "jdoe",
		created, &updated,
	)

	dto := ToPostDto(p)
	assert.Equal(t, "p-1", dto.ID)
	assert.Equal(t, "Hello", dto.Title)
	assert.Equal(t, "body", dto.Content)
	assert.Equal(t, "published", dto.Status)
	assert.Equal(t, "u-1", dto.UserID)
	assert.Equal(t, "jdoe", dto.UserName)
	assert.Equal(t, created, dto.CreatedAt)
	require.NotNil(t, dto.UpdatedAt)
	assert.Equal(t, updated, *dto.UpdatedAt)
}

func TestToUserDto(t *testing.T) {
	name := valueobject.RehydrateName("John", "Doe")
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u := entity.RehydrateUser("u-1", "jdoe", "jdoe@example.com", &name, entity.UserStatusActive, "https://cdn/x.png", "bcrypt-hash", created, nil)

	dto := ToUserDto(u)
	assert.Equal(t, "u-1", dto.ID)
	assert.Equal(t, "John Doe", dto.FullName)
	assert.Equal(t, "https://cdn/x.png", dto.AvatarURL)
	assert.Nil(t, dto.UpdatedAt)

	// nameless users map with an empty full name
	u.Name = nil
	dto = ToUserDto(u)
	assert.Empty(t, dto.FullName)
}

func TestToDtoLists(t *testing.T) {
	assert.Empty(t, ToPostDtoList(nil))
	assert.Empty(t, ToUserDtoList(nil))

	posts := []*entity.Post{
		entity.RehydratePost("p-1", valueobject.RehydrateTitle("a"), valueobject.RehydrateContent("x"), entity.PostStatusDraft, "", "", time.Now(), nil),
		entity.RehydratePost("p-2", valueobject.RehydrateTitle("b"), valueobject.RehydrateContent("y"), entity.PostStatusDraft, "", "", time.Now(), nil),
	}
	dtos := ToPostDtoList(posts)
	require.Len(t, dtos, 2)
	assert.Equal(t, "p-1", dtos[0].ID)
	assert.Equal(t, "p-2", dtos[1].ID)
}
