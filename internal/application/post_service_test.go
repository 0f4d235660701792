package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/errs"
	"github.com/oksasatya/go-blog-api/internal/testing/memrepo"
)

func newPostFixture(t *testing.T) (*PostService, *memrepo.PostRepository, *entity.User) {
	t.Helper()
	users := memrepo.NewUserRepository()
	posts := memrepo.NewPostRepository()

	author := entity.NewUser("jdoe", "jdoe@example.com", nil)
	author.ID = "u-1"
	users.Seed(author)

	svc := &PostService{Posts: posts, Users: users}
	return svc, posts, author
}

func TestPostServiceCreate(t *testing.T) {
	svc, posts, author := newPostFixture(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, author.ID, CreatePostDto{Title: "  Hello  ", Content: "first post"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", dto.Title)
	assert.Equal(t, "draft", dto.Status)
	assert.Equal(t, author.ID, dto.UserID)
	assert.Equal(t, "jdoe", dto.UserName)
	assert.Nil(t, dto.UpdatedAt)
	assert.Equal(t, 1, posts.Len())
}

func TestPostServiceCreateUnknownAuthor(t *testing.T) {
	svc, posts, _ := newPostFixture(t)

	_, err := svc.Create(context.Background(), "nope", CreatePostDto{Title: "Hello", Content: "x"})
	var nf *errs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "User", nf.Kind)
	// nothing was written
	assert.Equal(t, 0, posts.Len())
}

func TestPostServiceCreateInvalidTitle(t *testing.T) {
	svc, posts, author := newPostFixture(t)

	_, err := svc.Create(context.Background(), author.ID, CreatePostDto{Title: "   ", Content: "x"})
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)
	assert.Equal(t, 0, posts.Len())
}

func TestPostServiceUpdatePartial(t *testing.T) {
	svc, _, author := newPostFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, author.ID, CreatePostDto{Title: "Hello", Content: "original body"})
	require.NoError(t, err)

	newTitle := "Hello v2"
	dto, err := svc.Update(ctx, created.ID, UpdatePostDto{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Hello v2", dto.Title)
	// content untouched by a title-only update
	assert.Equal(t, "original body", dto.Content)
	assert.NotNil(t, dto.UpdatedAt)
}

func TestPostServiceUpdateStatus(t *testing.T) {
	svc, _, author := newPostFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, author.ID, CreatePostDto{Title: "Hello", Content: "body"})
	require.NoError(t, err)
	require.Equal(t, "draft", created.Status)

	status := "published"
	dto, err := svc.Update(ctx, created.ID, UpdatePostDto{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "published", dto.Status)
	assert.NotNil(t, dto.UpdatedAt)

	// "draft" is not a recognized transition target and is ignored
	status = "draft"
	dto, err = svc.Update(ctx, created.ID, UpdatePostDto{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "published", dto.Status)

	status = "archived"
	dto, err = svc.Update(ctx, created.ID, UpdatePostDto{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "archived", dto.Status)
}

func TestPostServiceUpdateMissing(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	title := "x"
	_, err := svc.Update(context.Background(), "missing", UpdatePostDto{Title: &title})
	var nf *errs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Post", nf.Kind)
}

func TestPostServiceGetters(t *testing.T) {
	svc, _, author := newPostFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, author.ID, CreatePostDto{Title: "One", Content: "a"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, author.ID, CreatePostDto{Title: "Two", Content: "b"})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byUser, err := svc.GetByUserID(ctx, author.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byUser, err = svc.GetByUserID(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, byUser)

	drafts, err := svc.GetByStatus(ctx, entity.PostStatusDraft)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)

	published, err := svc.GetByStatus(ctx, entity.PostStatusPublished)
	require.NoError(t, err)
	assert.Empty(t, published)

	got, err := svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "One", got.Title)

	_, err = svc.GetByID(ctx, "missing")
	var nf *errs.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestPostServiceDelete(t *testing.T) {
	svc, posts, author := newPostFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, author.ID, CreatePostDto{Title: "Gone soon", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, 0, posts.Len())

	// the repository reports the missing row
	var nf *errs.NotFoundError
	err = svc.Delete(ctx, created.ID)
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Post", nf.Kind)
}
