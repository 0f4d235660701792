package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/errs"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/internal/domain/valueobject"
)

// PostService orchestrates post use cases: existence checks against the user
// store, value-object validation, entity mutation and persistence. Search and
// indexing against Elasticsearch are best effort and never fail a write.
type PostService struct {
	Posts        repo.PostRepository
	Users        repo.UserRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESPostsIndex string
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger, es *elasticsearch.Client, esPostsIndex string) *PostService {
	return &PostService{
		Posts:        posts,
		Users:        users,
		Logger:       logger,
		ES:           es,
		ESPostsIndex: esPostsIndex,
	}
}

func (s *PostService) GetAll(ctx context.Context) ([]PostDto, error) {
	posts, err := s.Posts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToPostDtoList(posts), nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*PostDto, error) {
	post, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errs.NotFound("Post", id)
	}
	dto := ToPostDto(post)
	return &dto, nil
}

func (s *PostService) GetByUserID(ctx context.Context, userID string) ([]PostDto, error) {
	posts, err := s.Posts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToPostDtoList(posts), nil
}

func (s *PostService) GetByStatus(ctx context.Context, status entity.PostStatus) ([]PostDto, error) {
	posts, err := s.Posts.GetByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return ToPostDtoList(posts), nil
}

// Create validates the author exists before anything is written, then builds
// the value objects and persists a fresh draft.
func (s *PostService) Create(ctx context.Context, userID string, in CreatePostDto) (*PostDto, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NotFound("User", userID)
	}

	title, err := valueobject.NewTitle(in.Title)
	if err != nil {
		return nil, err
	}
	content, err := valueobject.NewContent(in.Content)
	if err != nil {
		return nil, err
	}

	post := entity.NewPost(title, content, user)
	if err := s.Posts.Create(ctx, post); err != nil {
		return nil, err
	}

	_ = s.indexPost(ctx, post)

	dto := ToPostDto(post)
	return &dto, nil
}

// Update applies a partial update. A missing title or content side is
// resolved from the stored entity. Only "published" and "archived" are
// recognized status targets; anything else supplied is ignored because no
// explicit draft transition exists.
func (s *PostService) Update(ctx context.Context, id string, in UpdatePostDto) (*PostDto, error) {
	post, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errs.NotFound("Post", id)
	}

	if in.Title != nil || in.Content != nil {
		newTitle := post.Title
		if in.Title != nil {
			if newTitle, err = valueobject.NewTitle(*in.Title); err != nil {
				return nil, err
			}
		}
		newContent := post.Content
		if in.Content != nil {
			if newContent, err = valueobject.NewContent(*in.Content); err != nil {
				return nil, err
			}
		}
		post.Update(newTitle, newContent)
	}

	if in.Status != nil {
		switch entity.PostStatus(*in.Status) {
		case entity.PostStatusPublished:
			post.Publish()
		case entity.PostStatusArchived:
			post.Archive()
		}
	}

	if err := s.Posts.Update(ctx, post); err != nil {
		return nil, err
	}

	_ = s.indexPost(ctx, post)

	dto := ToPostDto(post)
	return &dto, nil
}

// Delete delegates to the repository, which reports a missing row itself.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.Posts.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *PostService) indexPost(ctx context.Context, p *entity.Post) error {
	if s.ES == nil || s.ESPostsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         p.ID,
		"title":      p.Title.String(),
		"content":    p.Content.String(),
		"status":     string(p.Status),
		"user_id":    p.UserID,
		"author":     p.AuthorName,
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *PostService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: id}
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match query over title and content.
func (s *PostService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESPostsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
