package repository

import (
	"context"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

// PostRepository defines the storage contract for posts. GetByID returns
// (nil, nil) when no row matches.
type PostRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetAll(ctx context.Context) ([]*entity.Post, error)
	GetByUserID(ctx context.Context, userID string) ([]*entity.Post, error)
	GetByStatus(ctx context.Context, status entity.PostStatus) ([]*entity.Post, error)
	Create(ctx context.Context, p *entity.Post) error
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
}
