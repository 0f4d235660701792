package repository

import (
	"context"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

// UserRepository defines the storage contract for users. Lookups return
// (nil, nil) when no row matches; services translate that into a typed
// not-found error.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Create persists the user together with its credential secret and
	// assigns u.ID.
	Create(ctx context.Context, u *entity.User, password string) error
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
