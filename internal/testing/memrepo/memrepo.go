// Package memrepo provides in-memory repository implementations for tests.
package memrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/errs"
	"github.com/oksasatya/go-blog-api/internal/domain/repository"
)

// UserRepository keeps users in a map guarded by a mutex.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User

	// CreateErr, when set, is returned by Create before any write.
	CreateErr error
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

// Seed inserts a user directly, bypassing Create.
func (r *UserRepository) Seed(u *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetAll(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Create(_ context.Context, u *entity.User, password string) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.PasswordHash = "hashed:" + password
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return errs.NotFound("User", u.ID)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return errs.NotFound("User", id)
	}
	delete(r.users, id)
	return nil
}

// Len reports the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// PostRepository keeps posts in a map guarded by a mutex.
type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]*entity.Post
}

var _ repository.PostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*entity.Post)}
}

func (r *PostRepository) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *PostRepository) GetAll(_ context.Context) ([]*entity.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*entity.Post) bool { return true }), nil
}

func (r *PostRepository) GetByUserID(_ context.Context, userID string) ([]*entity.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p *entity.Post) bool { return p.UserID == userID }), nil
}

func (r *PostRepository) GetByStatus(_ context.Context, status entity.PostStatus) ([]*entity.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p *entity.Post) bool { return p.Status == status }), nil
}

func (r *PostRepository) collect(keep func(*entity.Post) bool) []*entity.Post {
	out := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *PostRepository) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *PostRepository) Update(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[p.ID]; !ok {
		return errs.NotFound("Post", p.ID)
	}
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *PostRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return errs.NotFound("Post", id)
	}
	delete(r.posts, id)
	return nil
}

// Len reports the number of stored posts.
func (r *PostRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}
