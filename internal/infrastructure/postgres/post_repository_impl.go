package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/errs"
	"github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/internal/domain/valueobject"
)

// selectPost joins the author's username in place of the original design's
// navigation property; the entity carries it as a read-only scalar.
const selectPost = `
	SELECT p.id, p.title, p.content, p.status, p.user_id, COALESCE(u.username, ''), p.created_at, p.updated_at
	FROM posts p
	LEFT JOIN users u ON u.id = p.user_id
`

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	var (
		id, title, content, status, authorName string
		userID                                 *string
		createdAt                              time.Time
		updatedAt                              *time.Time
	)
	if err := row.Scan(&id, &title, &content, &status, &userID, &authorName, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	uid := ""
	if userID != nil {
		uid = *userID
	}
	return entity.RehydratePost(
		id,
		valueobject.RehydrateTitle(title),
		valueobject.RehydrateContent(content),
		entity.PostStatus(status),
		uid,
		authorName,
		createdAt,
		updatedAt,
	), nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, selectPost+` WHERE p.id = $1`, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.Persistence("get post by id", err)
	}
	return p, nil
}

func (r *PostRepository) GetAll(ctx context.Context) ([]*entity.Post, error) {
	return r.query(ctx, selectPost+` ORDER BY p.created_at DESC`)
}

func (r *PostRepository) GetByUserID(ctx context.Context, userID string) ([]*entity.Post, error) {
	return r.query(ctx, selectPost+` WHERE p.user_id = $1 ORDER BY p.created_at DESC`, userID)
}

func (r *PostRepository) GetByStatus(ctx context.Context, status entity.PostStatus) ([]*entity.Post, error) {
	return r.query(ctx, selectPost+` WHERE p.status = $1 ORDER BY p.created_at DESC`, string(status))
}

func (r *PostRepository) query(ctx context.Context, sql string, args ...any) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Persistence("list posts", err)
	}
	defer rows.Close()

	var posts []*entity.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, errs.Persistence("scan post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Persistence("list posts", err)
	}
	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	var userID *string
	if p.UserID != "" {
		userID = &p.UserID
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, content, status, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.Title.String(), p.Content.String(), string(p.Status), userID, p.CreatedAt)
	if err != nil {
		return errs.Persistence("create post", err)
	}
	return nil
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, status = $3, updated_at = $4
		WHERE id = $5
	`, p.Title.String(), p.Content.String(), string(p.Status), p.UpdatedAt, p.ID)
	if err != nil {
		return errs.Persistence("update post", err)
	}
	if res.RowsAffected() == 0 {
		return errs.NotFound("Post", p.ID)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return errs.Persistence("delete post", err)
	}
	if res.RowsAffected() == 0 {
		return errs.NotFound("Post", id)
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
