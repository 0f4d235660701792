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
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

const userColumns = `id, username, email, password_hash, first_name, last_name, status, avatar_url, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id, username, email, passwordHash, status, avatarURL string
		firstName, lastName                                  *string
		createdAt                                            time.Time
		updatedAt                                            *time.Time
	)
	if err := row.Scan(&id, &username, &email, &passwordHash, &firstName, &lastName, &status, &avatarURL, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var name *valueobject.Name
	if firstName != nil && lastName != nil {
		n := valueobject.RehydrateName(*firstName, *lastName)
		name = &n
	}
	return entity.RehydrateUser(id, username, email, name, entity.UserStatus(status), avatarURL, passwordHash, createdAt, updatedAt), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, value)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.Persistence("get user by "+column, err)
	}
	return u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, errs.Persistence("list users", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, errs.Persistence("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Persistence("list users", err)
	}
	return users, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

func (r *UserRepository) exists(ctx context.Context, column, value string) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE `+column+` = $1)`, value).Scan(&found)
	if err != nil {
		return false, errs.Persistence("exists user by "+column, err)
	}
	return found, nil
}

// Create hashes the credential secret and inserts the user. The UNIQUE
// constraints on email and username are the authoritative uniqueness guard;
// a violation surfaces here as a persistence error.
func (r *UserRepository) Create(ctx context.Context, u *entity.User, password string) error {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return errs.Persistence("hash password", err)
	}
	var firstName, lastName *string
	if u.Name != nil {
		f, l := u.Name.FirstName(), u.Name.LastName()
		firstName, lastName = &f, &l
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, first_name, last_name, status, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, u.Username, u.Email, hash, firstName, lastName, string(u.Status), u.AvatarURL, u.CreatedAt)
	if err := row.Scan(&u.ID); err != nil {
		return errs.Persistence("create user", err)
	}
	u.PasswordHash = hash
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	var firstName, lastName *string
	if u.Name != nil {
		f, l := u.Name.FirstName(), u.Name.LastName()
		firstName, lastName = &f, &l
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, first_name = $3, last_name = $4, status = $5, avatar_url = $6, updated_at = $7
		WHERE id = $8
	`, u.Username, u.Email, firstName, lastName, string(u.Status), u.AvatarURL, u.UpdatedAt, u.ID)
	if err != nil {
		return errs.Persistence("update user", err)
	}
	if res.RowsAffected() == 0 {
		return errs.NotFound("User", u.ID)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return errs.Persistence("delete user", err)
	}
	if res.RowsAffected() == 0 {
		return errs.NotFound("User", id)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
