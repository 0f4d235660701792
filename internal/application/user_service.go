package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/errs"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/internal/domain/valueobject"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
	"github.com/oksasatya/go-blog-api/pkg/mailer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService orchestrates user use cases. Uniqueness checks here exist for
// the friendlier error; the database UNIQUE constraints are the authoritative
// guard against the check-then-write race.
type UserService struct {
	Repo      repo.UserRepository
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Redis     *redis.Client
	Logger    *logrus.Logger
	Pub       *helpers.RabbitPublisher
}

func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger, pub *helpers.RabbitPublisher) *UserService {
	return &UserService{
		Repo:      repo,
		JWT:       jwt,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Redis:     rdb,
		Logger:    logger,
		Pub:       pub,
	}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func (s *UserService) GetAll(ctx context.Context) ([]UserDto, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToUserDtoList(users), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*UserDto, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NotFound("User", id)
	}
	dto := ToUserDto(user)
	return &dto, nil
}

// Create registers a new user. The email conflict is reported before the
// username conflict; neither check touches storage for writes.
func (s *UserService) Create(ctx context.Context, in CreateUserDto) (*UserDto, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	taken, err := s.Repo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.Conflict("Email is already in use")
	}

	taken, err = s.Repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.Conflict("Username is already taken")
	}

	// No name information at registration time.
	user := entity.NewUser(in.Username, email.String(), nil)
	if err := s.Repo.Create(ctx, user, in.Password); err != nil {
		return nil, err
	}

	s.publishWelcome(ctx, user)

	dto := ToUserDto(user)
	return &dto, nil
}

// Update changes email and/or username. A value equal to the caller's current
// one is a no-op, and the holder of a wanted value being the caller is not a
// conflict.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserDto) (*UserDto, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NotFound("User", id)
	}

	if in.Email != nil && *in.Email != user.Email {
		email, err := valueobject.NewEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		holder, err := s.Repo.GetByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if holder != nil && holder.ID != id {
			return nil, errs.Conflict("Email is already in use")
		}
		user.ChangeEmail(email.String())
	}

	if in.Username != nil && *in.Username != user.Username {
		holder, err := s.Repo.GetByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if holder != nil && holder.ID != id {
			return nil, errs.Conflict("Username is already taken")
		}
		user.ChangeUsername(*in.Username)
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}

	dto := ToUserDto(user)
	return &dto, nil
}

// Delete delegates to the repository, which reports a missing row itself.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// UpdateProfile sets the user's display name and, optionally, status through
// the entity's own update path.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*UserDto, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NotFound("User", id)
	}

	name := user.Name
	if in.FirstName != "" || in.LastName != "" {
		n, err := valueobject.NewName(in.FirstName, in.LastName)
		if err != nil {
			return nil, err
		}
		name = &n
	}
	status := user.Status
	if in.Status != "" {
		if st, ok := entity.ParseUserStatus(in.Status); ok {
			status = st
		}
	}
	user.Update(name, status)

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.refreshSession(ctx, user)

	dto := ToUserDto(user)
	return &dto, nil
}

// Deactivate forces the user inactive and drops any live session.
func (s *UserService) Deactivate(ctx context.Context, id string) (*UserDto, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NotFound("User", id)
	}

	user.Deactivate()
	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if s.Redis != nil {
		_ = s.Redis.Del(ctx, sessionKey(user.ID)).Err()
	}

	dto := ToUserDto(user)
	return &dto, nil
}

// Authenticate validates email/password without issuing tokens. Inactive
// users cannot log in.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if u.Status == entity.UserStatusInactive {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates an access/refresh pair and records a session in Redis.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"username":   u.Username,
			"avatar_url": u.AvatarURL,
			"logged_in":  true,
			"created_at": nowRFC3339(),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh rotates the token pair if the refresh token and session are valid.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, sessionKey(u.ID)).Result()
		if rErr != nil || len(data) == 0 {
			return TokenPair{}, "", ErrInvalidCredentials
		}
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return TokenPair{}, "", err
	}
	return pair, u.ID, nil
}

// UploadAvatar streams an avatar into GCS and stores the resulting URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errs.NotFound("User", userID)
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}

	user.ChangeAvatar(url)
	if err := s.Repo.Update(ctx, user); err != nil {
		return "", err
	}
	s.refreshSession(ctx, user)
	return url, nil
}

func (s *UserService) refreshSession(ctx context.Context, u *entity.User) {
	if s.Redis == nil {
		return
	}
	key := sessionKey(u.ID)
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"username":   u.Username,
		"avatar_url": u.AvatarURL,
		"updated_at": nowRFC3339(),
	})
	if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
		s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
	}
}

func (s *UserService) publishWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data: map[string]any{
			"Username": u.Username,
			"Email":    u.Email,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email publish failed")
	}
}
