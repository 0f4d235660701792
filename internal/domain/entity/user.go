package entity

import (
	"time"

	"github.com/oksasatya/go-blog-api/internal/domain/valueobject"
)

// User is the aggregate root for registered authors. The ID is assigned by the
// storage layer on create. PasswordHash is populated only on rehydration and
// is never mapped out of the service layer.
type User struct {
	ID       string
	Username string
	Email    string
	Name     *valueobject.Name
	Status   UserStatus

	AvatarURL    string
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewUser creates an active user. Name may be nil.
func NewUser(username, email string, name *valueobject.Name) *User {
	return &User{
		Username:  username,
		Email:     email,
		Name:      name,
		Status:    UserStatusActive,
		CreatedAt: time.Now().UTC(),
	}
}

// RehydrateUser rebuilds a user from storage, bypassing the validating
// constructor.
func RehydrateUser(id, username, email string, name *valueobject.Name, status UserStatus, avatarURL, passwordHash string, createdAt time.Time, updatedAt *time.Time) *User {
	return &User{
		ID:           id,
		Username:     username,
		Email:        email,
		Name:         name,
		Status:       status,
		AvatarURL:    avatarURL,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Update replaces name and status.
func (u *User) Update(name *valueobject.Name, status UserStatus) {
	u.Name = name
	u.Status = status
	u.touch()
}

// Deactivate forces the user inactive.
func (u *User) Deactivate() {
	u.Status = UserStatusInactive
	u.touch()
}

// ChangeEmail sets a new address. Uniqueness is the service's concern.
func (u *User) ChangeEmail(email string) {
	u.Email = email
	u.touch()
}

// ChangeUsername sets a new username. Uniqueness is the service's concern.
func (u *User) ChangeUsername(username string) {
	u.Username = username
	u.touch()
}

// ChangeAvatar sets the avatar URL.
func (u *User) ChangeAvatar(url string) {
	u.AvatarURL = url
	u.touch()
}

func (u *User) touch() {
	now := time.Now().UTC()
	u.UpdatedAt = &now
}
