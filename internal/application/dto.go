package application

import "time"

// DTO shapes crossing the service boundary. Statuses travel as lowercase
// strings ("draft", "published", "archived" / "active", "inactive").

type PostDto struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	UserID    string     `json:"user_id"`
	UserName  string     `json:"user_name,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CreatePostDto struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	// Status is accepted on the wire but new posts always start as drafts.
	Status string `json:"status,omitempty"`
}

type UpdatePostDto struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Status  *string `json:"status,omitempty"`
}

type UserDto struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name,omitempty"`
	Status    string     `json:"status"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CreateUserDto struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserDto struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// UpdateProfileInput drives the authenticated profile update. First and last
// name are set together (the Name value object requires both).
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Status    string
}
