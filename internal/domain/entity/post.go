package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-blog-api/internal/domain/valueobject"
)

// Post is the aggregate root for blog posts. It owns its own lifecycle; the
// author relation is carried only as the UserID scalar.
type Post struct {
	ID      string
	Title   valueobject.Title
	Content valueobject.Content
	Status  PostStatus

	// UserID is empty for posts created without an author.
	UserID string
	// AuthorName is a read-only projection of the author's username, filled
	// in by the repository when it loads the post. Never written back.
	AuthorName string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewPost creates a draft post. A nil author is legal and leaves UserID empty.
func NewPost(title valueobject.Title, content valueobject.Content, author *User) *Post {
	p := &Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Status:    PostStatusDraft,
		CreatedAt: time.Now().UTC(),
	}
	if author != nil {
		p.UserID = author.ID
		p.AuthorName = author.Username
	}
	return p
}

// RehydratePost rebuilds a post from storage, bypassing the validating
// constructor.
func RehydratePost(id string, title valueobject.Title, content valueobject.Content, status PostStatus, userID, authorName string, createdAt time.Time, updatedAt *time.Time) *Post {
	return &Post{
		ID:         id,
		Title:      title,
		Content:    content,
		Status:     status,
		UserID:     userID,
		AuthorName: authorName,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// Update replaces title and content. No guard against equal values.
func (p *Post) Update(title valueobject.Title, content valueobject.Content) {
	p.Title = title
	p.Content = content
	p.touch()
}

// Publish moves the post to published regardless of its current status.
func (p *Post) Publish() {
	p.Status = PostStatusPublished
	p.touch()
}

// Archive moves the post to archived regardless of its current status.
func (p *Post) Archive() {
	p.Status = PostStatusArchived
	p.touch()
}

func (p *Post) touch() {
	now := time.Now().UTC()
	p.UpdatedAt = &now
}
