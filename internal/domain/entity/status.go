package entity

// PostStatus is the post lifecycle state. Transitions are unrestricted:
// Publish and Archive overwrite whatever state the post is in.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// ParsePostStatus returns the status for a wire value, false when unknown.
func ParsePostStatus(s string) (PostStatus, bool) {
	switch PostStatus(s) {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return PostStatus(s), true
	}
	return "", false
}

// UserStatus is the user lifecycle state.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

func ParseUserStatus(s string) (UserStatus, bool) {
	switch UserStatus(s) {
	case UserStatusActive, UserStatusInactive:
		return UserStatus(s), true
	}
	return "", false
}
