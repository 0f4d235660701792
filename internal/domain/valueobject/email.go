package valueobject

import (
	"strings"

	"github.com/oksasatya/go-blog-api/internal/domain/errs"
)

// Email is a validated email address. The check is deliberately light: one
// non-empty local part, a dotted domain when a domain part exists, and no
// whitespace anywhere.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, errs.Validation("email", "Email cannot be empty")
	}
	if !validEmail(raw) {
		return Email{}, errs.Validation("email", "Invalid email format")
	}
	return Email{value: raw}, nil
}

func validEmail(v string) bool {
	if !strings.Contains(v, "@") || strings.ContainsAny(v, " \t") {
		return false
	}
	parts := strings.Split(v, "@")
	if parts[0] == "" {
		return false
	}
	if len(parts) > 1 && !strings.Contains(parts[1], ".") {
		return false
	}
	return true
}

// RehydrateEmail rebuilds an Email from storage without re-validating.
func RehydrateEmail(value string) Email {
	return Email{value: value}
}

func (e Email) String() string { return e.value }
