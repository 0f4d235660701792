package valueobject

import (
	"strings"

	"github.com/oksasatya/go-blog-api/internal/domain/errs"
)

const titleMaxLen = 200

// Title is the validated post title. Zero value is invalid; construct via
// NewTitle or RehydrateTitle.
type Title struct {
	value string
}

// NewTitle trims and validates the raw input.
func NewTitle(raw string) (Title, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Title{}, errs.Validation("title", "Title cannot be empty")
	}
	if len([]rune(trimmed)) > titleMaxLen {
		return Title{}, errs.Validation("title", "Title cannot exceed 200 characters")
	}
	return Title{value: trimmed}, nil
}

// RehydrateTitle rebuilds a Title from storage without re-validating.
// For repository use only; the public path is NewTitle.
func RehydrateTitle(value string) Title {
	return Title{value: value}
}

func (t Title) String() string { return t.value }
