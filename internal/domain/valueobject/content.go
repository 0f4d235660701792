package valueobject

import (
	"strings"

	"github.com/oksasatya/go-blog-api/internal/domain/errs"
)

// Content is the validated post body. No length ceiling.
type Content struct {
	value string
}

func NewContent(raw string) (Content, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Content{}, errs.Validation("content", "Content cannot be empty")
	}
	return Content{value: trimmed}, nil
}

// RehydrateContent rebuilds Content from storage without re-validating.
func RehydrateContent(value string) Content {
	return Content{value: value}
}

func (c Content) String() string { return c.value }
