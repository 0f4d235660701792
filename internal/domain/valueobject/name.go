package valueobject

import (
	"strings"

	"github.com/oksasatya/go-blog-api/internal/domain/errs"
)

// Name is a person's first/last name pair.
type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	f := strings.TrimSpace(first)
	if f == "" {
		return Name{}, errs.Validation("firstName", "First name cannot be empty")
	}
	l := strings.TrimSpace(last)
	if l == "" {
		return Name{}, errs.Validation("lastName", "Last name cannot be empty")
	}
	return Name{first: f, last: l}, nil
}

// RehydrateName rebuilds a Name from storage without re-validating.
func RehydrateName(first, last string) Name {
	return Name{first: first, last: last}
}

func (n Name) FirstName() string { return n.first }
func (n Name) LastName() string  { return n.last }

func (n Name) FullName() string {
	return strings.TrimSpace(n.first + " " + n.last)
}

func (n Name) String() string { return n.FullName() }
