package application

import "github.com/oksasatya/go-blog-api/internal/domain/entity"

// ToPostDto maps a post entity to its transport shape. Pure; no failure mode.
func ToPostDto(p *entity.Post) PostDto {
	return PostDto{
		ID:        p.ID,
		Title:     p.Title.String(),
		Content:   p.Content.String(),
		UserID:    p.UserID,
		UserName:  p.AuthorName,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToPostDtoList(posts []*entity.Post) []PostDto {
	out := make([]PostDto, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToPostDto(p))
	}
	return out
}
