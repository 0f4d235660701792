package application

import "github.com/oksasatya/go-blog-api/internal/domain/entity"

// ToUserDto maps a user entity to its transport shape. The credential hash
// never crosses this boundary.
func ToUserDto(u *entity.User) UserDto {
	dto := UserDto{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Status:    string(u.Status),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Name != nil {
		dto.FullName = u.Name.FullName()
	}
	return dto
}

func ToUserDtoList(users []*entity.User) []UserDto {
	out := make([]UserDto, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDto(u))
	}
	return out
}
