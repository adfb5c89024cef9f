// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "bimbelku_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UsersName     string  `json:"users_name"     validate:"required,min=1,max=100"`
	UsersEmail    string  `json:"users_email"    validate:"required,email,max=120"`
	UsersPassword string  `json:"users_password" validate:"required,min=8,max=72"`
	UsersRole     *string `json:"users_role,omitempty" validate:"omitempty,oneof=admin staff"`
}

func (r *RegisterRequest) Normalize() {
	r.UsersName = strings.TrimSpace(r.UsersName)
	r.UsersEmail = strings.ToLower(strings.TrimSpace(r.UsersEmail))
}

type LoginRequest struct {
	UsersEmail    string `json:"users_email"    validate:"required,email"`
	UsersPassword string `json:"users_password" validate:"required"`
}

type UserResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	UsersName      string    `json:"users_name"`
	UsersEmail     string    `json:"users_email"`
	UsersRole      string    `json:"users_role"`
	UsersIsActive  bool      `json:"users_is_active"`
	UsersCreatedAt time.Time `json:"users_created_at"`
}

func ToUserResponse(src m.UserModel) UserResponse {
	return UserResponse{
		UserID:         src.UserID,
		UsersName:      src.UsersName,
		UsersEmail:     src.UsersEmail,
		UsersRole:      src.UsersRole,
		UsersIsActive:  src.UsersIsActive,
		UsersCreatedAt: src.UsersCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
