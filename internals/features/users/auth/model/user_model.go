// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id"`

	UsersName  string `json:"users_name"  gorm:"type:varchar(100);not null;column:users_name"`
	UsersEmail string `json:"users_email" gorm:"type:varchar(120);not null;uniqueIndex:uq_users_email,where:users_deleted_at IS NULL;column:users_email"`

	// bcrypt hash, tidak pernah ikut response
	UsersPassword string `json:"-" gorm:"type:varchar(100);not null;column:users_password"`

	// admin | staff
	UsersRole string `json:"users_role" gorm:"type:varchar(20);not null;default:'staff';column:users_role"`

	UsersIsActive bool `json:"users_is_active" gorm:"type:boolean;not null;default:true;column:users_is_active"`

	UsersCreatedAt time.Time      `json:"users_created_at" gorm:"column:users_created_at;not null;autoCreateTime"`
	UsersUpdatedAt time.Time      `json:"users_updated_at" gorm:"column:users_updated_at;not null;autoUpdateTime"`
	UsersDeletedAt gorm.DeletedAt `json:"users_deleted_at" gorm:"column:users_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
