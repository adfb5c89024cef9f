// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id"`

	StudentsName  string  `json:"students_name"  gorm:"type:varchar(100);not null;column:students_name"`
	StudentsPhone string  `json:"students_phone" gorm:"type:varchar(20);not null;column:students_phone"`
	StudentsEmail *string `json:"students_email,omitempty" gorm:"type:varchar(120);column:students_email"`

	// Kontak wali — wajib untuk siswa di bawah umur
	StudentsGuardianName  *string `json:"students_guardian_name,omitempty"  gorm:"type:varchar(100);column:students_guardian_name"`
	StudentsGuardianPhone *string `json:"students_guardian_phone,omitempty" gorm:"type:varchar(20);column:students_guardian_phone"`

	StudentsIsActive bool `json:"students_is_active" gorm:"type:boolean;not null;default:true;column:students_is_active"`

	StudentsCreatedAt time.Time      `json:"students_created_at" gorm:"column:students_created_at;not null;autoCreateTime"`
	StudentsUpdatedAt time.Time      `json:"students_updated_at" gorm:"column:students_updated_at;not null;autoUpdateTime"`
	StudentsDeletedAt gorm.DeletedAt `json:"students_deleted_at" gorm:"column:students_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
