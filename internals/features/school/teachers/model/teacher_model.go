// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id"`

	TeachersName  string  `json:"teachers_name"  gorm:"type:varchar(100);not null;column:teachers_name"`
	TeachersPhone string  `json:"teachers_phone" gorm:"type:varchar(20);not null;column:teachers_phone"`
	TeachersEmail *string `json:"teachers_email,omitempty" gorm:"type:varchar(120);column:teachers_email"`

	// Mapel yang diajar (text[])
	TeachersSubjects pq.StringArray `json:"teachers_subjects" gorm:"type:text[];column:teachers_subjects"`

	// Tarif per jam (DH) — dipakai konsumen payroll
	TeachersHourlyRate float64 `json:"teachers_hourly_rate" gorm:"type:numeric(8,2);not null;column:teachers_hourly_rate"`

	TeachersIsActive bool `json:"teachers_is_active" gorm:"type:boolean;not null;default:true;column:teachers_is_active"`

	TeachersCreatedAt time.Time      `json:"teachers_created_at" gorm:"column:teachers_created_at;not null;autoCreateTime"`
	TeachersUpdatedAt time.Time      `json:"teachers_updated_at" gorm:"column:teachers_updated_at;not null;autoUpdateTime"`
	TeachersDeletedAt gorm.DeletedAt `json:"teachers_deleted_at" gorm:"column:teachers_deleted_at;index"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}
