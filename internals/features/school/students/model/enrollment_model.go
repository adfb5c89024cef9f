// file: internals/features/school/students/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "bimbelku_backend/internals/features/school/course_groups/model"
)

/* =======================================================
   EnrollmentModel — keanggotaan siswa di satu course group.
   Satu siswa maksimal satu enrollment per grup (hard delete,
   keluar-masuk grup = hapus lalu daftar ulang).
   ======================================================= */

type EnrollmentModel struct {
	// PK
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"type:uuid;primaryKey;column:enrollment_id"`

	EnrollmentsStudentID uuid.UUID `json:"enrollments_student_id" gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_group;column:enrollments_student_id"`
	EnrollmentsGroupID   uuid.UUID `json:"enrollments_group_id"   gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_group;column:enrollments_group_id"`

	EnrollmentsJoinedAt time.Time `json:"enrollments_joined_at" gorm:"type:date;not null;column:enrollments_joined_at"`
	EnrollmentsIsActive bool      `json:"enrollments_is_active" gorm:"type:boolean;not null;default:true;column:enrollments_is_active"`

	EnrollmentsCreatedAt time.Time `json:"enrollments_created_at" gorm:"column:enrollments_created_at;not null;autoCreateTime"`
	EnrollmentsUpdatedAt time.Time `json:"enrollments_updated_at" gorm:"column:enrollments_updated_at;not null;autoUpdateTime"`

	// Relasi opsional (preload)
	Student StudentModel                `json:"-" gorm:"foreignKey:EnrollmentsStudentID;references:StudentID;constraint:OnDelete:CASCADE"`
	Group   groupModel.CourseGroupModel `json:"-" gorm:"foreignKey:EnrollmentsGroupID;references:CourseGroupID;constraint:OnDelete:CASCADE"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}
