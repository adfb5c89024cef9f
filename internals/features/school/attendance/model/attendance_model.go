// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "bimbelku_backend/internals/features/school/course_groups/model"
	studentModel "bimbelku_backend/internals/features/school/students/model"
)

/* =======================================================
   AttendanceModel — presensi siswa per (grup, tanggal).
   Satu entri per siswa per grup per tanggal.
   ======================================================= */

type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `json:"attendance_id" gorm:"type:uuid;primaryKey;column:attendance_id"`

	AttendancesStudentID uuid.UUID `json:"attendances_student_id" gorm:"type:uuid;not null;uniqueIndex:uq_attendances_student_group_date;column:attendances_student_id"`
	AttendancesGroupID   uuid.UUID `json:"attendances_group_id"   gorm:"type:uuid;not null;uniqueIndex:uq_attendances_student_group_date;column:attendances_group_id"`
	AttendancesDate      time.Time `json:"attendances_date"       gorm:"type:date;not null;uniqueIndex:uq_attendances_student_group_date;column:attendances_date"`

	AttendancesPresent bool   `json:"attendances_present" gorm:"type:boolean;not null;default:true;column:attendances_present"`
	AttendancesNotes   string `json:"attendances_notes"   gorm:"type:text;not null;default:'';column:attendances_notes"`

	AttendancesCreatedAt time.Time `json:"attendances_created_at" gorm:"column:attendances_created_at;not null;autoCreateTime"`

	// Relasi opsional (preload)
	Student studentModel.StudentModel   `json:"-" gorm:"foreignKey:AttendancesStudentID;references:StudentID;constraint:OnDelete:CASCADE"`
	Group   groupModel.CourseGroupModel `json:"-" gorm:"foreignKey:AttendancesGroupID;references:CourseGroupID;constraint:OnDelete:CASCADE"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
