// file: internals/features/school/course_groups/model/course_group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "bimbelku_backend/internals/features/school/rooms/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

/* =======================================================
   CourseGroupModel — jadwal mingguan berulang (template sesi)
   day_of_week: 1..7 ISO (1=Senin), selaras EXTRACT(ISODOW).
   ======================================================= */

type CourseGroupModel struct {
	// PK
	CourseGroupID uuid.UUID `json:"course_group_id" gorm:"type:uuid;primaryKey;column:course_group_id"`

	CourseGroupsName    string `json:"course_groups_name"    gorm:"type:varchar(100);not null;column:course_groups_name"`
	CourseGroupsSubject string `json:"course_groups_subject" gorm:"type:varchar(100);not null;column:course_groups_subject"`
	CourseGroupsLevel   string `json:"course_groups_level"   gorm:"type:varchar(50);not null;column:course_groups_level"`

	CourseGroupsMonthlyPrice float64 `json:"course_groups_monthly_price" gorm:"type:numeric(8,2);not null;column:course_groups_monthly_price"`

	// Relasi wajib
	CourseGroupsTeacherID uuid.UUID `json:"course_groups_teacher_id" gorm:"type:uuid;not null;column:course_groups_teacher_id"`
	CourseGroupsRoomID    uuid.UUID `json:"course_groups_room_id"    gorm:"type:uuid;not null;column:course_groups_room_id"`

	// Pola mingguan
	CourseGroupsDayOfWeek int        `json:"course_groups_day_of_week" gorm:"type:int;not null;column:course_groups_day_of_week"` // 1..7
	CourseGroupsStartTime dbtime.Tod `json:"course_groups_start_time"  gorm:"type:time;not null;column:course_groups_start_time"`
	CourseGroupsEndTime   dbtime.Tod `json:"course_groups_end_time"    gorm:"type:time;not null;column:course_groups_end_time"`

	CourseGroupsIsActive bool `json:"course_groups_is_active" gorm:"type:boolean;not null;default:true;column:course_groups_is_active"`

	CourseGroupsCreatedAt time.Time      `json:"course_groups_created_at" gorm:"column:course_groups_created_at;not null;autoCreateTime"`
	CourseGroupsUpdatedAt time.Time      `json:"course_groups_updated_at" gorm:"column:course_groups_updated_at;not null;autoUpdateTime"`
	CourseGroupsDeletedAt gorm.DeletedAt `json:"course_groups_deleted_at" gorm:"column:course_groups_deleted_at;index"`

	// Relasi opsional (preload). Teacher sengaja cukup ID saja —
	// data guru diambil lewat endpoint teachers, bukan preload.
	Room roomModel.ClassRoomModel `json:"-" gorm:"foreignKey:CourseGroupsRoomID;references:ClassRoomID"`
}

func (CourseGroupModel) TableName() string { return "course_groups" }

func (m *CourseGroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseGroupID == uuid.Nil {
		m.CourseGroupID = uuid.New()
	}
	return nil
}

// DurationHours: lama satu pertemuan dalam jam (dipakai payroll)
func (g CourseGroupModel) DurationHours() float64 {
	return g.CourseGroupsEndTime.Sub(g.CourseGroupsStartTime.Time).Hours()
}
