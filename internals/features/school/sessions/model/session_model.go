// file: internals/features/school/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "bimbelku_backend/internals/features/school/course_groups/model"
	roomModel "bimbelku_backend/internals/features/school/rooms/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

/* =======================================================
   Enum status sesi — closed set, bukan string bebas
   ======================================================= */

type SessionStatus string

const (
	SessionPlanned   SessionStatus = "PLANNED"
	SessionDone      SessionStatus = "DONE"
	SessionCancelled SessionStatus = "CANCELLED"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionPlanned, SessionDone, SessionCancelled:
		return true
	}
	return false
}

/* =======================================================
   ClassSessionModel — satu pertemuan terjadwal (hasil
   materialisasi course_groups + exceptions, atau dibuat manual).
   Hard delete: occurrence yang dibatalkan benar-benar hilang,
   unique (group_id, date) jadi tetap bisa regenerate.
   ======================================================= */

type ClassSessionModel struct {
	// PK
	ClassSessionID uuid.UUID `json:"class_session_id" gorm:"type:uuid;primaryKey;column:class_session_id"`

	ClassSessionsGroupID uuid.UUID `json:"class_sessions_group_id" gorm:"type:uuid;not null;uniqueIndex:uq_class_sessions_group_date;column:class_sessions_group_id"`
	ClassSessionsDate    time.Time `json:"class_sessions_date"     gorm:"type:date;not null;uniqueIndex:uq_class_sessions_group_date;index;column:class_sessions_date"`

	ClassSessionsStartTime dbtime.Tod `json:"class_sessions_start_time" gorm:"type:time;not null;column:class_sessions_start_time"`
	ClassSessionsEndTime   dbtime.Tod `json:"class_sessions_end_time"   gorm:"type:time;not null;column:class_sessions_end_time"`

	// Override ruangan per-sesi. NULL = pakai ruangan grup.
	ClassSessionsRoomID *uuid.UUID `json:"class_sessions_room_id,omitempty" gorm:"type:uuid;column:class_sessions_room_id"`

	ClassSessionsStatus SessionStatus `json:"class_sessions_status" gorm:"type:text;not null;default:'PLANNED';column:class_sessions_status"`
	ClassSessionsNotes  string        `json:"class_sessions_notes"  gorm:"type:text;not null;default:'';column:class_sessions_notes"`

	ClassSessionsCreatedAt time.Time `json:"class_sessions_created_at" gorm:"column:class_sessions_created_at;not null;autoCreateTime"`
	ClassSessionsUpdatedAt time.Time `json:"class_sessions_updated_at" gorm:"column:class_sessions_updated_at;not null;autoUpdateTime"`

	// Relasi opsional (preload)
	Group groupModel.CourseGroupModel `json:"-" gorm:"foreignKey:ClassSessionsGroupID;references:CourseGroupID;constraint:OnDelete:CASCADE"`
	Room  *roomModel.ClassRoomModel   `json:"-" gorm:"foreignKey:ClassSessionsRoomID;references:ClassRoomID"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }

func (m *ClassSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassSessionID == uuid.Nil {
		m.ClassSessionID = uuid.New()
	}
	return nil
}

// EffectiveRoomID: override kalau ada, selain itu ruangan grup.
func (s ClassSessionModel) EffectiveRoomID(groupRoomID uuid.UUID) uuid.UUID {
	if s.ClassSessionsRoomID != nil {
		return *s.ClassSessionsRoomID
	}
	return groupRoomID
}

// DurationHours: lama sesi dalam jam (konsumen payroll)
func (s ClassSessionModel) DurationHours() float64 {
	return s.ClassSessionsEndTime.Sub(s.ClassSessionsStartTime.Time).Hours()
}
