// file: internals/features/school/sessions/model/session_exception_model.go
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
   ClassSessionExceptionModel — override/pembatalan per tanggal
   untuk occurrence reguler sebuah course group.
   Maksimal satu exception per (group, date). Hard delete:
   menghapus exception mengembalikan tanggal itu ke default grup.
   ======================================================= */

type ClassSessionExceptionModel struct {
	// PK
	ClassSessionExceptionID uuid.UUID `json:"class_session_exception_id" gorm:"type:uuid;primaryKey;column:class_session_exception_id"`

	ClassSessionExceptionsGroupID uuid.UUID `json:"class_session_exceptions_group_id" gorm:"type:uuid;not null;uniqueIndex:uq_class_session_exceptions_group_date;column:class_session_exceptions_group_id"`
	ClassSessionExceptionsDate    time.Time `json:"class_session_exceptions_date"     gorm:"type:date;not null;uniqueIndex:uq_class_session_exceptions_group_date;column:class_session_exceptions_date"`

	// true = occurrence tanggal ini dibatalkan (tidak ada sesi yang digenerate)
	ClassSessionExceptionsCancelled bool `json:"class_session_exceptions_cancelled" gorm:"type:boolean;not null;default:false;column:class_session_exceptions_cancelled"`

	// Override opsional — kalau diisi menggantikan default grup untuk tanggal itu
	ClassSessionExceptionsOverrideRoomID   *uuid.UUID  `json:"class_session_exceptions_override_room_id,omitempty"    gorm:"type:uuid;column:class_session_exceptions_override_room_id"`
	ClassSessionExceptionsOverrideStartTime *dbtime.Tod `json:"class_session_exceptions_override_start_time,omitempty" gorm:"type:time;column:class_session_exceptions_override_start_time"`
	ClassSessionExceptionsOverrideEndTime   *dbtime.Tod `json:"class_session_exceptions_override_end_time,omitempty"   gorm:"type:time;column:class_session_exceptions_override_end_time"`

	ClassSessionExceptionsNotes string `json:"class_session_exceptions_notes" gorm:"type:text;not null;default:'';column:class_session_exceptions_notes"`

	ClassSessionExceptionsCreatedAt time.Time `json:"class_session_exceptions_created_at" gorm:"column:class_session_exceptions_created_at;not null;autoCreateTime"`

	// Relasi opsional (preload)
	Group        groupModel.CourseGroupModel `json:"-" gorm:"foreignKey:ClassSessionExceptionsGroupID;references:CourseGroupID;constraint:OnDelete:CASCADE"`
	OverrideRoom *roomModel.ClassRoomModel   `json:"-" gorm:"foreignKey:ClassSessionExceptionsOverrideRoomID;references:ClassRoomID"`
}

func (ClassSessionExceptionModel) TableName() string { return "class_session_exceptions" }

func (m *ClassSessionExceptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassSessionExceptionID == uuid.Nil {
		m.ClassSessionExceptionID = uuid.New()
	}
	return nil
}

/* =======================================================
   Effective accessors — resolusi override-else-default,
   satu tempat, bukan null-coalescing tersebar di call site.
   ======================================================= */

func (e ClassSessionExceptionModel) EffectiveRoomID(g groupModel.CourseGroupModel) uuid.UUID {
	if e.ClassSessionExceptionsOverrideRoomID != nil {
		return *e.ClassSessionExceptionsOverrideRoomID
	}
	return g.CourseGroupsRoomID
}

func (e ClassSessionExceptionModel) EffectiveStart(g groupModel.CourseGroupModel) dbtime.Tod {
	if e.ClassSessionExceptionsOverrideStartTime != nil {
		return *e.ClassSessionExceptionsOverrideStartTime
	}
	return g.CourseGroupsStartTime
}

func (e ClassSessionExceptionModel) EffectiveEnd(g groupModel.CourseGroupModel) dbtime.Tod {
	if e.ClassSessionExceptionsOverrideEndTime != nil {
		return *e.ClassSessionExceptionsOverrideEndTime
	}
	return g.CourseGroupsEndTime
}
