// file: internals/features/school/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   ClassRoomModel — map ke tabel class_rooms
   Kapasitas hanya untuk display/warning, bukan constraint scheduler.
   ======================================================= */

type ClassRoomModel struct {
	// PK
	ClassRoomID uuid.UUID `json:"class_room_id" gorm:"type:uuid;primaryKey;column:class_room_id"`

	ClassRoomsName     string  `json:"class_rooms_name" gorm:"type:varchar(50);not null;uniqueIndex:uq_class_rooms_name,where:class_rooms_deleted_at IS NULL;column:class_rooms_name"`
	ClassRoomsCapacity int     `json:"class_rooms_capacity" gorm:"type:int;not null;column:class_rooms_capacity"`
	ClassRoomsLocation *string `json:"class_rooms_location,omitempty" gorm:"type:text;column:class_rooms_location"`

	// Fasilitas ruangan (AC, proyektor, dst) — bebas bentuk
	ClassRoomsFeatures datatypes.JSON `json:"class_rooms_features" gorm:"type:jsonb;not null;default:'[]';column:class_rooms_features"`

	ClassRoomsIsActive bool `json:"class_rooms_is_active" gorm:"type:boolean;not null;default:true;column:class_rooms_is_active"`

	ClassRoomsCreatedAt time.Time      `json:"class_rooms_created_at" gorm:"column:class_rooms_created_at;not null;autoCreateTime"`
	ClassRoomsUpdatedAt time.Time      `json:"class_rooms_updated_at" gorm:"column:class_rooms_updated_at;not null;autoUpdateTime"`
	ClassRoomsDeletedAt gorm.DeletedAt `json:"class_rooms_deleted_at" gorm:"column:class_rooms_deleted_at;index"`
}

func (ClassRoomModel) TableName() string { return "class_rooms" }

func (m *ClassRoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassRoomID == uuid.Nil {
		m.ClassRoomID = uuid.New()
	}
	return nil
}
