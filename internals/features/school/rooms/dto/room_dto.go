// file: internals/features/school/rooms/dto/room_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "bimbelku_backend/internals/features/school/rooms/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateClassRoomRequest struct {
	ClassRoomsName     string          `json:"class_rooms_name"     validate:"required,min=1,max=50"`
	ClassRoomsCapacity int             `json:"class_rooms_capacity" validate:"required,gt=0"`
	ClassRoomsLocation *string         `json:"class_rooms_location,omitempty"`
	ClassRoomsFeatures *datatypes.JSON `json:"class_rooms_features,omitempty"`
	ClassRoomsIsActive *bool           `json:"class_rooms_is_active,omitempty"`
}

func (r *CreateClassRoomRequest) Normalize() {
	r.ClassRoomsName = strings.TrimSpace(r.ClassRoomsName)
	r.ClassRoomsLocation = strPtrOrNil(r.ClassRoomsLocation)
}

func (r *CreateClassRoomRequest) ToModel() m.ClassRoomModel {
	out := m.ClassRoomModel{
		ClassRoomsName:     r.ClassRoomsName,
		ClassRoomsCapacity: r.ClassRoomsCapacity,
		ClassRoomsLocation: r.ClassRoomsLocation,
		ClassRoomsIsActive: true,
	}
	if r.ClassRoomsFeatures != nil {
		out.ClassRoomsFeatures = *r.ClassRoomsFeatures
	} else {
		out.ClassRoomsFeatures = datatypes.JSON([]byte("[]"))
	}
	if r.ClassRoomsIsActive != nil {
		out.ClassRoomsIsActive = *r.ClassRoomsIsActive
	}
	return out
}

type PatchClassRoomRequest struct {
	ClassRoomsName     *string         `json:"class_rooms_name,omitempty"     validate:"omitempty,min=1,max=50"`
	ClassRoomsCapacity *int            `json:"class_rooms_capacity,omitempty" validate:"omitempty,gt=0"`
	ClassRoomsLocation *string         `json:"class_rooms_location,omitempty"`
	ClassRoomsFeatures *datatypes.JSON `json:"class_rooms_features,omitempty"`
	ClassRoomsIsActive *bool           `json:"class_rooms_is_active,omitempty"`
}

// BuildUpdateMap: hanya field non-nil yang di-apply
func (p *PatchClassRoomRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.ClassRoomsName != nil {
		updates["class_rooms_name"] = strings.TrimSpace(*p.ClassRoomsName)
	}
	if p.ClassRoomsCapacity != nil {
		updates["class_rooms_capacity"] = *p.ClassRoomsCapacity
	}
	if p.ClassRoomsLocation != nil {
		updates["class_rooms_location"] = strPtrOrNil(p.ClassRoomsLocation)
	}
	if p.ClassRoomsFeatures != nil {
		updates["class_rooms_features"] = *p.ClassRoomsFeatures
	}
	if p.ClassRoomsIsActive != nil {
		updates["class_rooms_is_active"] = *p.ClassRoomsIsActive
	}
	return updates
}

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* =======================================================
   Response DTO
   ======================================================= */

type ClassRoomResponse struct {
	ClassRoomID        uuid.UUID      `json:"class_room_id"`
	ClassRoomsName     string         `json:"class_rooms_name"`
	ClassRoomsCapacity int            `json:"class_rooms_capacity"`
	ClassRoomsLocation *string        `json:"class_rooms_location,omitempty"`
	ClassRoomsFeatures datatypes.JSON `json:"class_rooms_features"`
	ClassRoomsIsActive bool           `json:"class_rooms_is_active"`
	ClassRoomsCreatedAt time.Time     `json:"class_rooms_created_at"`
	ClassRoomsUpdatedAt time.Time     `json:"class_rooms_updated_at"`
}

func ToClassRoomResponse(src m.ClassRoomModel) ClassRoomResponse {
	return ClassRoomResponse{
		ClassRoomID:         src.ClassRoomID,
		ClassRoomsName:      src.ClassRoomsName,
		ClassRoomsCapacity:  src.ClassRoomsCapacity,
		ClassRoomsLocation:  src.ClassRoomsLocation,
		ClassRoomsFeatures:  src.ClassRoomsFeatures,
		ClassRoomsIsActive:  src.ClassRoomsIsActive,
		ClassRoomsCreatedAt: src.ClassRoomsCreatedAt,
		ClassRoomsUpdatedAt: src.ClassRoomsUpdatedAt,
	}
}
