// file: internals/features/school/course_groups/dto/course_group_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "bimbelku_backend/internals/features/school/course_groups/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

/* =======================================================
   Request DTOs
   - Jam pakai string "HH:mm[:ss]" biar simpel dari FE
   ======================================================= */

type CreateCourseGroupRequest struct {
	CourseGroupsName         string  `json:"course_groups_name"          validate:"required,min=1,max=100"`
	CourseGroupsSubject      string  `json:"course_groups_subject"       validate:"required,min=1,max=100"`
	CourseGroupsLevel        string  `json:"course_groups_level"         validate:"required,min=1,max=50"`
	CourseGroupsMonthlyPrice float64 `json:"course_groups_monthly_price" validate:"required,gt=0"`
	CourseGroupsTeacherID    string  `json:"course_groups_teacher_id"    validate:"required,uuid4"`
	CourseGroupsRoomID       string  `json:"course_groups_room_id"       validate:"required,uuid4"`
	CourseGroupsDayOfWeek    int     `json:"course_groups_day_of_week"   validate:"required,gte=1,lte=7"`
	CourseGroupsStartTime    string  `json:"course_groups_start_time"    validate:"required"`
	CourseGroupsEndTime      string  `json:"course_groups_end_time"      validate:"required"`
	CourseGroupsIsActive     *bool   `json:"course_groups_is_active,omitempty"`
}

func (r *CreateCourseGroupRequest) ApplyToModel(dst *m.CourseGroupModel) error {
	teacherID, err := uuid.Parse(strings.TrimSpace(r.CourseGroupsTeacherID))
	if err != nil {
		return fmt.Errorf("course_groups_teacher_id: %w", err)
	}
	roomID, err := uuid.Parse(strings.TrimSpace(r.CourseGroupsRoomID))
	if err != nil {
		return fmt.Errorf("course_groups_room_id: %w", err)
	}

	start, err := dbtime.Parse(r.CourseGroupsStartTime)
	if err != nil {
		return fmt.Errorf("course_groups_start_time: %w", err)
	}
	end, err := dbtime.Parse(r.CourseGroupsEndTime)
	if err != nil {
		return fmt.Errorf("course_groups_end_time: %w", err)
	}
	if !end.After(start) {
		return errors.New("course_groups_end_time harus lebih besar dari start_time")
	}

	dst.CourseGroupsName = strings.TrimSpace(r.CourseGroupsName)
	dst.CourseGroupsSubject = strings.TrimSpace(r.CourseGroupsSubject)
	dst.CourseGroupsLevel = strings.TrimSpace(r.CourseGroupsLevel)
	dst.CourseGroupsMonthlyPrice = r.CourseGroupsMonthlyPrice
	dst.CourseGroupsTeacherID = teacherID
	dst.CourseGroupsRoomID = roomID
	dst.CourseGroupsDayOfWeek = r.CourseGroupsDayOfWeek
	dst.CourseGroupsStartTime = start
	dst.CourseGroupsEndTime = end

	dst.CourseGroupsIsActive = true
	if r.CourseGroupsIsActive != nil {
		dst.CourseGroupsIsActive = *r.CourseGroupsIsActive
	}
	return nil
}

type PatchCourseGroupRequest struct {
	CourseGroupsName         *string  `json:"course_groups_name,omitempty"          validate:"omitempty,min=1,max=100"`
	CourseGroupsSubject      *string  `json:"course_groups_subject,omitempty"       validate:"omitempty,min=1,max=100"`
	CourseGroupsLevel        *string  `json:"course_groups_level,omitempty"         validate:"omitempty,min=1,max=50"`
	CourseGroupsMonthlyPrice *float64 `json:"course_groups_monthly_price,omitempty" validate:"omitempty,gt=0"`
	CourseGroupsTeacherID    *string  `json:"course_groups_teacher_id,omitempty"    validate:"omitempty,uuid4"`
	CourseGroupsRoomID       *string  `json:"course_groups_room_id,omitempty"       validate:"omitempty,uuid4"`
	CourseGroupsDayOfWeek    *int     `json:"course_groups_day_of_week,omitempty"   validate:"omitempty,gte=1,lte=7"`
	CourseGroupsStartTime    *string  `json:"course_groups_start_time,omitempty"`
	CourseGroupsEndTime      *string  `json:"course_groups_end_time,omitempty"`
	CourseGroupsIsActive     *bool    `json:"course_groups_is_active,omitempty"`
}

// ApplyPatch: hanya field non-nil yang di-apply; validasi urutan jam
// dilakukan setelah merge ke model.
func (p *PatchCourseGroupRequest) ApplyPatch(dst *m.CourseGroupModel) error {
	if p.CourseGroupsName != nil {
		dst.CourseGroupsName = strings.TrimSpace(*p.CourseGroupsName)
	}
	if p.CourseGroupsSubject != nil {
		dst.CourseGroupsSubject = strings.TrimSpace(*p.CourseGroupsSubject)
	}
	if p.CourseGroupsLevel != nil {
		dst.CourseGroupsLevel = strings.TrimSpace(*p.CourseGroupsLevel)
	}
	if p.CourseGroupsMonthlyPrice != nil {
		dst.CourseGroupsMonthlyPrice = *p.CourseGroupsMonthlyPrice
	}
	if p.CourseGroupsTeacherID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*p.CourseGroupsTeacherID))
		if err != nil {
			return fmt.Errorf("course_groups_teacher_id: %w", err)
		}
		dst.CourseGroupsTeacherID = id
	}
	if p.CourseGroupsRoomID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*p.CourseGroupsRoomID))
		if err != nil {
			return fmt.Errorf("course_groups_room_id: %w", err)
		}
		dst.CourseGroupsRoomID = id
	}
	if p.CourseGroupsDayOfWeek != nil {
		dst.CourseGroupsDayOfWeek = *p.CourseGroupsDayOfWeek
	}
	if p.CourseGroupsStartTime != nil {
		t, err := dbtime.Parse(*p.CourseGroupsStartTime)
		if err != nil {
			return fmt.Errorf("course_groups_start_time: %w", err)
		}
		dst.CourseGroupsStartTime = t
	}
	if p.CourseGroupsEndTime != nil {
		t, err := dbtime.Parse(*p.CourseGroupsEndTime)
		if err != nil {
			return fmt.Errorf("course_groups_end_time: %w", err)
		}
		dst.CourseGroupsEndTime = t
	}
	if !dst.CourseGroupsEndTime.After(dst.CourseGroupsStartTime) {
		return errors.New("course_groups_end_time harus lebih besar dari start_time")
	}
	if p.CourseGroupsIsActive != nil {
		dst.CourseGroupsIsActive = *p.CourseGroupsIsActive
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type CourseGroupResponse struct {
	CourseGroupID            uuid.UUID `json:"course_group_id"`
	CourseGroupsName         string    `json:"course_groups_name"`
	CourseGroupsSubject      string    `json:"course_groups_subject"`
	CourseGroupsLevel        string    `json:"course_groups_level"`
	CourseGroupsMonthlyPrice float64   `json:"course_groups_monthly_price"`
	CourseGroupsTeacherID    uuid.UUID `json:"course_groups_teacher_id"`
	CourseGroupsRoomID       uuid.UUID `json:"course_groups_room_id"`
	CourseGroupsDayOfWeek    int       `json:"course_groups_day_of_week"`
	CourseGroupsStartTime    string    `json:"course_groups_start_time"` // HH:mm:ss
	CourseGroupsEndTime      string    `json:"course_groups_end_time"`
	CourseGroupsIsActive     bool      `json:"course_groups_is_active"`
	CourseGroupsCreatedAt    time.Time `json:"course_groups_created_at"`
	CourseGroupsUpdatedAt    time.Time `json:"course_groups_updated_at"`
}

func ToCourseGroupResponse(src m.CourseGroupModel) CourseGroupResponse {
	return CourseGroupResponse{
		CourseGroupID:            src.CourseGroupID,
		CourseGroupsName:         src.CourseGroupsName,
		CourseGroupsSubject:      src.CourseGroupsSubject,
		CourseGroupsLevel:        src.CourseGroupsLevel,
		CourseGroupsMonthlyPrice: src.CourseGroupsMonthlyPrice,
		CourseGroupsTeacherID:    src.CourseGroupsTeacherID,
		CourseGroupsRoomID:       src.CourseGroupsRoomID,
		CourseGroupsDayOfWeek:    src.CourseGroupsDayOfWeek,
		CourseGroupsStartTime:    src.CourseGroupsStartTime.String(),
		CourseGroupsEndTime:      src.CourseGroupsEndTime.String(),
		CourseGroupsIsActive:     src.CourseGroupsIsActive,
		CourseGroupsCreatedAt:    src.CourseGroupsCreatedAt,
		CourseGroupsUpdatedAt:    src.CourseGroupsUpdatedAt,
	}
}
