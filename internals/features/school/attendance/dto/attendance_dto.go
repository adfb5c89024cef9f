// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "bimbelku_backend/internals/features/school/attendance/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

type CreateAttendanceRequest struct {
	AttendancesStudentID uuid.UUID `json:"attendances_student_id" validate:"required,uuid4"`
	AttendancesGroupID   uuid.UUID `json:"attendances_group_id"   validate:"required,uuid4"`
	AttendancesDate      string    `json:"attendances_date"       validate:"required"`
	AttendancesPresent   *bool     `json:"attendances_present,omitempty"` // default: hadir
	AttendancesNotes     *string   `json:"attendances_notes,omitempty"`
}

func (r *CreateAttendanceRequest) ToModel() (m.AttendanceModel, error) {
	date, err := dbtime.ParseDate(r.AttendancesDate)
	if err != nil {
		return m.AttendanceModel{}, errors.New("attendances_date harus berformat YYYY-MM-DD")
	}

	out := m.AttendanceModel{
		AttendancesStudentID: r.AttendancesStudentID,
		AttendancesGroupID:   r.AttendancesGroupID,
		AttendancesDate:      date,
		AttendancesPresent:   true,
	}
	if r.AttendancesPresent != nil {
		out.AttendancesPresent = *r.AttendancesPresent
	}
	if r.AttendancesNotes != nil {
		out.AttendancesNotes = strings.TrimSpace(*r.AttendancesNotes)
	}
	return out, nil
}

type AttendanceResponse struct {
	AttendanceID         uuid.UUID `json:"attendance_id"`
	AttendancesStudentID uuid.UUID `json:"attendances_student_id"`
	AttendancesGroupID   uuid.UUID `json:"attendances_group_id"`
	AttendancesDate      string    `json:"attendances_date"`
	AttendancesPresent   bool      `json:"attendances_present"`
	AttendancesNotes     string    `json:"attendances_notes"`
	AttendancesCreatedAt time.Time `json:"attendances_created_at"`
}

func ToAttendanceResponse(src m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:         src.AttendanceID,
		AttendancesStudentID: src.AttendancesStudentID,
		AttendancesGroupID:   src.AttendancesGroupID,
		AttendancesDate:      src.AttendancesDate.Format(dbtime.LayoutDate),
		AttendancesPresent:   src.AttendancesPresent,
		AttendancesNotes:     src.AttendancesNotes,
		AttendancesCreatedAt: src.AttendancesCreatedAt,
	}
}
