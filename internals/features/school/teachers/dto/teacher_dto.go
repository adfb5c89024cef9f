// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "bimbelku_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	TeachersName       string   `json:"teachers_name"        validate:"required,min=1,max=100"`
	TeachersPhone      string   `json:"teachers_phone"       validate:"required,min=5,max=20"`
	TeachersEmail      *string  `json:"teachers_email,omitempty" validate:"omitempty,email"`
	TeachersSubjects   []string `json:"teachers_subjects,omitempty"`
	TeachersHourlyRate float64  `json:"teachers_hourly_rate" validate:"required,gt=0"`
	TeachersIsActive   *bool    `json:"teachers_is_active,omitempty"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.TeachersName = strings.TrimSpace(r.TeachersName)
	r.TeachersPhone = strings.TrimSpace(r.TeachersPhone)
	if r.TeachersEmail != nil {
		e := strings.TrimSpace(*r.TeachersEmail)
		if e == "" {
			r.TeachersEmail = nil
		} else {
			r.TeachersEmail = &e
		}
	}
}

func (r *CreateTeacherRequest) ToModel() m.TeacherModel {
	out := m.TeacherModel{
		TeachersName:       r.TeachersName,
		TeachersPhone:      r.TeachersPhone,
		TeachersEmail:      r.TeachersEmail,
		TeachersSubjects:   pq.StringArray(r.TeachersSubjects),
		TeachersHourlyRate: r.TeachersHourlyRate,
		TeachersIsActive:   true,
	}
	if r.TeachersIsActive != nil {
		out.TeachersIsActive = *r.TeachersIsActive
	}
	return out
}

type PatchTeacherRequest struct {
	TeachersName       *string  `json:"teachers_name,omitempty"        validate:"omitempty,min=1,max=100"`
	TeachersPhone      *string  `json:"teachers_phone,omitempty"       validate:"omitempty,min=5,max=20"`
	TeachersEmail      *string  `json:"teachers_email,omitempty"       validate:"omitempty,email"`
	TeachersSubjects   []string `json:"teachers_subjects,omitempty"`
	TeachersHourlyRate *float64 `json:"teachers_hourly_rate,omitempty" validate:"omitempty,gt=0"`
	TeachersIsActive   *bool    `json:"teachers_is_active,omitempty"`
}

func (p *PatchTeacherRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.TeachersName != nil {
		updates["teachers_name"] = strings.TrimSpace(*p.TeachersName)
	}
	if p.TeachersPhone != nil {
		updates["teachers_phone"] = strings.TrimSpace(*p.TeachersPhone)
	}
	if p.TeachersEmail != nil {
		updates["teachers_email"] = strings.TrimSpace(*p.TeachersEmail)
	}
	if p.TeachersSubjects != nil {
		updates["teachers_subjects"] = pq.StringArray(p.TeachersSubjects)
	}
	if p.TeachersHourlyRate != nil {
		updates["teachers_hourly_rate"] = *p.TeachersHourlyRate
	}
	if p.TeachersIsActive != nil {
		updates["teachers_is_active"] = *p.TeachersIsActive
	}
	return updates
}

type TeacherResponse struct {
	TeacherID          uuid.UUID `json:"teacher_id"`
	TeachersName       string    `json:"teachers_name"`
	TeachersPhone      string    `json:"teachers_phone"`
	TeachersEmail      *string   `json:"teachers_email,omitempty"`
	TeachersSubjects   []string  `json:"teachers_subjects"`
	TeachersHourlyRate float64   `json:"teachers_hourly_rate"`
	TeachersIsActive   bool      `json:"teachers_is_active"`
	TeachersCreatedAt  time.Time `json:"teachers_created_at"`
	TeachersUpdatedAt  time.Time `json:"teachers_updated_at"`
}

func ToTeacherResponse(src m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:          src.TeacherID,
		TeachersName:       src.TeachersName,
		TeachersPhone:      src.TeachersPhone,
		TeachersEmail:      src.TeachersEmail,
		TeachersSubjects:   []string(src.TeachersSubjects),
		TeachersHourlyRate: src.TeachersHourlyRate,
		TeachersIsActive:   src.TeachersIsActive,
		TeachersCreatedAt:  src.TeachersCreatedAt,
		TeachersUpdatedAt:  src.TeachersUpdatedAt,
	}
}

/* =======================================================
   Payroll hours (konsumen read-only data sesi/presensi)
   ======================================================= */

type TeacherHoursResponse struct {
	TeacherID       uuid.UUID `json:"teacher_id"`
	PeriodFrom      string    `json:"period_from"` // YYYY-MM-DD
	PeriodTo        string    `json:"period_to"`
	HourlyRate      float64   `json:"hourly_rate"`
	ScheduledHours  float64   `json:"scheduled_hours"`
	TaughtHours     float64   `json:"taught_hours"`
	SalaryScheduled float64   `json:"salary_scheduled"`
	SalaryTaught    float64   `json:"salary_taught"`
	Courses         int       `json:"courses"`
}
