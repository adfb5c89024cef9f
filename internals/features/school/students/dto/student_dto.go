// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "bimbelku_backend/internals/features/school/students/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

type CreateStudentRequest struct {
	StudentsName          string  `json:"students_name"  validate:"required,min=1,max=100"`
	StudentsPhone         string  `json:"students_phone" validate:"required,min=5,max=20"`
	StudentsEmail         *string `json:"students_email,omitempty" validate:"omitempty,email"`
	StudentsGuardianName  *string `json:"students_guardian_name,omitempty"  validate:"omitempty,max=100"`
	StudentsGuardianPhone *string `json:"students_guardian_phone,omitempty" validate:"omitempty,max=20"`
	StudentsIsActive      *bool   `json:"students_is_active,omitempty"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentsName = strings.TrimSpace(r.StudentsName)
	r.StudentsPhone = strings.TrimSpace(r.StudentsPhone)
	r.StudentsEmail = strPtrOrNil(r.StudentsEmail)
	r.StudentsGuardianName = strPtrOrNil(r.StudentsGuardianName)
	r.StudentsGuardianPhone = strPtrOrNil(r.StudentsGuardianPhone)
}

func (r *CreateStudentRequest) ToModel() m.StudentModel {
	out := m.StudentModel{
		StudentsName:          r.StudentsName,
		StudentsPhone:         r.StudentsPhone,
		StudentsEmail:         r.StudentsEmail,
		StudentsGuardianName:  r.StudentsGuardianName,
		StudentsGuardianPhone: r.StudentsGuardianPhone,
		StudentsIsActive:      true,
	}
	if r.StudentsIsActive != nil {
		out.StudentsIsActive = *r.StudentsIsActive
	}
	return out
}

type PatchStudentRequest struct {
	StudentsName          *string `json:"students_name,omitempty"  validate:"omitempty,min=1,max=100"`
	StudentsPhone         *string `json:"students_phone,omitempty" validate:"omitempty,min=5,max=20"`
	StudentsEmail         *string `json:"students_email,omitempty" validate:"omitempty,email"`
	StudentsGuardianName  *string `json:"students_guardian_name,omitempty"  validate:"omitempty,max=100"`
	StudentsGuardianPhone *string `json:"students_guardian_phone,omitempty" validate:"omitempty,max=20"`
	StudentsIsActive      *bool   `json:"students_is_active,omitempty"`
}

func (p *PatchStudentRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.StudentsName != nil {
		updates["students_name"] = strings.TrimSpace(*p.StudentsName)
	}
	if p.StudentsPhone != nil {
		updates["students_phone"] = strings.TrimSpace(*p.StudentsPhone)
	}
	if p.StudentsEmail != nil {
		updates["students_email"] = strPtrOrNil(p.StudentsEmail)
	}
	if p.StudentsGuardianName != nil {
		updates["students_guardian_name"] = strPtrOrNil(p.StudentsGuardianName)
	}
	if p.StudentsGuardianPhone != nil {
		updates["students_guardian_phone"] = strPtrOrNil(p.StudentsGuardianPhone)
	}
	if p.StudentsIsActive != nil {
		updates["students_is_active"] = *p.StudentsIsActive
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

type StudentResponse struct {
	StudentID             uuid.UUID `json:"student_id"`
	StudentsName          string    `json:"students_name"`
	StudentsPhone         string    `json:"students_phone"`
	StudentsEmail         *string   `json:"students_email,omitempty"`
	StudentsGuardianName  *string   `json:"students_guardian_name,omitempty"`
	StudentsGuardianPhone *string   `json:"students_guardian_phone,omitempty"`
	StudentsIsActive      bool      `json:"students_is_active"`
	StudentsCreatedAt     time.Time `json:"students_created_at"`
	StudentsUpdatedAt     time.Time `json:"students_updated_at"`
}

func ToStudentResponse(src m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:             src.StudentID,
		StudentsName:          src.StudentsName,
		StudentsPhone:         src.StudentsPhone,
		StudentsEmail:         src.StudentsEmail,
		StudentsGuardianName:  src.StudentsGuardianName,
		StudentsGuardianPhone: src.StudentsGuardianPhone,
		StudentsIsActive:      src.StudentsIsActive,
		StudentsCreatedAt:     src.StudentsCreatedAt,
		StudentsUpdatedAt:     src.StudentsUpdatedAt,
	}
}

/* =======================================================
   Enrollment DTOs
   ======================================================= */

type CreateEnrollmentRequest struct {
	EnrollmentsStudentID uuid.UUID `json:"enrollments_student_id" validate:"required,uuid4"`
	EnrollmentsGroupID   uuid.UUID `json:"enrollments_group_id"   validate:"required,uuid4"`
	EnrollmentsJoinedAt  *string   `json:"enrollments_joined_at,omitempty"` // default: hari ini
}

func (r *CreateEnrollmentRequest) ToModel(now time.Time) (m.EnrollmentModel, error) {
	out := m.EnrollmentModel{
		EnrollmentsStudentID: r.EnrollmentsStudentID,
		EnrollmentsGroupID:   r.EnrollmentsGroupID,
		EnrollmentsJoinedAt:  dbtime.DateOnly(now),
		EnrollmentsIsActive:  true,
	}
	if r.EnrollmentsJoinedAt != nil {
		d, err := dbtime.ParseDate(*r.EnrollmentsJoinedAt)
		if err != nil {
			return out, errors.New("enrollments_joined_at harus berformat YYYY-MM-DD")
		}
		out.EnrollmentsJoinedAt = d
	}
	return out, nil
}

type EnrollmentResponse struct {
	EnrollmentID         uuid.UUID `json:"enrollment_id"`
	EnrollmentsStudentID uuid.UUID `json:"enrollments_student_id"`
	EnrollmentsGroupID   uuid.UUID `json:"enrollments_group_id"`
	EnrollmentsJoinedAt  string    `json:"enrollments_joined_at"`
	EnrollmentsIsActive  bool      `json:"enrollments_is_active"`
	EnrollmentsCreatedAt time.Time `json:"enrollments_created_at"`
}

func ToEnrollmentResponse(src m.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:         src.EnrollmentID,
		EnrollmentsStudentID: src.EnrollmentsStudentID,
		EnrollmentsGroupID:   src.EnrollmentsGroupID,
		EnrollmentsJoinedAt:  src.EnrollmentsJoinedAt.Format(dbtime.LayoutDate),
		EnrollmentsIsActive:  src.EnrollmentsIsActive,
		EnrollmentsCreatedAt: src.EnrollmentsCreatedAt,
	}
}
