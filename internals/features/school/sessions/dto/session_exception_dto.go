// file: internals/features/school/sessions/dto/session_exception_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "bimbelku_backend/internals/features/school/sessions/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

/* =======================================================
   Request DTOs — maksimal satu exception per (group, date)
   ======================================================= */

type CreateClassSessionExceptionRequest struct {
	ClassSessionExceptionsGroupID           uuid.UUID  `json:"class_session_exceptions_group_id" validate:"required,uuid4"`
	ClassSessionExceptionsDate              string     `json:"class_session_exceptions_date"     validate:"required"`
	ClassSessionExceptionsCancelled         bool       `json:"class_session_exceptions_cancelled"`
	ClassSessionExceptionsOverrideRoomID    *uuid.UUID `json:"class_session_exceptions_override_room_id,omitempty" validate:"omitempty,uuid4"`
	ClassSessionExceptionsOverrideStartTime *string    `json:"class_session_exceptions_override_start_time,omitempty"`
	ClassSessionExceptionsOverrideEndTime   *string    `json:"class_session_exceptions_override_end_time,omitempty"`
	ClassSessionExceptionsNotes             *string    `json:"class_session_exceptions_notes,omitempty"`
}

func (r *CreateClassSessionExceptionRequest) ToModel() (m.ClassSessionExceptionModel, error) {
	date, err := dbtime.ParseDate(r.ClassSessionExceptionsDate)
	if err != nil {
		return m.ClassSessionExceptionModel{}, errors.New("class_session_exceptions_date harus berformat YYYY-MM-DD")
	}

	out := m.ClassSessionExceptionModel{
		ClassSessionExceptionsGroupID:        r.ClassSessionExceptionsGroupID,
		ClassSessionExceptionsDate:           date,
		ClassSessionExceptionsCancelled:      r.ClassSessionExceptionsCancelled,
		ClassSessionExceptionsOverrideRoomID: r.ClassSessionExceptionsOverrideRoomID,
	}
	if r.ClassSessionExceptionsOverrideStartTime != nil {
		start, err := dbtime.Parse(*r.ClassSessionExceptionsOverrideStartTime)
		if err != nil {
			return m.ClassSessionExceptionModel{}, errors.New("class_session_exceptions_override_start_time harus berformat HH:MM")
		}
		out.ClassSessionExceptionsOverrideStartTime = &start
	}
	if r.ClassSessionExceptionsOverrideEndTime != nil {
		end, err := dbtime.Parse(*r.ClassSessionExceptionsOverrideEndTime)
		if err != nil {
			return m.ClassSessionExceptionModel{}, errors.New("class_session_exceptions_override_end_time harus berformat HH:MM")
		}
		out.ClassSessionExceptionsOverrideEndTime = &end
	}
	if r.ClassSessionExceptionsNotes != nil {
		out.ClassSessionExceptionsNotes = strings.TrimSpace(*r.ClassSessionExceptionsNotes)
	}
	return out, nil
}

type PatchClassSessionExceptionRequest struct {
	ClassSessionExceptionsCancelled         *bool      `json:"class_session_exceptions_cancelled,omitempty"`
	ClassSessionExceptionsOverrideRoomID    *uuid.UUID `json:"class_session_exceptions_override_room_id,omitempty" validate:"omitempty,uuid4"`
	// true = hapus override ruangan/jam, tanggal kembali ke default grup
	ClassSessionExceptionsClearOverrides    *bool   `json:"class_session_exceptions_clear_overrides,omitempty"`
	ClassSessionExceptionsOverrideStartTime *string `json:"class_session_exceptions_override_start_time,omitempty"`
	ClassSessionExceptionsOverrideEndTime   *string `json:"class_session_exceptions_override_end_time,omitempty"`
	ClassSessionExceptionsNotes             *string `json:"class_session_exceptions_notes,omitempty"`
}

func (p *PatchClassSessionExceptionRequest) ApplyPatch(e *m.ClassSessionExceptionModel) error {
	if p.ClassSessionExceptionsClearOverrides != nil && *p.ClassSessionExceptionsClearOverrides {
		e.ClassSessionExceptionsOverrideRoomID = nil
		e.ClassSessionExceptionsOverrideStartTime = nil
		e.ClassSessionExceptionsOverrideEndTime = nil
	}
	if p.ClassSessionExceptionsCancelled != nil {
		e.ClassSessionExceptionsCancelled = *p.ClassSessionExceptionsCancelled
	}
	if p.ClassSessionExceptionsOverrideRoomID != nil {
		e.ClassSessionExceptionsOverrideRoomID = p.ClassSessionExceptionsOverrideRoomID
	}
	if p.ClassSessionExceptionsOverrideStartTime != nil {
		start, err := dbtime.Parse(*p.ClassSessionExceptionsOverrideStartTime)
		if err != nil {
			return errors.New("class_session_exceptions_override_start_time harus berformat HH:MM")
		}
		e.ClassSessionExceptionsOverrideStartTime = &start
	}
	if p.ClassSessionExceptionsOverrideEndTime != nil {
		end, err := dbtime.Parse(*p.ClassSessionExceptionsOverrideEndTime)
		if err != nil {
			return errors.New("class_session_exceptions_override_end_time harus berformat HH:MM")
		}
		e.ClassSessionExceptionsOverrideEndTime = &end
	}
	if p.ClassSessionExceptionsNotes != nil {
		e.ClassSessionExceptionsNotes = strings.TrimSpace(*p.ClassSessionExceptionsNotes)
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type ClassSessionExceptionResponse struct {
	ClassSessionExceptionID                 uuid.UUID  `json:"class_session_exception_id"`
	ClassSessionExceptionsGroupID           uuid.UUID  `json:"class_session_exceptions_group_id"`
	ClassSessionExceptionsDate              string     `json:"class_session_exceptions_date"`
	ClassSessionExceptionsCancelled         bool       `json:"class_session_exceptions_cancelled"`
	ClassSessionExceptionsOverrideRoomID    *uuid.UUID `json:"class_session_exceptions_override_room_id,omitempty"`
	ClassSessionExceptionsOverrideStartTime *string    `json:"class_session_exceptions_override_start_time,omitempty"`
	ClassSessionExceptionsOverrideEndTime   *string    `json:"class_session_exceptions_override_end_time,omitempty"`
	ClassSessionExceptionsNotes             string     `json:"class_session_exceptions_notes"`
	ClassSessionExceptionsCreatedAt         time.Time  `json:"class_session_exceptions_created_at"`
}

func ToClassSessionExceptionResponse(src m.ClassSessionExceptionModel) ClassSessionExceptionResponse {
	out := ClassSessionExceptionResponse{
		ClassSessionExceptionID:              src.ClassSessionExceptionID,
		ClassSessionExceptionsGroupID:        src.ClassSessionExceptionsGroupID,
		ClassSessionExceptionsDate:           src.ClassSessionExceptionsDate.Format(dbtime.LayoutDate),
		ClassSessionExceptionsCancelled:      src.ClassSessionExceptionsCancelled,
		ClassSessionExceptionsOverrideRoomID: src.ClassSessionExceptionsOverrideRoomID,
		ClassSessionExceptionsNotes:          src.ClassSessionExceptionsNotes,
		ClassSessionExceptionsCreatedAt:      src.ClassSessionExceptionsCreatedAt,
	}
	if src.ClassSessionExceptionsOverrideStartTime != nil {
		s := src.ClassSessionExceptionsOverrideStartTime.String()
		out.ClassSessionExceptionsOverrideStartTime = &s
	}
	if src.ClassSessionExceptionsOverrideEndTime != nil {
		s := src.ClassSessionExceptionsOverrideEndTime.String()
		out.ClassSessionExceptionsOverrideEndTime = &s
	}
	return out
}
