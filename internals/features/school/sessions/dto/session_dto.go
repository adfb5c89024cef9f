// file: internals/features/school/sessions/dto/session_dto.go
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
   Request DTOs — tanggal "YYYY-MM-DD", jam "HH:MM[:SS]"
   ======================================================= */

type CreateClassSessionRequest struct {
	ClassSessionsGroupID   uuid.UUID  `json:"class_sessions_group_id"   validate:"required,uuid4"`
	ClassSessionsDate      string     `json:"class_sessions_date"       validate:"required"`
	ClassSessionsStartTime string     `json:"class_sessions_start_time" validate:"required"`
	ClassSessionsEndTime   string     `json:"class_sessions_end_time"   validate:"required"`
	ClassSessionsRoomID    *uuid.UUID `json:"class_sessions_room_id,omitempty" validate:"omitempty,uuid4"`
	ClassSessionsStatus    *string    `json:"class_sessions_status,omitempty"`
	ClassSessionsNotes     *string    `json:"class_sessions_notes,omitempty"`
}

func (r *CreateClassSessionRequest) ToModel() (m.ClassSessionModel, error) {
	date, err := dbtime.ParseDate(r.ClassSessionsDate)
	if err != nil {
		return m.ClassSessionModel{}, errors.New("class_sessions_date harus berformat YYYY-MM-DD")
	}
	start, err := dbtime.Parse(r.ClassSessionsStartTime)
	if err != nil {
		return m.ClassSessionModel{}, errors.New("class_sessions_start_time harus berformat HH:MM")
	}
	end, err := dbtime.Parse(r.ClassSessionsEndTime)
	if err != nil {
		return m.ClassSessionModel{}, errors.New("class_sessions_end_time harus berformat HH:MM")
	}
	if !end.After(start) {
		return m.ClassSessionModel{}, errors.New("class_sessions_end_time harus lebih besar dari start_time")
	}

	out := m.ClassSessionModel{
		ClassSessionsGroupID:   r.ClassSessionsGroupID,
		ClassSessionsDate:      date,
		ClassSessionsStartTime: start,
		ClassSessionsEndTime:   end,
		ClassSessionsRoomID:    r.ClassSessionsRoomID,
		ClassSessionsStatus:    m.SessionPlanned,
	}
	if r.ClassSessionsStatus != nil {
		st := m.SessionStatus(strings.ToUpper(strings.TrimSpace(*r.ClassSessionsStatus)))
		if !st.Valid() {
			return m.ClassSessionModel{}, errors.New("class_sessions_status harus PLANNED, DONE, atau CANCELLED")
		}
		out.ClassSessionsStatus = st
	}
	if r.ClassSessionsNotes != nil {
		out.ClassSessionsNotes = strings.TrimSpace(*r.ClassSessionsNotes)
	}
	return out, nil
}

type PatchClassSessionRequest struct {
	ClassSessionsDate      *string    `json:"class_sessions_date,omitempty"`
	ClassSessionsStartTime *string    `json:"class_sessions_start_time,omitempty"`
	ClassSessionsEndTime   *string    `json:"class_sessions_end_time,omitempty"`
	ClassSessionsRoomID    *uuid.UUID `json:"class_sessions_room_id,omitempty" validate:"omitempty,uuid4"`
	// true = hapus override ruangan, sesi kembali ikut ruangan grup
	ClassSessionsClearRoom *bool   `json:"class_sessions_clear_room,omitempty"`
	ClassSessionsNotes     *string `json:"class_sessions_notes,omitempty"`
}

// ApplyPatch: merge field non-nil ke salinan model, lalu validasi urutan jam.
func (p *PatchClassSessionRequest) ApplyPatch(s *m.ClassSessionModel) error {
	if p.ClassSessionsDate != nil {
		date, err := dbtime.ParseDate(*p.ClassSessionsDate)
		if err != nil {
			return errors.New("class_sessions_date harus berformat YYYY-MM-DD")
		}
		s.ClassSessionsDate = date
	}
	if p.ClassSessionsStartTime != nil {
		start, err := dbtime.Parse(*p.ClassSessionsStartTime)
		if err != nil {
			return errors.New("class_sessions_start_time harus berformat HH:MM")
		}
		s.ClassSessionsStartTime = start
	}
	if p.ClassSessionsEndTime != nil {
		end, err := dbtime.Parse(*p.ClassSessionsEndTime)
		if err != nil {
			return errors.New("class_sessions_end_time harus berformat HH:MM")
		}
		s.ClassSessionsEndTime = end
	}
	if !s.ClassSessionsEndTime.After(s.ClassSessionsStartTime) {
		return errors.New("class_sessions_end_time harus lebih besar dari start_time")
	}
	if p.ClassSessionsClearRoom != nil && *p.ClassSessionsClearRoom {
		s.ClassSessionsRoomID = nil
	} else if p.ClassSessionsRoomID != nil {
		s.ClassSessionsRoomID = p.ClassSessionsRoomID
	}
	if p.ClassSessionsNotes != nil {
		s.ClassSessionsNotes = strings.TrimSpace(*p.ClassSessionsNotes)
	}
	return nil
}

type PatchSessionStatusRequest struct {
	ClassSessionsStatus string `json:"class_sessions_status" validate:"required"`
}

func (p *PatchSessionStatusRequest) Status() (m.SessionStatus, error) {
	st := m.SessionStatus(strings.ToUpper(strings.TrimSpace(p.ClassSessionsStatus)))
	if !st.Valid() {
		return "", errors.New("class_sessions_status harus PLANNED, DONE, atau CANCELLED")
	}
	return st, nil
}

/* =======================================================
   Generate request — rentang eksplisit atau weeks dari hari ini
   ======================================================= */

type GenerateSessionsRequest struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
	Weeks *int    `json:"weeks,omitempty" validate:"omitempty,gt=0,lte=52"`
	Force bool    `json:"force"`
}

// Resolve: start/end dipakai kalau dua-duanya ada; selain itu
// [hari ini, hari ini + weeks*7] dengan default 4 minggu.
func (r *GenerateSessionsRequest) Resolve(now time.Time) (time.Time, time.Time, error) {
	if r.Start != nil || r.End != nil {
		if r.Start == nil || r.End == nil {
			return time.Time{}, time.Time{}, errors.New("start dan end harus diisi berpasangan")
		}
		start, err := dbtime.ParseDate(*r.Start)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("start harus berformat YYYY-MM-DD")
		}
		end, err := dbtime.ParseDate(*r.End)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("end harus berformat YYYY-MM-DD")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, errors.New("end tidak boleh sebelum start")
		}
		return start, end, nil
	}
	weeks := 4
	if r.Weeks != nil {
		weeks = *r.Weeks
	}
	start := dbtime.DateOnly(now)
	return start, start.AddDate(0, 0, weeks*7), nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type ClassSessionResponse struct {
	ClassSessionID         uuid.UUID  `json:"class_session_id"`
	ClassSessionsGroupID   uuid.UUID  `json:"class_sessions_group_id"`
	ClassSessionsGroupName string     `json:"class_sessions_group_name,omitempty"`
	ClassSessionsDate      string     `json:"class_sessions_date"`
	ClassSessionsStartTime string     `json:"class_sessions_start_time"`
	ClassSessionsEndTime   string     `json:"class_sessions_end_time"`
	ClassSessionsRoomID    *uuid.UUID `json:"class_sessions_room_id,omitempty"`
	// Ruangan hasil resolusi override-else-default grup
	ClassSessionsEffectiveRoomID uuid.UUID `json:"class_sessions_effective_room_id"`
	ClassSessionsStatus          string    `json:"class_sessions_status"`
	ClassSessionsNotes           string    `json:"class_sessions_notes"`
	ClassSessionsCreatedAt       time.Time `json:"class_sessions_created_at"`
	ClassSessionsUpdatedAt       time.Time `json:"class_sessions_updated_at"`
}

// ToClassSessionResponse: src.Group harus sudah ter-preload
func ToClassSessionResponse(src m.ClassSessionModel) ClassSessionResponse {
	return ClassSessionResponse{
		ClassSessionID:               src.ClassSessionID,
		ClassSessionsGroupID:         src.ClassSessionsGroupID,
		ClassSessionsGroupName:       src.Group.CourseGroupsName,
		ClassSessionsDate:            src.ClassSessionsDate.Format(dbtime.LayoutDate),
		ClassSessionsStartTime:       src.ClassSessionsStartTime.String(),
		ClassSessionsEndTime:         src.ClassSessionsEndTime.String(),
		ClassSessionsRoomID:          src.ClassSessionsRoomID,
		ClassSessionsEffectiveRoomID: src.EffectiveRoomID(src.Group.CourseGroupsRoomID),
		ClassSessionsStatus:          string(src.ClassSessionsStatus),
		ClassSessionsNotes:           src.ClassSessionsNotes,
		ClassSessionsCreatedAt:       src.ClassSessionsCreatedAt,
		ClassSessionsUpdatedAt:       src.ClassSessionsUpdatedAt,
	}
}
