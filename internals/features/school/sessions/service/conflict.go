// file: internals/features/school/sessions/service/conflict.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "bimbelku_backend/internals/features/school/course_groups/model"
	roomModel "bimbelku_backend/internals/features/school/rooms/model"
	sessionModel "bimbelku_backend/internals/features/school/sessions/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

// ErrInvalidTimeRange: end_time harus > start_time (durasi nol/negatif ditolak)
var ErrInvalidTimeRange = errors.New("end_time harus lebih besar dari start_time")

/* =======================================================
   ConflictError — bentrok ruangan, bawa konteks lengkap
   supaya pesan error bisa menyebut ruangan & penghuni.
   ======================================================= */

type ConflictError struct {
	RoomID       uuid.UUID
	RoomName     string
	OccupantName string     // nama grup yang sudah memakai ruangan
	Date         *time.Time // nil untuk bentrok level template (mingguan)
	Start        dbtime.Tod
	End          dbtime.Tod
}

func (e *ConflictError) Error() string {
	name := e.RoomName
	if name == "" {
		name = e.RoomID.String()
	}
	return fmt.Sprintf("ruangan %s sudah dipakai %s (%s-%s)",
		name, e.OccupantName, e.Start.String(), e.End.String())
}

// Overlaps: aturan interval half-open — [s1,e1) x [s2,e2).
// Sesi yang selesai 10:00 tidak bentrok dengan yang mulai 10:00.
func Overlaps(s1, e1, s2, e2 dbtime.Tod) bool {
	return s1.Before(e2) && e1.After(s2)
}

// lookupRoomName: best effort, hanya untuk pesan error
func lookupRoomName(tx *gorm.DB, roomID uuid.UUID) string {
	var room roomModel.ClassRoomModel
	if err := tx.Select("class_rooms_name").
		First(&room, "class_room_id = ?", roomID).Error; err != nil {
		return ""
	}
	return room.ClassRoomsName
}

/* =======================================================
   CheckSessionConflict — bentrok ruangan pada satu tanggal.
   Ruangan efektif kandidat vs ruangan efektif semua sesi lain
   di tanggal itu (override per-sesi dihormati dua arah).
   Return (*ConflictError, nil) kalau bentrok; (nil, nil) aman.
   ======================================================= */

func CheckSessionConflict(
	tx *gorm.DB,
	date time.Time,
	roomID uuid.UUID,
	start, end dbtime.Tod,
	excludeSessionID uuid.UUID,
) (*ConflictError, error) {
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	q := tx.Preload("Group").
		Where("class_sessions_date = ?", dbtime.DateOnly(date)).
		Order("class_session_id ASC")
	if excludeSessionID != uuid.Nil {
		q = q.Where("class_session_id <> ?", excludeSessionID)
	}

	var others []sessionModel.ClassSessionModel
	if err := q.Find(&others).Error; err != nil {
		return nil, err
	}

	d := dbtime.DateOnly(date)
	for _, s := range others {
		if s.EffectiveRoomID(s.Group.CourseGroupsRoomID) != roomID {
			continue
		}
		if !Overlaps(start, end, s.ClassSessionsStartTime, s.ClassSessionsEndTime) {
			continue
		}
		return &ConflictError{
			RoomID:       roomID,
			RoomName:     lookupRoomName(tx, roomID),
			OccupantName: s.Group.CourseGroupsName,
			Date:         &d,
			Start:        s.ClassSessionsStartTime,
			End:          s.ClassSessionsEndTime,
		}, nil
	}
	return nil, nil
}

/* =======================================================
   CheckGroupConflict — bentrok level template: dua grup aktif
   di ruangan & hari yang sama dengan jam overlap. Dipanggil
   saat create/patch course group, sebelum materialisasi.
   ======================================================= */

func CheckGroupConflict(
	tx *gorm.DB,
	roomID uuid.UUID,
	dayOfWeek int,
	start, end dbtime.Tod,
	excludeGroupID uuid.UUID,
) (*ConflictError, error) {
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	q := tx.Where("course_groups_room_id = ?", roomID).
		Where("course_groups_day_of_week = ?", dayOfWeek).
		Where("course_groups_is_active = ?", true).
		Order("course_group_id ASC")
	if excludeGroupID != uuid.Nil {
		q = q.Where("course_group_id <> ?", excludeGroupID)
	}

	var others []groupModel.CourseGroupModel
	if err := q.Find(&others).Error; err != nil {
		return nil, err
	}

	for _, g := range others {
		if !Overlaps(start, end, g.CourseGroupsStartTime, g.CourseGroupsEndTime) {
			continue
		}
		return &ConflictError{
			RoomID:       roomID,
			RoomName:     lookupRoomName(tx, roomID),
			OccupantName: g.CourseGroupsName,
			Start:        g.CourseGroupsStartTime,
			End:          g.CourseGroupsEndTime,
		}, nil
	}
	return nil, nil
}
