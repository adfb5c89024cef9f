// file: internals/features/school/sessions/service/generate.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "bimbelku_backend/internals/features/school/course_groups/model"
	sessionModel "bimbelku_backend/internals/features/school/sessions/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

/* =======================================================
   GenerateSessions — materialisasi course_groups menjadi
   class_sessions bertanggal pada rentang [start, end].

   Idempoten: unit kerja = satu (group, date), masing-masing
   transaksi sendiri. Gagal di satu tanggal tidak menggagalkan
   tanggal lain — dicatat di Summary.Errors lalu lanjut.
   ======================================================= */

type GenerateOptions struct {
	// Force: sesi existing yang jam/ruangannya berbeda dari nilai
	// efektif ikut ditimpa. false = existing tidak disentuh (Skipped).
	Force bool
	// ResetStatusOnForce: saat force menimpa jam/ruangan, status
	// dikembalikan ke PLANNED. Default dibiarkan apa adanya.
	ResetStatusOnForce bool
}

type GenerateSummary struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Deleted int      `json:"deleted"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// FirstOccurrenceOnOrAfter: tanggal pertama >= ref yang jatuh pada
// isoDow (1=Senin..7=Minggu). ref == hari yang sama → ref sendiri.
func FirstOccurrenceOnOrAfter(ref time.Time, isoDow int) time.Time {
	ref = dbtime.DateOnly(ref)
	delta := (isoDow - dbtime.ISOWeekday(ref) + 7) % 7
	return ref.AddDate(0, 0, delta)
}

func GenerateSessions(
	ctx context.Context,
	db *gorm.DB,
	start, end time.Time,
	opts GenerateOptions,
) (GenerateSummary, error) {
	summary := GenerateSummary{Errors: []string{}}

	start = dbtime.DateOnly(start)
	end = dbtime.DateOnly(end)
	if end.Before(start) {
		return summary, fmt.Errorf("rentang tidak valid: end %s sebelum start %s",
			end.Format(dbtime.LayoutDate), start.Format(dbtime.LayoutDate))
	}

	// Urut nama supaya hasil (dan urutan error) deterministik
	var groups []groupModel.CourseGroupModel
	if err := db.WithContext(ctx).
		Where("course_groups_is_active = ?", true).
		Order("course_groups_name ASC, course_group_id ASC").
		Find(&groups).Error; err != nil {
		return summary, err
	}

	for _, g := range groups {
		for d := FirstOccurrenceOnOrAfter(start, g.CourseGroupsDayOfWeek); !d.After(end); d = d.AddDate(0, 0, 7) {
			// Batal di antara unit aman — unit yang sudah commit tetap valid
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			if err := materializeOne(ctx, db, g, d, opts, &summary); err != nil {
				summary.Errors = append(summary.Errors,
					fmt.Sprintf("%s %s: %v", g.CourseGroupsName, d.Format(dbtime.LayoutDate), err))
			}
		}
	}
	return summary, nil
}

// materializeOne: satu (group, date) dalam satu transaksi.
// Error return = dicatat sebagai entri Summary.Errors oleh caller.
func materializeOne(
	ctx context.Context,
	db *gorm.DB,
	g groupModel.CourseGroupModel,
	date time.Time,
	opts GenerateOptions,
	summary *GenerateSummary,
) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exc sessionModel.ClassSessionExceptionModel
		hasExc := true
		err := tx.Where("class_session_exceptions_group_id = ? AND class_session_exceptions_date = ?",
			g.CourseGroupID, date).First(&exc).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			hasExc = false
		}

		// Tanggal dibatalkan: sesi existing dihapus, tidak buat baru
		if hasExc && exc.ClassSessionExceptionsCancelled {
			res := tx.Where("class_sessions_group_id = ? AND class_sessions_date = ?",
				g.CourseGroupID, date).Delete(&sessionModel.ClassSessionModel{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				summary.Deleted++
			} else {
				summary.Skipped++
			}
			return nil
		}

		// Nilai efektif: override exception kalau ada, selain itu default grup
		effRoom := g.CourseGroupsRoomID
		effStart := g.CourseGroupsStartTime
		effEnd := g.CourseGroupsEndTime
		if hasExc {
			effRoom = exc.EffectiveRoomID(g)
			effStart = exc.EffectiveStart(g)
			effEnd = exc.EffectiveEnd(g)
		}
		if !effEnd.After(effStart) {
			return ErrInvalidTimeRange
		}

		var existing sessionModel.ClassSessionModel
		err = tx.Where("class_sessions_group_id = ? AND class_sessions_date = ?",
			g.CourseGroupID, date).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			conflict, cerr := CheckSessionConflict(tx, date, effRoom, effStart, effEnd, uuid.Nil)
			if cerr != nil {
				return cerr
			}
			if conflict != nil {
				return conflict
			}
			session := sessionModel.ClassSessionModel{
				ClassSessionID:         uuid.New(),
				ClassSessionsGroupID:   g.CourseGroupID,
				ClassSessionsDate:      date,
				ClassSessionsStartTime: effStart,
				ClassSessionsEndTime:   effEnd,
				ClassSessionsStatus:    sessionModel.SessionPlanned,
			}
			// Simpan room hanya kalau beda dari default grup; NULL = ikut grup
			if effRoom != g.CourseGroupsRoomID {
				room := effRoom
				session.ClassSessionsRoomID = &room
			}
			if err := tx.Create(&session).Error; err != nil {
				return err
			}
			summary.Created++
			return nil
		}

		// Sudah ada — cocok dengan nilai efektif?
		same := existing.ClassSessionsStartTime.Equal(effStart) &&
			existing.ClassSessionsEndTime.Equal(effEnd) &&
			existing.EffectiveRoomID(g.CourseGroupsRoomID) == effRoom
		if same || !opts.Force {
			summary.Skipped++
			return nil
		}

		conflict, cerr := CheckSessionConflict(tx, date, effRoom, effStart, effEnd, existing.ClassSessionID)
		if cerr != nil {
			return cerr
		}
		if conflict != nil {
			// Ditimpa batal, sesi lama dibiarkan utuh
			return conflict
		}

		updates := map[string]interface{}{
			"class_sessions_start_time": effStart,
			"class_sessions_end_time":   effEnd,
		}
		if effRoom != g.CourseGroupsRoomID {
			updates["class_sessions_room_id"] = effRoom
		} else {
			updates["class_sessions_room_id"] = nil
		}
		if opts.ResetStatusOnForce {
			updates["class_sessions_status"] = sessionModel.SessionPlanned
		}
		if err := tx.Model(&sessionModel.ClassSessionModel{}).
			Where("class_session_id = ?", existing.ClassSessionID).
			Updates(updates).Error; err != nil {
			return err
		}
		summary.Updated++
		return nil
	})
}

// RegenerateAroundDate: re-materialisasi tanggal ± 1 hari dengan force.
// Dipanggil setiap exception dibuat/diubah/dihapus supaya sesi bertanggal
// langsung konsisten dengan exception terbaru.
func RegenerateAroundDate(ctx context.Context, db *gorm.DB, date time.Time) (GenerateSummary, error) {
	date = dbtime.DateOnly(date)
	return GenerateSessions(ctx, db,
		date.AddDate(0, 0, -1), date.AddDate(0, 0, 1),
		GenerateOptions{Force: true})
}
