// file: internals/features/school/sessions/service/generate_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	sessionModel "bimbelku_backend/internals/features/school/sessions/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

// Senin 2026-01-05 .. Minggu 2026-01-11
const (
	weekStart = "2026-01-05"
	weekEnd   = "2026-01-11"
)

func TestGenerateSingleGroupCreatesPlannedSession(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	g := seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "08:00", "10:00")

	sum, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if sum.Created != 1 || sum.Updated != 0 || sum.Deleted != 0 || sum.Skipped != 0 {
		t.Fatalf("summary tidak sesuai: %+v", sum)
	}
	if len(sum.Errors) != 0 {
		t.Fatalf("tidak mengharapkan error: %v", sum.Errors)
	}

	var s sessionModel.ClassSessionModel
	if err := db.Where("class_sessions_group_id = ?", g.CourseGroupID).First(&s).Error; err != nil {
		t.Fatalf("ambil sesi: %v", err)
	}
	if got := s.ClassSessionsDate.Format(dbtime.LayoutDate); got != weekStart {
		t.Errorf("tanggal = %s, mau %s", got, weekStart)
	}
	if s.ClassSessionsStatus != sessionModel.SessionPlanned {
		t.Errorf("status = %s, mau PLANNED", s.ClassSessionsStatus)
	}
	if s.ClassSessionsRoomID != nil {
		t.Errorf("room override harus NULL untuk ruangan default, dapat %v", s.ClassSessionsRoomID)
	}
	if !s.ClassSessionsStartTime.Equal(dbtime.MustParse("08:00")) {
		t.Errorf("start = %s, mau 08:00:00", s.ClassSessionsStartTime)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "08:00", "10:00")

	if _, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{}); err != nil {
		t.Fatalf("generate pertama: %v", err)
	}
	sum, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate kedua: %v", err)
	}
	if sum.Created != 0 || sum.Skipped != 1 {
		t.Fatalf("generate ulang harus skip, summary: %+v", sum)
	}

	var n int64
	db.Model(&sessionModel.ClassSessionModel{}).Count(&n)
	if n != 1 {
		t.Fatalf("jumlah sesi = %d, mau 1", n)
	}
}

func TestGenerateMultiWeek(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "08:00", "10:00")

	// 4 minggu: 4 hari Senin
	sum, err := GenerateSessions(context.Background(), db, date(t, "2026-01-05"), date(t, "2026-02-01"), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if sum.Created != 4 {
		t.Fatalf("created = %d, mau 4 (summary %+v)", sum.Created, sum)
	}
}

func TestCancelledExceptionSkipsAndDeletes(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	g := seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "08:00", "10:00")

	if _, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{}); err != nil {
		t.Fatalf("generate awal: %v", err)
	}

	exc := sessionModel.ClassSessionExceptionModel{
		ClassSessionExceptionID:         uuid.New(),
		ClassSessionExceptionsGroupID:   g.CourseGroupID,
		ClassSessionExceptionsDate:      date(t, weekStart),
		ClassSessionExceptionsCancelled: true,
	}
	if err := db.Create(&exc).Error; err != nil {
		t.Fatalf("buat exception: %v", err)
	}

	sum, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{Force: true})
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if sum.Deleted != 1 {
		t.Fatalf("deleted = %d, mau 1 (summary %+v)", sum.Deleted, sum)
	}

	var n int64
	db.Model(&sessionModel.ClassSessionModel{}).Count(&n)
	if n != 0 {
		t.Fatalf("sesi yang dibatalkan harus terhapus, sisa %d", n)
	}

	// Regenerate lagi: tanggal cancelled tetap kosong
	sum, err = GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{Force: true})
	if err != nil {
		t.Fatalf("regenerate kedua: %v", err)
	}
	if sum.Created != 0 || sum.Skipped != 1 {
		t.Fatalf("tanggal cancelled tidak boleh dibuat ulang, summary: %+v", sum)
	}
}

func TestOverrideExceptionAppliedOnCreate(t *testing.T) {
	db := openTestDB(t)
	r1 := seedRoom(t, db, "R1")
	r2 := seedRoom(t, db, "R2")
	g := seedGroup(t, db, "Matematika Senin", r1.ClassRoomID, 1, "08:00", "10:00")

	start := dbtime.MustParse("14:00")
	end := dbtime.MustParse("16:00")
	exc := sessionModel.ClassSessionExceptionModel{
		ClassSessionExceptionID:                 uuid.New(),
		ClassSessionExceptionsGroupID:           g.CourseGroupID,
		ClassSessionExceptionsDate:              date(t, weekStart),
		ClassSessionExceptionsOverrideRoomID:    &r2.ClassRoomID,
		ClassSessionExceptionsOverrideStartTime: &start,
		ClassSessionExceptionsOverrideEndTime:   &end,
	}
	if err := db.Create(&exc).Error; err != nil {
		t.Fatalf("buat exception: %v", err)
	}

	sum, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if sum.Created != 1 {
		t.Fatalf("created = %d, mau 1 (summary %+v)", sum.Created, sum)
	}

	var s sessionModel.ClassSessionModel
	if err := db.Where("class_sessions_group_id = ?", g.CourseGroupID).First(&s).Error; err != nil {
		t.Fatalf("ambil sesi: %v", err)
	}
	if s.ClassSessionsRoomID == nil || *s.ClassSessionsRoomID != r2.ClassRoomID {
		t.Errorf("room override harus R2, dapat %v", s.ClassSessionsRoomID)
	}
	if !s.ClassSessionsStartTime.Equal(start) || !s.ClassSessionsEndTime.Equal(end) {
		t.Errorf("jam = %s-%s, mau 14:00-16:00", s.ClassSessionsStartTime, s.ClassSessionsEndTime)
	}
}

func TestForceUpdatesExistingToEffectiveValues(t *testing.T) {
	db := openTestDB(t)
	r1 := seedRoom(t, db, "R1")
	r2 := seedRoom(t, db, "R2")
	g := seedGroup(t, db, "Matematika Senin", r1.ClassRoomID, 1, "08:00", "10:00")

	if _, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{}); err != nil {
		t.Fatalf("generate awal: %v", err)
	}

	start := dbtime.MustParse("14:00")
	end := dbtime.MustParse("16:00")
	exc := sessionModel.ClassSessionExceptionModel{
		ClassSessionExceptionID:                 uuid.New(),
		ClassSessionExceptionsGroupID:           g.CourseGroupID,
		ClassSessionExceptionsDate:              date(t, weekStart),
		ClassSessionExceptionsOverrideRoomID:    &r2.ClassRoomID,
		ClassSessionExceptionsOverrideStartTime: &start,
		ClassSessionExceptionsOverrideEndTime:   &end,
	}
	if err := db.Create(&exc).Error; err != nil {
		t.Fatalf("buat exception: %v", err)
	}

	// Tanpa force: existing tidak disentuh
	sum, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate tanpa force: %v", err)
	}
	if sum.Skipped != 1 || sum.Updated != 0 {
		t.Fatalf("tanpa force harus skip, summary: %+v", sum)
	}

	// Dengan force: jam + room mengikuti exception
	sum, err = GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{Force: true})
	if err != nil {
		t.Fatalf("generate force: %v", err)
	}
	if sum.Updated != 1 {
		t.Fatalf("updated = %d, mau 1 (summary %+v)", sum.Updated, sum)
	}

	var s sessionModel.ClassSessionModel
	if err := db.Where("class_sessions_group_id = ?", g.CourseGroupID).First(&s).Error; err != nil {
		t.Fatalf("ambil sesi: %v", err)
	}
	if s.ClassSessionsRoomID == nil || *s.ClassSessionsRoomID != r2.ClassRoomID {
		t.Errorf("room override harus R2, dapat %v", s.ClassSessionsRoomID)
	}
	if !s.ClassSessionsStartTime.Equal(start) {
		t.Errorf("start = %s, mau 14:00:00", s.ClassSessionsStartTime)
	}
}

func TestConflictIsPerDateErrorNotFatal(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	// Urut nama: "Fisika Senin" digenerate duluan, "Matematika Senin" bentrok
	seedGroup(t, db, "Fisika Senin", room.ClassRoomID, 1, "08:00", "10:00")
	seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "09:00", "11:00")

	sum, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if sum.Created != 1 {
		t.Fatalf("created = %d, mau 1 (summary %+v)", sum.Created, sum)
	}
	if len(sum.Errors) != 1 {
		t.Fatalf("errors = %v, mau tepat 1", sum.Errors)
	}
	if !strings.Contains(sum.Errors[0], "Matematika Senin") || !strings.Contains(sum.Errors[0], weekStart) {
		t.Errorf("pesan error harus menyebut grup dan tanggal: %q", sum.Errors[0])
	}
}

func TestAdjacentSessionsSameRoomDoNotConflict(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	seedGroup(t, db, "Fisika Senin", room.ClassRoomID, 1, "08:00", "10:00")
	seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "10:00", "12:00")

	sum, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if sum.Created != 2 || len(sum.Errors) != 0 {
		t.Fatalf("sesi back-to-back harus aman, summary: %+v", sum)
	}
}

func TestInactiveGroupIsIgnored(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	g := seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "08:00", "10:00")
	if err := db.Model(&g).Update("course_groups_is_active", false).Error; err != nil {
		t.Fatalf("nonaktifkan grup: %v", err)
	}

	sum, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if sum.Created != 0 {
		t.Fatalf("grup nonaktif tidak boleh digenerate, summary: %+v", sum)
	}
}

func TestInvalidOverrideWindowRecordedAsError(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	g := seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "08:00", "10:00")

	// Override start 15:00 tanpa end → end efektif 10:00 < start
	start := dbtime.MustParse("15:00")
	exc := sessionModel.ClassSessionExceptionModel{
		ClassSessionExceptionID:                 uuid.New(),
		ClassSessionExceptionsGroupID:           g.CourseGroupID,
		ClassSessionExceptionsDate:              date(t, weekStart),
		ClassSessionExceptionsOverrideStartTime: &start,
	}
	if err := db.Create(&exc).Error; err != nil {
		t.Fatalf("buat exception: %v", err)
	}

	sum, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if sum.Created != 0 || len(sum.Errors) != 1 {
		t.Fatalf("window tidak valid harus jadi error per tanggal, summary: %+v", sum)
	}
}

func TestRegenerateAroundDateForcesWindow(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	g := seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "08:00", "10:00")

	if _, err := GenerateSessions(context.Background(), db, date(t, weekStart), date(t, weekEnd), GenerateOptions{}); err != nil {
		t.Fatalf("generate awal: %v", err)
	}

	exc := sessionModel.ClassSessionExceptionModel{
		ClassSessionExceptionID:         uuid.New(),
		ClassSessionExceptionsGroupID:   g.CourseGroupID,
		ClassSessionExceptionsDate:      date(t, weekStart),
		ClassSessionExceptionsCancelled: true,
	}
	if err := db.Create(&exc).Error; err != nil {
		t.Fatalf("buat exception: %v", err)
	}

	sum, err := RegenerateAroundDate(context.Background(), db, date(t, weekStart))
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if sum.Deleted != 1 {
		t.Fatalf("deleted = %d, mau 1 (summary %+v)", sum.Deleted, sum)
	}
}

func TestGenerateStopsOnCancelledContext(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	seedGroup(t, db, "Matematika Senin", room.ClassRoomID, 1, "08:00", "10:00")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateSessions(ctx, db, date(t, weekStart), date(t, weekEnd), GenerateOptions{})
	if err == nil {
		t.Fatal("context batal harus menghentikan generate")
	}
}
