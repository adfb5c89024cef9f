// file: internals/features/school/sessions/service/conflict_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	sessionModel "bimbelku_backend/internals/features/school/sessions/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

func TestOverlaps(t *testing.T) {
	tod := dbtime.MustParse

	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"sebagian", "09:00", "11:00", "08:00", "10:00", true},
		{"di dalam", "08:30", "09:30", "08:00", "10:00", true},
		{"identik", "08:00", "10:00", "08:00", "10:00", true},
		{"back-to-back", "10:00", "12:00", "08:00", "10:00", false},
		{"terpisah", "13:00", "15:00", "08:00", "10:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tod(tc.s1), tod(tc.e1), tod(tc.s2), tod(tc.e2))
			if got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, mau %v", tc.s1, tc.e1, tc.s2, tc.e2, got, tc.want)
			}
		})
	}
}

func TestFirstOccurrenceOnOrAfter(t *testing.T) {
	// 2026-01-05 = Senin
	cases := []struct {
		ref  string
		dow  int
		want string
	}{
		{"2026-01-05", 1, "2026-01-05"}, // hari yang sama
		{"2026-01-05", 3, "2026-01-07"}, // maju ke Rabu
		{"2026-01-05", 7, "2026-01-11"}, // Minggu di akhir pekan yang sama
		{"2026-01-06", 1, "2026-01-12"}, // Senin sudah lewat → minggu depan
	}
	for _, tc := range cases {
		got := FirstOccurrenceOnOrAfter(date(t, tc.ref), tc.dow)
		if got.Format(dbtime.LayoutDate) != tc.want {
			t.Errorf("FirstOccurrenceOnOrAfter(%s, %d) = %s, mau %s",
				tc.ref, tc.dow, got.Format(dbtime.LayoutDate), tc.want)
		}
	}
}

func TestCheckGroupConflict(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")
	other := seedRoom(t, db, "R2")
	g := seedGroup(t, db, "Fisika Senin", room.ClassRoomID, 1, "08:00", "10:00")

	// Jam overlap, ruangan + hari sama → bentrok
	cf, err := CheckGroupConflict(db, room.ClassRoomID, 1,
		dbtime.MustParse("09:00"), dbtime.MustParse("11:00"), uuid.Nil)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if cf == nil {
		t.Fatal("mau bentrok, dapat nil")
	}
	if cf.OccupantName != "Fisika Senin" || cf.RoomName != "R1" {
		t.Errorf("detail bentrok salah: %+v", cf)
	}

	// Hari lain → aman
	cf, err = CheckGroupConflict(db, room.ClassRoomID, 2,
		dbtime.MustParse("09:00"), dbtime.MustParse("11:00"), uuid.Nil)
	if err != nil || cf != nil {
		t.Fatalf("hari beda harus aman, cf=%v err=%v", cf, err)
	}

	// Ruangan lain → aman
	cf, err = CheckGroupConflict(db, other.ClassRoomID, 1,
		dbtime.MustParse("09:00"), dbtime.MustParse("11:00"), uuid.Nil)
	if err != nil || cf != nil {
		t.Fatalf("ruangan beda harus aman, cf=%v err=%v", cf, err)
	}

	// Exclude diri sendiri (saat patch grup) → aman
	cf, err = CheckGroupConflict(db, room.ClassRoomID, 1,
		dbtime.MustParse("08:00"), dbtime.MustParse("10:00"), g.CourseGroupID)
	if err != nil || cf != nil {
		t.Fatalf("exclude diri sendiri harus aman, cf=%v err=%v", cf, err)
	}
}

func TestCheckSessionConflictRejectsInvalidWindow(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db, "R1")

	_, err := CheckSessionConflict(db, date(t, weekStart), room.ClassRoomID,
		dbtime.MustParse("10:00"), dbtime.MustParse("10:00"), uuid.Nil)
	if err != ErrInvalidTimeRange {
		t.Fatalf("durasi nol harus ErrInvalidTimeRange, dapat %v", err)
	}
}

func TestCheckSessionConflictHonorsRoomOverride(t *testing.T) {
	db := openTestDB(t)
	r1 := seedRoom(t, db, "R1")
	r2 := seedRoom(t, db, "R2")
	g := seedGroup(t, db, "Fisika Senin", r1.ClassRoomID, 1, "08:00", "10:00")

	// Sesi dipindah ke R2 lewat override
	s := sessionModel.ClassSessionModel{
		ClassSessionID:         uuid.New(),
		ClassSessionsGroupID:   g.CourseGroupID,
		ClassSessionsDate:      date(t, weekStart),
		ClassSessionsStartTime: dbtime.MustParse("08:00"),
		ClassSessionsEndTime:   dbtime.MustParse("10:00"),
		ClassSessionsRoomID:    &r2.ClassRoomID,
		ClassSessionsStatus:    sessionModel.SessionPlanned,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed sesi: %v", err)
	}

	// R1 kosong di jam itu (sesi pindah ke R2)
	cf, err := CheckSessionConflict(db, date(t, weekStart), r1.ClassRoomID,
		dbtime.MustParse("08:00"), dbtime.MustParse("10:00"), uuid.Nil)
	if err != nil || cf != nil {
		t.Fatalf("R1 harus kosong, cf=%v err=%v", cf, err)
	}

	// R2 terisi
	cf, err = CheckSessionConflict(db, date(t, weekStart), r2.ClassRoomID,
		dbtime.MustParse("09:00"), dbtime.MustParse("11:00"), uuid.Nil)
	if err != nil {
		t.Fatalf("check R2: %v", err)
	}
	if cf == nil {
		t.Fatal("R2 harus bentrok")
	}
}
