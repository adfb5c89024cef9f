// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"os"
	"sync"
	"time"
)

var (
	schoolLocOnce sync.Once
	schoolLoc     *time.Location
)

// SchoolLocation — zona waktu operasional dari env SCHOOL_TIMEZONE
// (default Asia/Jakarta). "Hari ini" untuk generate sesi dihitung
// di zona ini, bukan UTC.
func SchoolLocation() *time.Location {
	schoolLocOnce.Do(func() {
		tz := os.Getenv("SCHOOL_TIMEZONE")
		if tz == "" {
			tz = "Asia/Jakarta"
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			loc = time.UTC
		}
		schoolLoc = loc
	})
	return schoolLoc
}

// TodaySchool — tanggal hari ini di zona sekolah, dinormalisasi
// ke midnight UTC (konsisten dengan kolom DATE).
func TodaySchool() time.Time {
	return DateOnly(time.Now().In(SchoolLocation()))
}
