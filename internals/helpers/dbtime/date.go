// file: internals/helpers/dbtime/date.go
package dbtime

import (
	"strings"
	"time"
)

const LayoutDate = "2006-01-02"

// DateOnly: normalisasi ke tengah malam UTC supaya kolom DATE
// selalu dibandingkan apple-to-apple.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate: "YYYY-MM-DD" → time.Time (midnight UTC)
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(LayoutDate, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// ISOWeekday: 1=Senin .. 7=Minggu (selaras EXTRACT(ISODOW) Postgres)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday()) // 0=Sunday
	if wd == 0 {
		return 7
	}
	return wd
}

// MonthStart: tanggal 1 dari bulan yang memuat t (untuk month_covered pembayaran).
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
