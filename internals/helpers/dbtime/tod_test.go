// file: internals/helpers/dbtime/tod_test.go
package dbtime

import (
	"testing"
	"time"
)

func TestParseAcceptsShortAndLongForm(t *testing.T) {
	short, err := Parse("08:30")
	if err != nil {
		t.Fatalf("parse HH:MM: %v", err)
	}
	long, err := Parse("08:30:00")
	if err != nil {
		t.Fatalf("parse HH:MM:SS: %v", err)
	}
	if !short.Equal(long) {
		t.Errorf("'08:30' dan '08:30:00' harus setara, dapat %s vs %s", short, long)
	}
	if short.String() != "08:30:00" {
		t.Errorf("String() = %q, mau 08:30:00", short.String())
	}

	if _, err := Parse("25:00"); err == nil {
		t.Error("jam 25 harus gagal parse")
	}
}

func TestTodOrderingSharesAnchorDate(t *testing.T) {
	a := MustParse("08:00")
	b := MustParse("10:00")
	c := From(time.Date(2026, 3, 9, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600)))

	if !a.Before(b) || b.Before(a) {
		t.Error("08:00 harus sebelum 10:00")
	}
	if !b.After(a) {
		t.Error("10:00 harus setelah 08:00")
	}
	// From membuang tanggal & zona: jam 10 dari sumber mana pun setara
	if !b.Equal(c) {
		t.Errorf("From() harus dianchor ke tanggal yang sama: %v vs %v", b.Time, c.Time)
	}
}

func TestTodScanAndValue(t *testing.T) {
	var tod Tod
	if err := tod.Scan("14:45:30"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	v, err := tod.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "14:45:30" {
		t.Errorf("Value() = %v, mau 14:45:30", v)
	}

	var fromTime Tod
	if err := fromTime.Scan(time.Date(2026, 1, 5, 14, 45, 30, 0, time.UTC)); err != nil {
		t.Fatalf("scan time.Time: %v", err)
	}
	if !fromTime.Equal(tod) {
		t.Errorf("scan dari time.Time tidak konsisten: %s vs %s", fromTime, tod)
	}
}

func TestISOWeekday(t *testing.T) {
	// 2026-01-05 Senin .. 2026-01-11 Minggu
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		want := i + 1
		if got := ISOWeekday(monday.AddDate(0, 0, i)); got != want {
			t.Errorf("ISOWeekday(%s) = %d, mau %d", monday.AddDate(0, 0, i).Format(LayoutDate), got, want)
		}
	}
}

func TestDateOnlyNormalizesToMidnightUTC(t *testing.T) {
	src := time.Date(2026, 1, 5, 23, 59, 59, 0, time.FixedZone("WIB", 7*3600))
	got := DateOnly(src)
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Errorf("DateOnly harus UTC tengah malam, dapat %v", got)
	}
	if got.Format(LayoutDate) != "2026-01-05" {
		t.Errorf("tanggal berubah: %s", got.Format(LayoutDate))
	}
}

func TestMonthStart(t *testing.T) {
	src := time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC)
	if got := MonthStart(src).Format(LayoutDate); got != "2026-03-01" {
		t.Errorf("MonthStart = %s, mau 2026-03-01", got)
	}
}
