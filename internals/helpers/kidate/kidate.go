// Package kidate membaca format tanggal yang tersimpan sebagai string.
//
// Ada dua konvensi yang tidak boleh disatukan:
//   - tanggal pendaftaran KI: "M/D/YYYY" (dibaca dengan split "/")
//   - periode permohonan & masa berlaku PKS: ISO (tanggal saja atau date-time)
package kidate

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("format tanggal tidak valid")

// ParseMDY membaca "M/D/YYYY" dengan memecah berdasarkan "/".
func ParseMDY(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return 0, 0, 0, ErrInvalidDate
	}
	month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, ErrInvalidDate
	}
	if month < 1 || month > 12 || day < 1 || year < 1 {
		return 0, 0, 0, ErrInvalidDate
	}
	// 2/31 dinormalisasi time.Date ke bulan berikutnya → bukan tanggal kalender
	if t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC); t.Day() != day {
		return 0, 0, 0, ErrInvalidDate
	}
	return year, month, day, nil
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// Parse membaca tanggal ISO (dengan/tanpa zona) atau "M/D/YYYY".
// Nilai tanpa zona dianggap waktu lokal di loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// YearMonth mengembalikan tahun & bulan (1-12) dari tanggal ISO menurut zona loc.
func YearMonth(s string, loc *time.Location) (int, int, error) {
	t, err := Parse(s, loc)
	if err != nil {
		return 0, 0, err
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Year(), int(t.Month()), nil
}

// Valid true bila s bisa dibaca oleh Parse.
func Valid(s string) bool {
	_, err := Parse(s, time.UTC)
	return err == nil
}

// ValidMDY true bila s berformat "M/D/YYYY".
func ValidMDY(s string) bool {
	_, _, _, err := ParseMDY(s)
	return err == nil
}

// NextMidnight: pukul 00:00 hari berikutnya di zona t.
func NextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
