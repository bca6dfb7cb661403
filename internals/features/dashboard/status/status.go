// Package status mengklasifikasikan masa berlaku PKS.
package status

import (
	"time"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/helpers/kidate"
)

type Status int

const (
	Active Status = iota
	ExpiringSoon
	Expired
)

func (s Status) Label() string {
	switch s {
	case Active:
		return constants.StatusLabelActive
	case ExpiringSoon:
		return constants.StatusLabelExpiringSoon
	default:
		return constants.StatusLabelExpired
	}
}

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case ExpiringSoon:
		return "expiring_soon"
	default:
		return "expired"
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Classifier membawa "sekarang", jendela peringatan, dan zona waktu.
type Classifier struct {
	Now       func() time.Time
	Lookahead time.Duration
	Loc       *time.Location
}

func NewClassifier(lookahead time.Duration, loc *time.Location) Classifier {
	return Classifier{Now: time.Now, Lookahead: lookahead, Loc: loc}
}

// Classify: sudah lewat → Expired; sebelum now+lookahead → ExpiringSoon; selain itu Active.
// Tanggal yang tidak bisa dibaca dianggap Expired.
func (c Classifier) Classify(expiryDateTo string) Status {
	t, err := kidate.Parse(expiryDateTo, c.Loc)
	if err != nil {
		return Expired
	}
	return c.ClassifyTime(t)
}

func (c Classifier) ClassifyTime(expiry time.Time) Status {
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	switch {
	case expiry.Before(now):
		return Expired
	case expiry.Before(now.Add(c.Lookahead)):
		return ExpiringSoon
	default:
		return Active
	}
}

type Summary struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

func (s *Summary) Add(st Status) {
	s.Total++
	switch st {
	case Active:
		s.Active++
	case ExpiringSoon:
		s.ExpiringSoon++
	default:
		s.Expired++
	}
}

// Summarize menghitung kartu ringkasan dari daftar tanggal berakhir.
func (c Classifier) Summarize(expiryDates []string) Summary {
	var s Summary
	for _, d := range expiryDates {
		s.Add(c.Classify(d))
	}
	return s
}
