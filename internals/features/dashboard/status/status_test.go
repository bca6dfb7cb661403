package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var wita = time.FixedZone("WITA", 8*60*60)

func fixedClassifier(now time.Time, days int) Classifier {
	return Classifier{
		Now:       func() time.Time { return now },
		Lookahead: time.Duration(days) * 24 * time.Hour,
		Loc:       wita,
	}
}

func TestClassifyScenarios(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, wita)
	c := fixedClassifier(now, 30)

	tests := []struct {
		name   string
		expiry time.Time
		want   Status
	}{
		{"ten days ahead is expiring soon", now.AddDate(0, 0, 10), ExpiringSoon},
		{"forty five days ahead is active", now.AddDate(0, 0, 45), Active},
		{"five days ago is expired", now.AddDate(0, 0, -5), Expired},
		{"exactly at window edge is active", now.Add(30 * 24 * time.Hour), Active},
		{"one second before edge is expiring", now.Add(30*24*time.Hour - time.Second), ExpiringSoon},
		{"one second ago is expired", now.Add(-time.Second), Expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ClassifyTime(tt.expiry))
		})
	}
}

func TestClassifyParsesStoredFormats(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, wita)
	c := fixedClassifier(now, 30)

	assert.Equal(t, Active, c.Classify("2025-12-31"))
	assert.Equal(t, ExpiringSoon, c.Classify("6/30/2025"))
	assert.Equal(t, Expired, c.Classify("2025-06-01T00:00:00.000Z"))
	assert.Equal(t, Expired, c.Classify("bukan tanggal"))
	assert.Equal(t, Expired, c.Classify(""))
}

func TestLookaheadIsConfigurable(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, wita)
	expiry := now.AddDate(0, 0, 45)

	assert.Equal(t, Active, fixedClassifier(now, 30).ClassifyTime(expiry))
	assert.Equal(t, ExpiringSoon, fixedClassifier(now, 60).ClassifyTime(expiry))
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, wita)
	c := fixedClassifier(now, 30)

	s := c.Summarize([]string{"2026-01-01", "2025-07-01", "2025-06-20", "2024-01-01", "x"})
	assert.Equal(t, Summary{Total: 5, Active: 1, ExpiringSoon: 2, Expired: 2}, s)
	assert.Equal(t, s.Total, s.Active+s.ExpiringSoon+s.Expired)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Aktif", Active.Label())
	assert.Equal(t, "Akan Habis", ExpiringSoon.Label())
	assert.Equal(t, "Kedaluwarsa", Expired.Label())
}
