// file: internals/features/dashboard/dto/dashboard_dto.go
package dto

import (
	"kiadmin_backend/internals/features/dashboard/stats"
	"kiadmin_backend/internals/features/dashboard/status"
)

// Card: satu kartu ringkasan di dashboard.
type Card struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

func PksCards(s status.Summary) []Card {
	return []Card{
		{Key: "total", Label: "Total PKS", Value: s.Total},
		{Key: "active", Label: "PKS Aktif", Value: s.Active},
		{Key: "expiring_soon", Label: "PKS Akan Habis", Value: s.ExpiringSoon},
		{Key: "expired", Label: "PKS Kedaluwarsa", Value: s.Expired},
	}
}

type Overview struct {
	Pks           status.Summary `json:"pks"`
	Cards         []Card         `json:"cards"`
	InstansiCount int64          `json:"instansi_count"`
	SentraKiCount int64          `json:"sentra_ki_count"`
	DaftarKiCount int64          `json:"daftar_ki_count"`
	UserCount     int64          `json:"user_count"`
}

type FilingStats struct {
	Year   int                     `json:"year"`
	Counts stats.TypeCounts        `json:"counts"`
	Chart  []stats.MonthTypeBucket `json:"chart"`
}

type SnapshotStats struct {
	Year   int                  `json:"year"`
	Counts stats.SnapshotCounts `json:"counts"`
}

type SnapshotCompare struct {
	YearFrom int                       `json:"year_from"`
	YearTo   int                       `json:"year_to"`
	Buckets  []stats.YearCompareBucket `json:"buckets"`
}
