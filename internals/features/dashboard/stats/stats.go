// Package stats menghitung jumlah per jenis KI dan deret bulanan untuk grafik.
//
// Daftar KI memakai tanggal "M/D/YYYY" (dipecah dengan "/"), sedangkan
// permohonan KI memakai tanggal ISO yang dibaca di zona waktu aplikasi.
package stats

import (
	"time"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/helpers/kidate"
)

type Filing struct {
	Type             string
	RegistrationDate string
}

type Snapshot struct {
	Date              string
	Merek             int
	Paten             int
	HakCipta          int
	IndikasiGeografis int
	DTLST             int
	RahasiaDagang     int
	DesainIndustri    int
	KiKomunal         int
}

func (s Snapshot) Total() int {
	return s.Merek + s.Paten + s.HakCipta + s.IndikasiGeografis +
		s.DTLST + s.RahasiaDagang + s.DesainIndustri + s.KiKomunal
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type TypeCounts struct {
	Total int         `json:"total"`
	Types []TypeCount `json:"types"`
}

func (tc TypeCounts) Count(kiType string) int {
	for _, t := range tc.Types {
		if t.Type == kiType {
			return t.Count
		}
	}
	return 0
}

type MonthTypeBucket struct {
	Month string         `json:"month"`
	Total int            `json:"total"`
	Types map[string]int `json:"types"`
}

type YearCompareBucket struct {
	Month         string `json:"month"`
	TotalYearFrom int    `json:"total_year_from"`
	TotalYearTo   int    `json:"total_year_to"`
}

type SnapshotCounts struct {
	Merek             int `json:"merek"`
	Paten             int `json:"paten"`
	HakCipta          int `json:"hak_cipta"`
	IndikasiGeografis int `json:"indikasi_geografis"`
	DTLST             int `json:"dtlst"`
	RahasiaDagang     int `json:"rahasia_dagang"`
	DesainIndustri    int `json:"desain_industri"`
	KiKomunal         int `json:"ki_komunal"`
	Total             int `json:"total"`
}

func emptyTypeCounts() TypeCounts {
	out := TypeCounts{Types: make([]TypeCount, len(constants.KiTypes))}
	for i, t := range constants.KiTypes {
		out.Types[i] = TypeCount{Type: t}
	}
	return out
}

func typeIndex(kiType string) int {
	norm, ok := constants.NormalizeKiType(kiType)
	if !ok {
		return -1
	}
	for i, t := range constants.KiTypes {
		if t == norm {
			return i
		}
	}
	return -1
}

/* ===============================
   Daftar KI
=================================*/

// FilingTypeCounts: total & jumlah per jenis untuk satu tahun.
// Jenis yang tidak dikenal tetap dihitung ke total.
func FilingTypeCounts(rows []Filing, year int) TypeCounts {
	out := emptyTypeCounts()
	for _, r := range rows {
		y, _, _, err := kidate.ParseMDY(r.RegistrationDate)
		if err != nil || y != year {
			continue
		}
		out.Total++
		if i := typeIndex(r.Type); i >= 0 {
			out.Types[i].Count++
		}
	}
	return out
}

// FilingChartByType: 12 bucket Januari–Desember, total + per jenis.
func FilingChartByType(rows []Filing, year int) []MonthTypeBucket {
	buckets := make([]MonthTypeBucket, 12)
	for i, name := range constants.MonthNames {
		types := make(map[string]int, len(constants.KiTypes))
		for _, t := range constants.KiTypes {
			types[t] = 0
		}
		buckets[i] = MonthTypeBucket{Month: name, Types: types}
	}
	for _, r := range rows {
		y, m, _, err := kidate.ParseMDY(r.RegistrationDate)
		if err != nil || y != year {
			continue
		}
		b := &buckets[m-1]
		b.Total++
		if i := typeIndex(r.Type); i >= 0 {
			b.Types[constants.KiTypes[i]]++
		}
	}
	return buckets
}

/* ===============================
   Permohonan KI (snapshot bulanan)
=================================*/

func SnapshotTypeCounts(rows []Snapshot, year int, loc *time.Location) SnapshotCounts {
	var out SnapshotCounts
	for _, r := range rows {
		y, _, err := kidate.YearMonth(r.Date, loc)
		if err != nil || y != year {
			continue
		}
		out.Merek += r.Merek
		out.Paten += r.Paten
		out.HakCipta += r.HakCipta
		out.IndikasiGeografis += r.IndikasiGeografis
		out.DTLST += r.DTLST
		out.RahasiaDagang += r.RahasiaDagang
		out.DesainIndustri += r.DesainIndustri
		out.KiKomunal += r.KiKomunal
		out.Total += r.Total()
	}
	return out
}

// SnapshotYearCompare: 12 bucket berisi total bulanan tahun pembanding (from) dan
// tahun tujuan (to). Kedua deret memakai indeks bulan yang sama.
func SnapshotYearCompare(rows []Snapshot, yearFrom, yearTo int, loc *time.Location) []YearCompareBucket {
	buckets := make([]YearCompareBucket, 12)
	for i, name := range constants.MonthNames {
		buckets[i] = YearCompareBucket{Month: name}
	}
	for _, r := range rows {
		y, m, err := kidate.YearMonth(r.Date, loc)
		if err != nil {
			continue
		}
		if y == yearFrom {
			buckets[m-1].TotalYearFrom += r.Total()
		}
		if y == yearTo {
			buckets[m-1].TotalYearTo += r.Total()
		}
	}
	return buckets
}
