package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wita = time.FixedZone("WITA", 8*60*60)

func TestFilingTypeCounts(t *testing.T) {
	rows := []Filing{
		{Type: "Merek", RegistrationDate: "1/15/2024"},
		{Type: "Merek", RegistrationDate: "3/2/2024"},
		{Type: "Paten", RegistrationDate: "12/31/2024"},
		{Type: "DTLST", RegistrationDate: "7/7/2024"},
		{Type: "Hak Cipta", RegistrationDate: "2/2/2023"},
		{Type: "Desain Industri", RegistrationDate: "5/5/2024"},
		{Type: "Merek", RegistrationDate: "2024-01-01"},
	}

	got := FilingTypeCounts(rows, 2024)

	assert.Equal(t, 5, got.Total, "unknown types still count toward the total")
	assert.Equal(t, 2, got.Count("Merek"))
	assert.Equal(t, 1, got.Count("Paten"))
	assert.Equal(t, 1, got.Count("DTSL"))
	assert.Equal(t, 0, got.Count("Hak Cipta"))
}

func TestFilingTypeCountsSumMatchesTotalForKnownTypes(t *testing.T) {
	rows := []Filing{
		{Type: "Merek", RegistrationDate: "1/1/2025"},
		{Type: "Paten", RegistrationDate: "2/1/2025"},
		{Type: "Hak Cipta", RegistrationDate: "3/1/2025"},
		{Type: "Indikasi Geografis", RegistrationDate: "4/1/2025"},
		{Type: "DTSL", RegistrationDate: "5/1/2025"},
		{Type: "Rahasia Dagang", RegistrationDate: "6/1/2025"},
		{Type: "KI Komunal", RegistrationDate: "7/1/2025"},
		{Type: "Merek", RegistrationDate: "8/1/2025"},
	}
	got := FilingTypeCounts(rows, 2025)

	sum := 0
	for _, tc := range got.Types {
		sum += tc.Count
	}
	assert.Equal(t, got.Total, sum)
	assert.Equal(t, 8, got.Total)
}

func TestFilingChartByType(t *testing.T) {
	rows := []Filing{
		{Type: "Merek", RegistrationDate: "1/10/2024"},
		{Type: "Paten", RegistrationDate: "1/11/2024"},
		{Type: "Lainnya", RegistrationDate: "1/12/2024"},
		{Type: "Merek", RegistrationDate: "12/1/2024"},
		{Type: "Merek", RegistrationDate: "12/1/2023"},
		{Type: "Merek", RegistrationDate: "13/1/2024"},
	}

	got := FilingChartByType(rows, 2024)
	require.Len(t, got, 12)

	assert.Equal(t, "January", got[0].Month)
	assert.Equal(t, 3, got[0].Total)
	assert.Equal(t, 1, got[0].Types["Merek"])
	assert.Equal(t, 1, got[0].Types["Paten"])
	_, hasUnknown := got[0].Types["Lainnya"]
	assert.False(t, hasUnknown)

	assert.Equal(t, "December", got[11].Month)
	assert.Equal(t, 1, got[11].Total)
	for i := 1; i < 11; i++ {
		assert.Zero(t, got[i].Total, got[i].Month)
	}
}

func TestSnapshotTypeCounts(t *testing.T) {
	rows := []Snapshot{
		{Date: "2024-01-31T16:00:00.000Z", Merek: 1, Paten: 2, DesainIndustri: 3},
		{Date: "2024-03-01", HakCipta: 4, KiKomunal: 1},
		{Date: "2023-12-31T15:00:00.000Z", Merek: 100},
	}

	got := SnapshotTypeCounts(rows, 2024, wita)

	assert.Equal(t, SnapshotCounts{
		Merek: 1, Paten: 2, DesainIndustri: 3, HakCipta: 4, KiKomunal: 1, Total: 11,
	}, got)
}

func TestSnapshotYearCompareUsesSameMonthIndex(t *testing.T) {
	rows := []Snapshot{
		{Date: "2023-03-01", Merek: 5},
		{Date: "2024-03-01", Merek: 2, Paten: 1},
		{Date: "2024-12-01", Paten: 7},
		{Date: "2024-11-30T16:00:00.000Z", RahasiaDagang: 1},
	}

	got := SnapshotYearCompare(rows, 2023, 2024, wita)

	want := make([]YearCompareBucket, 12)
	for i := range want {
		want[i].Month = time.Month(i + 1).String()
	}
	want[2].TotalYearFrom = 5
	want[2].TotalYearTo = 3
	want[11].TotalYearTo = 8

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("year compare mismatch (-want +got):\n%s", diff)
	}
}
