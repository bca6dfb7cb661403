package kidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMDY(t *testing.T) {
	y, m, d, err := ParseMDY(" 3/14/2025 ")
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 3, 14}, []int{y, m, d})

	for _, bad := range []string{"2025-03-14", "13/1/2025", "0/1/2025", "1/32/2025", "2/31/2025", "2/29/2025", "4/31/2025", "a/b/c", "1/2"} {
		_, _, _, err := ParseMDY(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
	_, _, d, err = ParseMDY("2/29/2024")
	require.NoError(t, err, "tahun kabisat")
	assert.Equal(t, 29, d)
}

func TestParseZones(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)

	local, err := Parse("2025-01-01", wib)
	require.NoError(t, err)
	assert.Equal(t, wib, local.Location())

	zoned, err := Parse("2024-12-31T20:00:00Z", wib)
	require.NoError(t, err)
	y, m, err := YearMonth("2024-12-31T20:00:00Z", wib)
	require.NoError(t, err)
	assert.Equal(t, 2025, y, "20:00 UTC sudah 1 Januari di WIB")
	assert.Equal(t, 1, m)
	assert.Equal(t, 2024, zoned.UTC().Year())

	_, err = Parse("", nil)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.True(t, Valid("1/2/2025"))
	assert.False(t, ValidMDY("2025-01-02"))
}

func TestNextMidnight(t *testing.T) {
	wita := time.FixedZone("WITA", 8*60*60)

	got := NextMidnight(time.Date(2025, 12, 31, 23, 59, 0, 0, wita))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, wita), got)

	got = NextMidnight(time.Date(2025, 3, 1, 0, 0, 0, 0, wita))
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, wita), got)
}
