package displaycode_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kiadmin_backend/internals/helpers/dbtest"
	"kiadmin_backend/internals/helpers/displaycode"
)

func TestNextFromExisting(t *testing.T) {
	cases := []struct {
		name  string
		codes []string
		want  string
	}{
		{"kosong", nil, "PKS-001"},
		{"satu sampai sembilan", []string{"PKS-001", "PKS-002", "PKS-003", "PKS-004", "PKS-005", "PKS-006", "PKS-007", "PKS-008", "PKS-009"}, "PKS-010"},
		{"lewat sembilan puluh sembilan", []string{"PKS-099"}, "PKS-100"},
		{"lewat sembilan ratus sembilan puluh sembilan", []string{"PKS-999"}, "PKS-1000"},
		{"urutan acak", []string{"PKS-012", "PKS-003", "PKS-010"}, "PKS-013"},
		{"prefix lain diabaikan", []string{"SKI-050", "PKS-002", "PKS-abc", "PKS-"}, "PKS-003"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, displaycode.NextFromExisting("PKS", tc.codes))
		})
	}
}

func TestParseSuffix(t *testing.T) {
	n, ok := displaycode.ParseSuffix("SKI", "SKI-0042")
	assert.True(t, ok)
	assert.EqualValues(t, 42, n)

	for _, bad := range []string{"XSKI-001", "SKI-", "SKI-+12", "SKI-12a", "PKS-001", "SKI001"} {
		_, ok = displaycode.ParseSuffix("SKI", bad)
		assert.False(t, ok, bad)
	}
}

func TestNextIncrementsCounterFromSeed(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	seedCalls := 0
	seed := func(tx *gorm.DB) ([]string, error) {
		seedCalls++
		return []string{"SKI-007", "SKI-003"}, nil
	}

	var got []string
	for i := 0; i < 3; i++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			code, err := displaycode.Next(ctx, tx, "SKI", seed)
			got = append(got, code)
			return err
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"SKI-008", "SKI-009", "SKI-010"}, got)
	assert.Equal(t, 1, seedCalls)

	other, err := displaycode.Next(ctx, db, "PKS", nil)
	require.NoError(t, err)
	assert.Equal(t, "PKS-001", other)
}

func TestNextRolledBackWithTransaction(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	_ = db.Transaction(func(tx *gorm.DB) error {
		_, err := displaycode.Next(ctx, tx, "PKS", nil)
		require.NoError(t, err)
		return assert.AnError
	})

	code, err := displaycode.Next(ctx, db, "PKS", nil)
	require.NoError(t, err)
	assert.Equal(t, "PKS-001", code)
}
