package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/ki/permohonan_ki/dto"
	"kiadmin_backend/internals/features/ki/permohonan_ki/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/dbtest"
)

var (
	admin = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleAdmin}
	alice = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleUser}
	bob   = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleUser}
)

func newService(t *testing.T) *service.PermohonanKiService {
	t.Helper()
	return service.NewPermohonanKiService(dbtest.Open(t), time.UTC, nil)
}

func TestCreateRejectsDuplicateDate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	first, err := svc.Create(ctx, alice, dto.CreatePermohonanKiRequest{PermohonanKiDate: "2025-03-01", PermohonanKiMerek: 4})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T00:00:00Z", first.PermohonanKiDate)
	assert.Equal(t, alice.UserID, first.PermohonanKiUserID)

	// bentuk lain dari tanggal yang sama
	_, err = svc.Create(ctx, alice, dto.CreatePermohonanKiRequest{PermohonanKiDate: "2025-03-01T00:00:00", PermohonanKiPaten: 1})
	assert.ErrorIs(t, err, helper.ErrConflict)

	_, err = svc.Create(ctx, alice, dto.CreatePermohonanKiRequest{PermohonanKiDate: "bukan tanggal"})
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Create(ctx, alice, dto.CreatePermohonanKiRequest{PermohonanKiDate: "2025-04-01", PermohonanKiMerek: -1})
	assert.ErrorIs(t, err, helper.ErrValidation)

	rows, err := svc.All(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUpdateKeepsOwnDate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	march, err := svc.Create(ctx, alice, dto.CreatePermohonanKiRequest{PermohonanKiDate: "2025-03-01"})
	require.NoError(t, err)
	april, err := svc.Create(ctx, alice, dto.CreatePermohonanKiRequest{PermohonanKiDate: "2025-04-01"})
	require.NoError(t, err)

	same := "2025-03-01"
	merek := 9
	out, err := svc.Update(ctx, alice, march.PermohonanKiID, dto.UpdatePermohonanKiRequest{
		PermohonanKiDate:  &same,
		PermohonanKiMerek: &merek,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, out.PermohonanKiMerek)

	_, err = svc.Update(ctx, alice, april.PermohonanKiID, dto.UpdatePermohonanKiRequest{PermohonanKiDate: &same})
	assert.ErrorIs(t, err, helper.ErrConflict)

	got, err := svc.Get(ctx, alice, april.PermohonanKiID)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01T00:00:00Z", got.PermohonanKiDate)
}

func TestOwnerScope(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	mine, err := svc.Create(ctx, alice, dto.CreatePermohonanKiRequest{PermohonanKiDate: "2025-01-01", PermohonanKiHakCipta: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, dto.CreatePermohonanKiRequest{PermohonanKiDate: "2025-02-01", PermohonanKiHakCipta: 3})
	require.NoError(t, err)

	rows, info, err := svc.List(ctx, alice, helper.PageQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.PermohonanKiID, rows[0].PermohonanKiID)
	assert.Equal(t, 1, info.TotalLoaded)

	all, err := svc.All(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.Get(ctx, bob, mine.PermohonanKiID)
	assert.ErrorIs(t, err, helper.ErrForbidden)

	paten := 1
	_, err = svc.Update(ctx, bob, mine.PermohonanKiID, dto.UpdatePermohonanKiRequest{PermohonanKiPaten: &paten})
	assert.ErrorIs(t, err, helper.ErrForbidden)

	assert.ErrorIs(t, svc.Delete(ctx, bob, mine.PermohonanKiID), helper.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, admin, mine.PermohonanKiID))

	_, _, err = svc.List(ctx, helperAuth.Identity{}, helper.PageQuery{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, helper.ErrUnauthorized)
}

func TestSnapshotsByOwner(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Create(ctx, alice, dto.CreatePermohonanKiRequest{PermohonanKiDate: "2025-01-01", PermohonanKiMerek: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, dto.CreatePermohonanKiRequest{PermohonanKiDate: "2025-02-01", PermohonanKiMerek: 5})
	require.NoError(t, err)

	all, err := svc.Snapshots(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.Snapshots(ctx, &bob.UserID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, 5, own[0].Merek)
}
