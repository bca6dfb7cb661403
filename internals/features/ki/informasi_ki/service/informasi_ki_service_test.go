package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/ki/informasi_ki/dto"
	"kiadmin_backend/internals/features/ki/informasi_ki/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/dbtest"
)

var (
	admin = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleAdmin}
	owner = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleUser}
	other = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleUser}
)

func TestOwnerCanModifyOthersCannot(t *testing.T) {
	ctx := context.Background()
	svc := service.NewInformasiKiService(dbtest.Open(t), nil)

	info, err := svc.Create(ctx, owner, dto.CreateInformasiKiRequest{
		InformasiKiName:        " Sosialisasi Merek Kolektif ",
		InformasiKiDate:        "2025-06-10",
		InformasiKiDescription: "Pendampingan pendaftaran merek untuk UMKM",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sosialisasi Merek Kolektif", info.InformasiKiName)
	assert.Equal(t, owner.UserID, info.InformasiKiUserID)

	name := "Sosialisasi Merek Kolektif Tahap 2"
	_, err = svc.Update(ctx, other, info.InformasiKiID, dto.UpdateInformasiKiRequest{InformasiKiName: &name})
	assert.ErrorIs(t, err, helper.ErrForbidden)
	_, err = svc.Get(ctx, other, info.InformasiKiID)
	assert.ErrorIs(t, err, helper.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, other, info.InformasiKiID), helper.ErrForbidden)

	got, err := svc.Update(ctx, owner, info.InformasiKiID, dto.UpdateInformasiKiRequest{InformasiKiName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, got.InformasiKiName)

	mine, err := svc.All(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, mine)

	all, err := svc.All(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, admin, info.InformasiKiID))
	_, err = svc.Get(ctx, owner, info.InformasiKiID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := service.NewInformasiKiService(dbtest.Open(t), nil)

	_, err := svc.Create(ctx, owner, dto.CreateInformasiKiRequest{
		InformasiKiName:        "Webinar",
		InformasiKiDate:        "10 Juni",
		InformasiKiDescription: "x",
	})
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Create(ctx, helperAuth.Identity{}, dto.CreateInformasiKiRequest{
		InformasiKiName:        "Webinar",
		InformasiKiDate:        "2025-06-10",
		InformasiKiDescription: "x",
	})
	assert.ErrorIs(t, err, helper.ErrUnauthorized)
}
