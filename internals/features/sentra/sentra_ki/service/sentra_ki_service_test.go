package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiadmin_backend/internals/constants"
	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
	"kiadmin_backend/internals/features/sentra/sentra_ki/dto"
	"kiadmin_backend/internals/features/sentra/sentra_ki/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/dbtest"
)

var admin = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleAdmin, UserName: "admin"}

func request(instansiID uuid.UUID, name string) dto.CreateSentraKiRequest {
	return dto.CreateSentraKiRequest{
		SentraKiName:       name,
		SentraKiInstansiID: instansiID,
		SentraKiAddress:    "Jl. Kalimantan No. 37",
		SentraKiCity:       "Jember",
		SentraKiLatitude:   "-8.1651",
		SentraKiLongitude:  "113.7165",
		SentraKiPicName:    "Sari",
		SentraKiPicPhone:   "081311112222",
		SentraKiPicEmail:   "  Sari@Unej.ac.id ",
		SentraKiPicID:      "197905052003",
	}
}

func TestCreateAssignsSequentialCodes(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	svc := service.NewSentraKiService(db, nil)

	in := instansiModel.InstansiModel{InstansiName: "Universitas Jember", InstansiType: "Perguruan Tinggi"}
	require.NoError(t, db.Create(&in).Error)

	first, err := svc.Create(ctx, admin, request(in.InstansiID, "Sentra KI Unej"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, admin, request(in.InstansiID, "Sentra KI Unej Bondowoso"))
	require.NoError(t, err)

	assert.Equal(t, "SKI-001", first.SentraKiCustomID)
	assert.Equal(t, "SKI-002", second.SentraKiCustomID)
	assert.Equal(t, "sari@unej.ac.id", first.SentraKiPicEmail)
	require.NotNil(t, first.Instansi)
	assert.Equal(t, "Universitas Jember", first.Instansi.InstansiName)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "SKI-001", all[0].SentraKiCustomID)
}

func TestCreateRejectsMissingInstansiAndIdentity(t *testing.T) {
	ctx := context.Background()
	svc := service.NewSentraKiService(dbtest.Open(t), nil)

	_, err := svc.Create(ctx, admin, request(uuid.New(), "Sentra KI Tanpa Induk"))
	assert.ErrorIs(t, err, helper.ErrReferenceMissing)

	_, err = svc.Create(ctx, helperAuth.Identity{}, request(uuid.New(), "Sentra KI Anonim"))
	assert.ErrorIs(t, err, helper.ErrUnauthorized)
}

func TestUpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	svc := service.NewSentraKiService(db, nil)

	in := instansiModel.InstansiModel{InstansiName: "Universitas Jember", InstansiType: "Perguruan Tinggi"}
	require.NoError(t, db.Create(&in).Error)
	created, err := svc.Create(ctx, admin, request(in.InstansiID, "Sentra KI Unej"))
	require.NoError(t, err)

	city := "Banyuwangi"
	updated, err := svc.Update(ctx, admin, created.SentraKiID, dto.UpdateSentraKiRequest{SentraKiCity: &city})
	require.NoError(t, err)
	assert.Equal(t, "Banyuwangi", updated.SentraKiCity)
	assert.Equal(t, "Sentra KI Unej", updated.SentraKiName)
	assert.Equal(t, "SKI-001", updated.SentraKiCustomID)

	missing := uuid.New()
	_, err = svc.Update(ctx, admin, created.SentraKiID, dto.UpdateSentraKiRequest{SentraKiInstansiID: &missing})
	assert.ErrorIs(t, err, helper.ErrReferenceMissing)

	got, err := svc.Get(ctx, created.SentraKiID)
	require.NoError(t, err)
	assert.Equal(t, in.InstansiID, got.SentraKiInstansiID)

	_, err = svc.Update(ctx, admin, uuid.New(), dto.UpdateSentraKiRequest{SentraKiCity: &city})
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	svc := service.NewSentraKiService(db, nil)

	in := instansiModel.InstansiModel{InstansiName: "Universitas Jember", InstansiType: "Perguruan Tinggi"}
	require.NoError(t, db.Create(&in).Error)
	created, err := svc.Create(ctx, admin, request(in.InstansiID, "Sentra KI Unej"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, admin, created.SentraKiID))
	_, err = svc.Get(ctx, created.SentraKiID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, admin, created.SentraKiID), helper.ErrNotFound)
}
