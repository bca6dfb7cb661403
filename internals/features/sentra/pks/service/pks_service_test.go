package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/dashboard/status"
	docService "kiadmin_backend/internals/features/documents/service"
	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
	"kiadmin_backend/internals/features/sentra/pks/dto"
	"kiadmin_backend/internals/features/sentra/pks/service"
	sentraDTO "kiadmin_backend/internals/features/sentra/sentra_ki/dto"
	sentraService "kiadmin_backend/internals/features/sentra/sentra_ki/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/dbtest"
	"kiadmin_backend/internals/helpers/storage"
)

var admin = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleAdmin, UserName: "admin"}

var fixedNow = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	db     *gorm.DB
	svc    *service.PksService
	docs   *docService.DocumentService
	st     *storage.MemoryProvider
	sentra *sentraService.SentraKiService
	skiID  uuid.UUID
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db := dbtest.Open(t)
	st := storage.NewMemoryProvider()
	docs := docService.NewDocumentService(db, st, 0)
	cls := status.Classifier{Now: func() time.Time { return fixedNow }, Lookahead: 30 * 24 * time.Hour, Loc: time.UTC}

	in := instansiModel.InstansiModel{InstansiName: "Politeknik Negeri Jember", InstansiType: "Perguruan Tinggi"}
	require.NoError(t, db.Create(&in).Error)

	sentra := sentraService.NewSentraKiService(db, nil)
	ski, err := sentra.Create(ctx, admin, sentraDTO.CreateSentraKiRequest{
		SentraKiName:       "Sentra KI Polije",
		SentraKiInstansiID: in.InstansiID,
		SentraKiAddress:    "Jl. Mastrip, Jember",
		SentraKiCity:       "Jember",
		SentraKiLatitude:   "-8.1597",
		SentraKiLongitude:  "113.7232",
		SentraKiPicName:    "Budi",
		SentraKiPicPhone:   "081200000000",
		SentraKiPicEmail:   "budi@polije.ac.id",
		SentraKiPicID:      "198001012005",
	})
	require.NoError(t, err)

	return fixture{
		db:     db,
		svc:    service.NewPksService(db, docs, cls, nil),
		docs:   docs,
		st:     st,
		sentra: sentra,
		skiID:  ski.SentraKiID,
	}
}

func (f fixture) upload(t *testing.T, name string) string {
	t.Helper()
	doc, err := f.docs.Upload(context.Background(), admin, name, []byte("%PDF-1.4"))
	require.NoError(t, err)
	return doc.DocumentKey
}

func (f fixture) createReq(t *testing.T, to string) dto.CreatePksRequest {
	return dto.CreatePksRequest{
		PksName:           "PKS Pendampingan Paten",
		PksDocument:       f.upload(t, "pks.pdf"),
		PksExpiryDateFrom: "2025-01-01",
		PksExpiryDateTo:   to,
		PksSentraKiID:     f.skiID,
	}
}

func TestCreateAssignsNumberAndStatus(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	first, err := f.svc.Create(ctx, admin, f.createReq(t, "2027-12-31"))
	require.NoError(t, err)
	assert.Equal(t, "PKS-001", first.PksNo)
	assert.Equal(t, status.Active, first.Status)
	assert.Equal(t, constants.StatusLabelActive, first.StatusLabel)
	assert.Equal(t, "memory://"+*first.PksDocument, first.DocumentURL)
	require.NotNil(t, first.Instansi)
	assert.Equal(t, "Politeknik Negeri Jember", first.Instansi.InstansiName)
	assert.Equal(t, admin.UserID, first.PksCreatedBy)

	second, err := f.svc.Create(ctx, admin, f.createReq(t, "2026-03-15"))
	require.NoError(t, err)
	assert.Equal(t, "PKS-002", second.PksNo)
	assert.Equal(t, status.ExpiringSoon, second.Status)

	third, err := f.svc.Create(ctx, admin, f.createReq(t, "2026-02-01"))
	require.NoError(t, err)
	assert.Equal(t, status.Expired, third.Status)

	sum, err := f.svc.StatusSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, status.Summary{Total: 3, Active: 1, ExpiringSoon: 1, Expired: 1}, sum)
}

func TestCreateRejects(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	req := f.createReq(t, "2024-12-31")
	_, err := f.svc.Create(ctx, admin, req)
	assert.ErrorIs(t, err, helper.ErrValidation, "tanggal berakhir sebelum tanggal mulai")

	req = f.createReq(t, "2027-01-01")
	req.PksSentraKiID = uuid.New()
	_, err = f.svc.Create(ctx, admin, req)
	assert.ErrorIs(t, err, helper.ErrReferenceMissing)

	req = f.createReq(t, "2027-01-01")
	req.PksDocument = "documents/2026/03/belum-diupload.pdf"
	_, err = f.svc.Create(ctx, admin, req)
	assert.ErrorIs(t, err, helper.ErrReferenceMissing)

	_, err = f.svc.Create(ctx, helperAuth.Identity{}, f.createReq(t, "2027-01-01"))
	assert.ErrorIs(t, err, helper.ErrUnauthorized)

	all, err := f.svc.All(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateReplacesDocument(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	created, err := f.svc.Create(ctx, admin, f.createReq(t, "2027-12-31"))
	require.NoError(t, err)
	oldKey := *created.PksDocument

	newKey := f.upload(t, "pks-revisi.pdf")
	name := "PKS Pendampingan Merek"
	updated, err := f.svc.Update(ctx, admin, created.PksID, dto.UpdatePksRequest{
		PksName:        &name,
		PksDocument:    &newKey,
		PksDescription: helper.Set("revisi kedua"),
	})
	require.NoError(t, err)

	assert.Equal(t, name, updated.PksName)
	assert.Equal(t, newKey, *updated.PksDocument)
	require.NotNil(t, updated.PksDescription)
	assert.Equal(t, "revisi kedua", *updated.PksDescription)
	assert.Equal(t, created.PksNo, updated.PksNo)
	assert.False(t, f.st.Has(oldKey))
	assert.True(t, f.st.Has(newKey))

	cleared, err := f.svc.Update(ctx, admin, created.PksID, dto.UpdatePksRequest{PksDescription: helper.Clear[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.PksDescription)

	badTo := "2020-01-01"
	_, err = f.svc.Update(ctx, admin, created.PksID, dto.UpdatePksRequest{PksExpiryDateTo: &badTo})
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = f.svc.Update(ctx, admin, uuid.New(), dto.UpdatePksRequest{PksName: &name})
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestDeleteReleasesDocumentAndUnblocksSentraKi(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	created, err := f.svc.Create(ctx, admin, f.createReq(t, "2027-12-31"))
	require.NoError(t, err)

	err = f.sentra.Delete(ctx, admin, f.skiID)
	require.ErrorIs(t, err, helper.ErrReferenceInUse)

	require.NoError(t, f.svc.Delete(ctx, admin, created.PksID))
	assert.False(t, f.st.Has(*created.PksDocument))

	_, err = f.svc.Get(ctx, created.PksID)
	assert.ErrorIs(t, err, helper.ErrNotFound)

	require.NoError(t, f.sentra.Delete(ctx, admin, f.skiID))
}

func TestListSearchesByNumber(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	for i := 0; i < 3; i++ {
		_, err := f.svc.Create(ctx, admin, f.createReq(t, "2027-12-31"))
		require.NoError(t, err)
	}

	rows, info, err := f.svc.List(ctx, helper.PageQuery{Page: 1, Limit: 10, Query: "pks-002"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PKS-002", rows[0].PksNo)
	assert.Equal(t, 1, info.Page)
}
