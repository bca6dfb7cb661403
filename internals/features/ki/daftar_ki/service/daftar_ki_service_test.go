package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiadmin_backend/internals/constants"
	docService "kiadmin_backend/internals/features/documents/service"
	"kiadmin_backend/internals/features/ki/daftar_ki/dto"
	"kiadmin_backend/internals/features/ki/daftar_ki/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/dbtest"
	"kiadmin_backend/internals/helpers/storage"
)

var admin = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleAdmin}

func setup(t *testing.T) (*service.DaftarKiService, *docService.DocumentService, *storage.MemoryProvider) {
	t.Helper()
	db := dbtest.Open(t)
	st := storage.NewMemoryProvider()
	docs := docService.NewDocumentService(db, st, 0)
	return service.NewDaftarKiService(db, docs, nil), docs, st
}

func upload(t *testing.T, docs *docService.DocumentService, name string) string {
	t.Helper()
	d, err := docs.Upload(context.Background(), admin, name, []byte("%PDF-1.4"))
	require.NoError(t, err)
	return d.DocumentKey
}

func request(doc, kiType, date string) dto.CreateDaftarKiRequest {
	return dto.CreateDaftarKiRequest{
		DaftarKiNomorPermohonan:  "JID2025000123",
		DaftarKiName:             "Kopi Robusta Lereng Argopuro",
		DaftarKiType:             kiType,
		DaftarKiNamePemilik:      "KUB Argopuro",
		DaftarKiAddressPemilik:   "Desa Sucopangepok, Jember",
		DaftarKiPemberiFasilitas: "Sentra KI Polije",
		DaftarKiDocument:         doc,
		DaftarKiPicName:          "Sari",
		DaftarKiPicPhone:         "081311112222",
		DaftarKiPicEmail:         "Sari@Polije.ac.id ",
		DaftarKiPicID:            "3509xxxx",
		DaftarKiRegistrationDate: date,
	}
}

func TestCreateNormalizesAndAttaches(t *testing.T) {
	ctx := context.Background()
	svc, docs, _ := setup(t)

	out, err := svc.Create(ctx, admin, request(upload(t, docs, "sertifikat.pdf"), "DTLST", "3/14/2025"))
	require.NoError(t, err)
	assert.Equal(t, constants.KiDTSL, out.DaftarKiType)
	assert.Equal(t, "sari@polije.ac.id", out.DaftarKiPicEmail)
	assert.Equal(t, "3/14/2025", out.DaftarKiRegistrationDate)
	assert.NotEmpty(t, out.DocumentURL)

	filings, err := svc.Filings(ctx)
	require.NoError(t, err)
	require.Len(t, filings, 1)
	assert.Equal(t, constants.KiDTSL, filings[0].Type)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCreateRejects(t *testing.T) {
	ctx := context.Background()
	svc, docs, _ := setup(t)

	_, err := svc.Create(ctx, admin, request(upload(t, docs, "a.pdf"), "Desain Tata Kota", "3/14/2025"))
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Create(ctx, admin, request(upload(t, docs, "b.pdf"), constants.KiMerek, "2025-03-14"))
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Create(ctx, admin, request("documents/2025/03/hilang.pdf", constants.KiMerek, "3/14/2025"))
	assert.ErrorIs(t, err, helper.ErrReferenceMissing)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdateAndDeleteReleaseDocuments(t *testing.T) {
	ctx := context.Background()
	svc, docs, st := setup(t)

	oldKey := upload(t, docs, "lama.pdf")
	created, err := svc.Create(ctx, admin, request(oldKey, constants.KiPaten, "1/5/2024"))
	require.NoError(t, err)

	newKey := upload(t, docs, "baru.pdf")
	sub := "Paten Sederhana"
	updated, err := svc.Update(ctx, admin, created.DaftarKiID, dto.UpdateDaftarKiRequest{
		DaftarKiDocument: &newKey,
		DaftarKiSubType:  helper.Set(sub),
	})
	require.NoError(t, err)
	assert.Equal(t, newKey, *updated.DaftarKiDocument)
	require.NotNil(t, updated.DaftarKiSubType)
	assert.Equal(t, sub, *updated.DaftarKiSubType)
	assert.False(t, st.Has(oldKey))

	require.NoError(t, svc.Delete(ctx, admin, created.DaftarKiID))
	assert.False(t, st.Has(newKey))

	_, err = svc.Get(ctx, created.DaftarKiID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestAllFiltersByName(t *testing.T) {
	ctx := context.Background()
	svc, docs, _ := setup(t)

	a := request(upload(t, docs, "a.pdf"), constants.KiMerek, "2/1/2025")
	a.DaftarKiName = "Batik Tulis 100% Asli"
	_, err := svc.Create(ctx, admin, a)
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin, request(upload(t, docs, "b.pdf"), constants.KiMerek, "2/2/2025"))
	require.NoError(t, err)

	rows, err := svc.All(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Batik Tulis 100% Asli", rows[0].DaftarKiName)

	rows, err = svc.All(ctx, "")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestDocumentCannotBeSharedBetweenRecords(t *testing.T) {
	ctx := context.Background()
	svc, docs, st := setup(t)
	user := helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleUser}

	key := upload(t, docs, "sertifikat.pdf")
	first, err := svc.Create(ctx, admin, request(key, constants.KiMerek, "3/14/2025"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, user, request(key, constants.KiMerek, "3/15/2025"))
	assert.ErrorIs(t, err, helper.ErrConflict)
	_, err = svc.Create(ctx, admin, request(key, constants.KiPaten, "3/16/2025"))
	assert.ErrorIs(t, err, helper.ErrConflict)

	second, err := svc.Create(ctx, admin, request(upload(t, docs, "lain.pdf"), constants.KiPaten, "3/16/2025"))
	require.NoError(t, err)
	_, err = svc.Update(ctx, admin, second.DaftarKiID, dto.UpdateDaftarKiRequest{DaftarKiDocument: &key})
	assert.ErrorIs(t, err, helper.ErrConflict)

	// kirim ulang key milik sendiri tidak dianggap penggantian
	name := "Kopi Robusta Argopuro"
	same, err := svc.Update(ctx, admin, first.DaftarKiID, dto.UpdateDaftarKiRequest{DaftarKiName: &name, DaftarKiDocument: &key})
	require.NoError(t, err)
	assert.Equal(t, key, *same.DaftarKiDocument)

	require.NoError(t, svc.Delete(ctx, admin, second.DaftarKiID))
	assert.True(t, st.Has(key))
	got, err := svc.Get(ctx, first.DaftarKiID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.DocumentURL)
}

func TestUserAttachesOnlyOwnUpload(t *testing.T) {
	ctx := context.Background()
	svc, docs, _ := setup(t)
	user := helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleUser}

	adminKey := upload(t, docs, "milik-admin.pdf")
	_, err := svc.Create(ctx, user, request(adminKey, constants.KiMerek, "3/14/2025"))
	assert.ErrorIs(t, err, helper.ErrForbidden)

	own, err := docs.Upload(ctx, user, "milik-user.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, user, request(own.DocumentKey, constants.KiMerek, "3/14/2025"))
	require.NoError(t, err)
}
