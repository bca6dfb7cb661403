package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/documents/model"
	"kiadmin_backend/internals/features/documents/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/dbtest"
	"kiadmin_backend/internals/helpers/storage"
)

var uploader = helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleUser}

func newService(t *testing.T) (*service.DocumentService, *storage.MemoryProvider) {
	t.Helper()
	st := storage.NewMemoryProvider()
	return service.NewDocumentService(dbtest.Open(t), st, 1<<20), st
}

func TestUploadStoresPDFAsIs(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)
	body := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

	doc, err := svc.Upload(ctx, uploader, "Perjanjian Kerja Sama.pdf", body)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc.DocumentKey, "documents/"))
	assert.True(t, strings.HasSuffix(doc.DocumentKey, ".pdf"))
	assert.Equal(t, "application/pdf", doc.DocumentContentType)
	assert.EqualValues(t, len(body), doc.DocumentSize)
	assert.Nil(t, doc.DocumentAttachedAt)
	assert.True(t, st.Has(doc.DocumentKey))

	u, err := svc.URL(ctx, doc.DocumentKey)
	require.NoError(t, err)
	assert.Equal(t, "memory://"+doc.DocumentKey, u)
}

func TestUploadRejects(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)

	_, err := svc.Upload(ctx, helperAuth.Identity{}, "a.pdf", []byte("x"))
	assert.ErrorIs(t, err, helper.ErrUnauthorized)

	_, err = svc.Upload(ctx, uploader, "a.pdf", nil)
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Upload(ctx, uploader, "skrip.exe", []byte("MZ"))
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Upload(ctx, uploader, "besar.pdf", make([]byte, (1<<20)+1))
	assert.ErrorIs(t, err, helper.ErrValidation)

	assert.Zero(t, st.Len())
}

func TestUploadStorageFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryProvider()
	st.FailPut = errors.New("bucket tidak bisa dihubungi")
	db := dbtest.Open(t)
	svc := service.NewDocumentService(db, st, 0)

	_, err := svc.Upload(ctx, uploader, "pks.pdf", []byte("%PDF-1.4"))
	require.ErrorIs(t, err, helper.ErrUploadFailed)

	var n int64
	require.NoError(t, db.Model(&model.DocumentModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAttachAndRelease(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)

	doc, err := svc.Upload(ctx, uploader, "sertifikat.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	require.NoError(t, svc.Attach(ctx, svc.DB, uploader, doc.DocumentKey))

	var got model.DocumentModel
	require.NoError(t, svc.DB.First(&got, "document_key = ?", doc.DocumentKey).Error)
	assert.NotNil(t, got.DocumentAttachedAt)

	err = svc.Attach(ctx, svc.DB, uploader, "documents/2026/01/tidak-ada.pdf")
	assert.ErrorIs(t, err, helper.ErrReferenceMissing)
	err = svc.Attach(ctx, svc.DB, uploader, "../etc/passwd")
	assert.ErrorIs(t, err, helper.ErrReferenceMissing)

	svc.Release(ctx, doc.DocumentKey)
	assert.False(t, st.Has(doc.DocumentKey))
	assert.Equal(t, "", svc.URLOrEmpty(ctx, &doc.DocumentKey))

	_, err = svc.URL(ctx, doc.DocumentKey)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestReapOrphansKeepsAttached(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)

	orphan, err := svc.Upload(ctx, uploader, "yatim.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	used, err := svc.Upload(ctx, uploader, "dipakai.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, svc.Attach(ctx, svc.DB, uploader, used.DocumentKey))

	// belum lewat ttl
	n, err := svc.ReapOrphans(ctx, time.Hour, 10)
	require.NoError(t, err)
	assert.Zero(t, n)

	svc.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	n, err = svc.ReapOrphans(ctx, time.Hour, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.False(t, st.Has(orphan.DocumentKey))
	assert.True(t, st.Has(used.DocumentKey))
}

func TestAttachIsSingleUseAndOwned(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)
	other := helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleUser}
	admin := helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleAdmin}

	doc, err := svc.Upload(ctx, uploader, "pks.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	err = svc.Attach(ctx, svc.DB, other, doc.DocumentKey)
	assert.ErrorIs(t, err, helper.ErrForbidden)

	require.NoError(t, svc.Attach(ctx, svc.DB, uploader, doc.DocumentKey))

	// sudah ditempel: siapa pun tidak boleh memakainya lagi
	err = svc.Attach(ctx, svc.DB, uploader, doc.DocumentKey)
	assert.ErrorIs(t, err, helper.ErrConflict)
	err = svc.Attach(ctx, svc.DB, admin, doc.DocumentKey)
	assert.ErrorIs(t, err, helper.ErrConflict)

	// admin boleh menempel upload user lain yang belum terpakai
	fresh, err := svc.Upload(ctx, uploader, "lampiran.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, svc.Attach(ctx, svc.DB, admin, fresh.DocumentKey))

	assert.True(t, st.Has(doc.DocumentKey))
}
