// file: internals/features/documents/service/document_service.go
package service

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/documents/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/logger"
	"kiadmin_backend/internals/helpers/metrics"
	"kiadmin_backend/internals/helpers/storage"
)

const defaultMaxBytes = 10 << 20

type DocumentService struct {
	DB       *gorm.DB
	Storage  storage.Provider
	MaxBytes int64
	WebP     storage.WebPOptions
	Dir      string
	Now      func() time.Time
}

func NewDocumentService(db *gorm.DB, st storage.Provider, maxBytes int64) *DocumentService {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &DocumentService{
		DB:       db,
		Storage:  st,
		MaxBytes: maxBytes,
		WebP:     storage.DefaultWebPOptions,
		Dir:      "documents",
		Now:      time.Now,
	}
}

/* =========================================================
   UPLOAD
   ========================================================= */

// Upload menyimpan berkas ke storage lalu mencatatnya. Gambar diubah ke WebP;
// PDF dan dokumen office disimpan apa adanya. Gagal transfer → UploadFailed dan
// tidak ada record yang tertulis.
func (s *DocumentService) Upload(ctx context.Context, actor helperAuth.Identity, filename string, data []byte) (*model.DocumentModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, helper.Validation("Berkas kosong", map[string][]string{"file": {"wajib diisi"}})
	}
	if int64(len(data)) > s.MaxBytes {
		return nil, helper.Validation("Ukuran berkas melebihi batas", map[string][]string{
			"file": {"maksimal " + humanBytes(s.MaxBytes)},
		})
	}

	kind := constants.DetectFileKindFromExt(filename)
	if kind == constants.FileUnknown {
		return nil, helper.Validation("Jenis berkas tidak didukung", map[string][]string{
			"file": {"hanya gambar, PDF, Word, atau Excel"},
		})
	}

	body, name, contentType := data, filename, detectContentType(data, filename)
	converted := false
	if kind == constants.FileImage && storage.IsConvertibleImage(head(data), filename) {
		out, err := storage.ConvertToWebP(data, filename, s.WebP)
		if err != nil {
			return nil, helper.Validation("Gambar tidak bisa dibaca", map[string][]string{"file": {"gambar rusak"}})
		}
		body, name, contentType, converted = out, storage.WebPName(filename), "image/webp", true
	}

	key := storage.BuildObjectKey(s.Dir, name, s.Now())
	if err := s.Storage.Put(ctx, key, bytes.NewReader(body), int64(len(body)), contentType); err != nil {
		metrics.DocumentUploads.WithLabelValues("failed").Inc()
		return nil, helper.UploadFailed("Upload berkas gagal", err)
	}

	doc := &model.DocumentModel{
		DocumentKey:          key,
		DocumentContentType:  contentType,
		DocumentSize:         int64(len(body)),
		DocumentOriginalName: filename,
		DocumentUploadedBy:   actor.UserID,
		DocumentMeta: datatypes.JSONMap{
			"original_size": len(data),
			"converted":     converted,
			"provider":      s.Storage.Name(),
		},
	}
	if err := s.DB.WithContext(ctx).Create(doc).Error; err != nil {
		// record gagal → object jangan dibiarkan menggantung
		if derr := s.Storage.Delete(ctx, key); derr != nil {
			logger.L().Warn("hapus object setelah insert gagal", "key", key, "err", derr)
		}
		metrics.DocumentUploads.WithLabelValues("failed").Inc()
		return nil, helper.Internal("Gagal mencatat berkas", err)
	}
	metrics.DocumentUploads.WithLabelValues("ok").Inc()
	return doc, nil
}

/* =========================================================
   ATTACH / RELEASE
   ========================================================= */

// Attach menandai dokumen terpakai oleh satu record. Dokumen yang sudah ditempel
// ke record lain ditolak, begitu juga upload milik user lain (kecuali admin).
// Dipanggil di dalam transaksi create/update PKS dan daftar KI, hanya saat key berubah.
func (s *DocumentService) Attach(ctx context.Context, tx *gorm.DB, actor helperAuth.Identity, key string) error {
	if !storage.ValidKey(key) {
		return helper.ReferenceMissing("Dokumen tidak ditemukan")
	}
	q := tx.WithContext(ctx).Model(&model.DocumentModel{}).
		Where("document_key = ? AND document_attached_at IS NULL", key)
	if !actor.IsAdmin() {
		q = q.Where("document_uploaded_by = ?", actor.UserID)
	}
	res := q.Update("document_attached_at", s.Now().UTC())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var doc model.DocumentModel
	if err := tx.WithContext(ctx).First(&doc, "document_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ReferenceMissing("Dokumen tidak ditemukan, silakan upload ulang")
		}
		return err
	}
	if doc.DocumentAttachedAt != nil {
		return helper.Conflict("Dokumen sudah dipakai data lain, silakan upload ulang")
	}
	return helper.Forbidden("Dokumen bukan milik Anda")
}

// Release menghapus berkas dari storage dan catatannya. Kegagalan hanya dicatat:
// record induk sudah berubah dan tidak boleh dibatalkan karena storage.
func (s *DocumentService) Release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.Storage.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		logger.L().Warn("hapus berkas gagal", "key", key, "err", err)
	}
	if err := s.DB.WithContext(ctx).Where("document_key = ?", key).Delete(&model.DocumentModel{}).Error; err != nil {
		logger.L().Warn("hapus catatan berkas gagal", "key", key, "err", err)
	}
}

/* =========================================================
   URL
   ========================================================= */

func (s *DocumentService) URL(ctx context.Context, key string) (string, error) {
	if !storage.ValidKey(key) {
		return "", helper.NotFound("Dokumen tidak ditemukan")
	}
	u, err := s.Storage.URL(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", helper.NotFound("Dokumen tidak ditemukan")
		}
		return "", helper.Internal("Gagal membuat URL dokumen", err)
	}
	return u, nil
}

// URLOrEmpty dipakai saat memperkaya list; dokumen hilang → "".
func (s *DocumentService) URLOrEmpty(ctx context.Context, key *string) string {
	if key == nil || *key == "" {
		return ""
	}
	u, err := s.URL(ctx, *key)
	if err != nil {
		return ""
	}
	return u
}

/* =========================================================
   REAPER
   ========================================================= */

// ReapOrphans menghapus upload yang tidak pernah ditempel dan lebih tua dari ttl.
func (s *DocumentService) ReapOrphans(ctx context.Context, ttl time.Duration, batch int) (int, error) {
	if batch <= 0 {
		batch = 200
	}
	threshold := s.Now().UTC().Add(-ttl)

	var rows []model.DocumentModel
	if err := s.DB.WithContext(ctx).
		Where("document_attached_at IS NULL AND document_created_at < ?", threshold).
		Order("document_created_at ASC").
		Limit(batch).
		Find(&rows).Error; err != nil {
		return 0, err
	}

	n := 0
	for _, d := range rows {
		// record dihapus dulu dengan syarat masih yatim; Attach yang menang balapan
		// membuat RowsAffected = 0 dan berkasnya tetap aman.
		res := s.DB.WithContext(ctx).
			Where("document_key = ? AND document_attached_at IS NULL", d.DocumentKey).
			Delete(&model.DocumentModel{})
		if res.Error != nil {
			logger.L().Warn("[DOC-REAPER] hapus record gagal", "key", d.DocumentKey, "err", res.Error)
			continue
		}
		if res.RowsAffected == 0 {
			continue
		}
		if err := s.Storage.Delete(ctx, d.DocumentKey); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			logger.L().Warn("[DOC-REAPER] hapus object gagal", "key", d.DocumentKey, "err", err)
		}
		n++
	}
	metrics.ReapedDocuments.Add(float64(n))
	return n, nil
}

func head(b []byte) []byte {
	if len(b) > 512 {
		return b[:512]
	}
	return b
}

func detectContentType(b []byte, filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return http.DetectContentType(head(b))
}

func humanBytes(n int64) string {
	const mb = 1 << 20
	if n%mb == 0 {
		return strconv.FormatInt(n/mb, 10) + " MB"
	}
	return strconv.FormatInt(n, 10) + " byte"
}
