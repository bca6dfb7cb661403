// file: internals/features/sentra/pks/service/pks_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/dashboard/status"
	"kiadmin_backend/internals/features/sentra/pks/dto"
	"kiadmin_backend/internals/features/sentra/pks/model"
	sentraModel "kiadmin_backend/internals/features/sentra/sentra_ki/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/displaycode"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/paging"
)

// Attachments adalah bagian layanan dokumen yang dipakai PKS dan daftar KI.
type Attachments interface {
	Attach(ctx context.Context, tx *gorm.DB, actor helperAuth.Identity, key string) error
	Release(ctx context.Context, key string)
	URLOrEmpty(ctx context.Context, key *string) string
}

type PksService struct {
	DB         *gorm.DB
	Docs       Attachments
	Classifier status.Classifier
	Notifier   *livequery.Notifier
}

func NewPksService(db *gorm.DB, docs Attachments, cls status.Classifier, n *livequery.Notifier) *PksService {
	return &PksService{DB: db, Docs: docs, Classifier: cls, Notifier: n}
}

func withRelations(q *gorm.DB) *gorm.DB { return q.Preload("SentraKi.Instansi") }

func (s *PksService) Source() paging.Source[model.PksModel] {
	return &paging.GormSource[model.PksModel]{
		DB:              s.DB,
		CreatedAtColumn: "pks_created_at",
		IDColumn:        "pks_id",
		SearchColumn:    "pks_no",
		Scope:           withRelations,
		KeyOf: func(m model.PksModel) (time.Time, string) {
			return m.Key()
		},
	}
}

/* =========================================================
   READ
   ========================================================= */

// Enrich menambahkan instansi, URL dokumen, dan status ke setiap baris.
func (s *PksService) Enrich(ctx context.Context, rows []model.PksModel) []dto.PksResponse {
	return dto.FromModels(rows, s.Classifier, func(key *string) string {
		return s.Docs.URLOrEmpty(ctx, key)
	})
}

func (s *PksService) List(ctx context.Context, pq helper.PageQuery) ([]dto.PksResponse, paging.PageInfo, error) {
	rows, info, err := paging.Load(ctx, s.Source(), pq)
	if err != nil {
		return nil, info, err
	}
	return s.Enrich(ctx, rows), info, nil
}

func (s *PksService) ListCursor(ctx context.Context, cq helper.CursorQuery) (paging.PageResult[dto.PksResponse], error) {
	res, err := s.Source().Paginate(ctx, paging.PageRequest{Cursor: cq.Cursor, NumItems: cq.NumItems, Query: cq.Query})
	if err != nil {
		return paging.PageResult[dto.PksResponse]{}, err
	}
	return paging.PageResult[dto.PksResponse]{
		Page:           s.Enrich(ctx, res.Page),
		ContinueCursor: res.ContinueCursor,
		IsDone:         res.IsDone,
	}, nil
}

// All mengembalikan seluruh PKS lengkap dengan status (dashboard Sentra KI).
func (s *PksService) All(ctx context.Context, withURL bool) ([]dto.PksResponse, error) {
	var rows []model.PksModel
	if err := withRelations(s.DB.WithContext(ctx)).
		Order("pks_no ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if !withURL {
		return dto.FromModels(rows, s.Classifier, nil), nil
	}
	return s.Enrich(ctx, rows), nil
}

func (s *PksService) Get(ctx context.Context, id uuid.UUID) (*dto.PksResponse, error) {
	var m model.PksModel
	if err := withRelations(s.DB.WithContext(ctx)).First(&m, "pks_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("PKS tidak ditemukan")
		}
		return nil, err
	}
	resp := dto.FromModel(&m, s.Classifier, func(key *string) string { return s.Docs.URLOrEmpty(ctx, key) })
	return &resp, nil
}

// StatusSummary: kartu Total / Aktif / Akan Habis / Kedaluwarsa.
func (s *PksService) StatusSummary(ctx context.Context) (status.Summary, error) {
	var dates []string
	if err := s.DB.WithContext(ctx).Model(&model.PksModel{}).
		Pluck("pks_expiry_date_to", &dates).Error; err != nil {
		return status.Summary{}, err
	}
	return s.Classifier.Summarize(dates), nil
}

/* =========================================================
   WRITE
   ========================================================= */

func ensureSentraKi(tx *gorm.DB, id uuid.UUID) error {
	var sk sentraModel.SentraKiModel
	err := helper.LockForShare(tx).Select("sentra_ki_id").First(&sk, "sentra_ki_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.ReferenceMissing("Sentra KI yang dipilih tidak ditemukan")
	}
	return err
}

func seedPksNumbers(tx *gorm.DB) ([]string, error) {
	var codes []string
	err := tx.Model(&model.PksModel{}).Pluck("pks_no", &codes).Error
	return codes, err
}

func (s *PksService) Create(ctx context.Context, actor helperAuth.Identity, req dto.CreatePksRequest) (*dto.PksResponse, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := dto.ValidateWindow(req.PksExpiryDateFrom, req.PksExpiryDateTo, s.Classifier.Loc); err != nil {
		return nil, err
	}

	m := req.ToModel(actor.UserID)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSentraKi(tx, m.PksSentraKiID); err != nil {
			return err
		}
		if err := s.Docs.Attach(ctx, tx, actor, req.PksDocument); err != nil {
			return err
		}
		no, err := displaycode.Next(ctx, tx, constants.PrefixPks, seedPksNumbers)
		if err != nil {
			return err
		}
		m.PksNo = no
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, helper.FromWriteError(err, "Nomor PKS bentrok, silakan coba lagi", "Gagal menambah PKS")
	}
	s.Notifier.Changed(ctx, livequery.TopicPks, "create")
	return s.Get(ctx, m.PksID)
}

// Update menerapkan patch. Bila dokumen diganti, berkas lama dihapus setelah commit.
func (s *PksService) Update(ctx context.Context, actor helperAuth.Identity, id uuid.UUID, req dto.UpdatePksRequest) (*dto.PksResponse, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var replaced string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.PksModel
		if err := helper.LockForUpdate(tx).First(&m, "pks_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("PKS tidak ditemukan")
			}
			return err
		}
		prevDoc := m.PksDocument
		replaced = req.ApplyToModel(&m)
		if err := dto.ValidateWindow(m.PksExpiryDateFrom, m.PksExpiryDateTo, s.Classifier.Loc); err != nil {
			return err
		}
		if req.PksSentraKiID != nil {
			if err := ensureSentraKi(tx, m.PksSentraKiID); err != nil {
				return err
			}
		}
		if documentChanged(prevDoc, req.PksDocument) {
			if err := s.Docs.Attach(ctx, tx, actor, *req.PksDocument); err != nil {
				return err
			}
		}
		return tx.Omit("SentraKi").Save(&m).Error
	})
	if err != nil {
		return nil, helper.FromWriteError(err, "Data PKS bentrok", "Gagal memperbarui PKS")
	}
	if replaced != "" {
		s.Docs.Release(ctx, replaced)
	}
	s.Notifier.Changed(ctx, livequery.TopicPks, "update")
	return s.Get(ctx, id)
}

// Delete menghapus PKS beserta berkas lampirannya.
func (s *PksService) Delete(ctx context.Context, actor helperAuth.Identity, id uuid.UUID) error {
	if err := actor.Require(); err != nil {
		return err
	}
	var doc *string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.PksModel
		if err := helper.LockForUpdate(tx).First(&m, "pks_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("PKS tidak ditemukan")
			}
			return err
		}
		doc = m.PksDocument
		return tx.Delete(&m).Error
	})
	if err != nil {
		return err
	}
	if doc != nil {
		s.Docs.Release(ctx, *doc)
	}
	s.Notifier.Changed(ctx, livequery.TopicPks, "delete")
	return nil
}

// documentChanged: key baru dikirim dan berbeda dari dokumen yang sedang ditempel.
func documentChanged(current, next *string) bool {
	if next == nil || *next == "" {
		return false
	}
	return current == nil || *current != *next
}
