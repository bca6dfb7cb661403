// file: internals/features/ki/daftar_ki/service/daftar_ki_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kiadmin_backend/internals/features/dashboard/stats"
	"kiadmin_backend/internals/features/ki/daftar_ki/dto"
	"kiadmin_backend/internals/features/ki/daftar_ki/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/paging"
)

type Attachments interface {
	Attach(ctx context.Context, tx *gorm.DB, actor helperAuth.Identity, key string) error
	Release(ctx context.Context, key string)
	URLOrEmpty(ctx context.Context, key *string) string
}

type DaftarKiService struct {
	DB       *gorm.DB
	Docs     Attachments
	Notifier *livequery.Notifier
}

func NewDaftarKiService(db *gorm.DB, docs Attachments, n *livequery.Notifier) *DaftarKiService {
	return &DaftarKiService{DB: db, Docs: docs, Notifier: n}
}

func (s *DaftarKiService) Source() paging.Source[model.DaftarKiModel] {
	return &paging.GormSource[model.DaftarKiModel]{
		DB:              s.DB,
		CreatedAtColumn: "daftar_ki_created_at",
		IDColumn:        "daftar_ki_id",
		SearchColumn:    "daftar_ki_name",
		KeyOf: func(m model.DaftarKiModel) (time.Time, string) {
			return m.Key()
		},
	}
}

func (s *DaftarKiService) enrich(ctx context.Context, rows []model.DaftarKiModel) []dto.DaftarKiResponse {
	out := make([]dto.DaftarKiResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.DaftarKiResponse{
			DaftarKiModel: &rows[i],
			DocumentURL:   s.Docs.URLOrEmpty(ctx, rows[i].DaftarKiDocument),
		})
	}
	return out
}

func (s *DaftarKiService) List(ctx context.Context, pq helper.PageQuery) ([]dto.DaftarKiResponse, paging.PageInfo, error) {
	rows, info, err := paging.Load(ctx, s.Source(), pq)
	if err != nil {
		return nil, info, err
	}
	return s.enrich(ctx, rows), info, nil
}

func (s *DaftarKiService) ListCursor(ctx context.Context, cq helper.CursorQuery) (paging.PageResult[dto.DaftarKiResponse], error) {
	res, err := s.Source().Paginate(ctx, paging.PageRequest{Cursor: cq.Cursor, NumItems: cq.NumItems, Query: cq.Query})
	if err != nil {
		return paging.PageResult[dto.DaftarKiResponse]{}, err
	}
	return paging.PageResult[dto.DaftarKiResponse]{
		Page:           s.enrich(ctx, res.Page),
		ContinueCursor: res.ContinueCursor,
		IsDone:         res.IsDone,
	}, nil
}

// All: seluruh daftar KI (opsional disaring nama), tanpa URL dokumen.
func (s *DaftarKiService) All(ctx context.Context, query string) ([]model.DaftarKiModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.DaftarKiModel{})
	if term := helper.NormalizeSearchTerm(query); term != "" {
		q = q.Where("LOWER(daftar_ki_name) LIKE ? ESCAPE '\\'", helper.LikePattern(term))
	}
	var rows []model.DaftarKiModel
	err := q.Order("daftar_ki_created_at ASC").Find(&rows).Error
	return rows, err
}

// Filings memuat pasangan (jenis, tanggal daftar) untuk agregasi dashboard.
func (s *DaftarKiService) Filings(ctx context.Context) ([]stats.Filing, error) {
	var rows []struct {
		Type string `gorm:"column:daftar_ki_type"`
		Date string `gorm:"column:daftar_ki_registration_date"`
	}
	if err := s.DB.WithContext(ctx).Model(&model.DaftarKiModel{}).
		Select("daftar_ki_type, daftar_ki_registration_date").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]stats.Filing, 0, len(rows))
	for _, r := range rows {
		out = append(out, stats.Filing{Type: r.Type, RegistrationDate: r.Date})
	}
	return out, nil
}

func (s *DaftarKiService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.DaftarKiModel{}).Count(&n).Error
	return n, err
}

func (s *DaftarKiService) Get(ctx context.Context, id uuid.UUID) (*dto.DaftarKiResponse, error) {
	var m model.DaftarKiModel
	if err := s.DB.WithContext(ctx).First(&m, "daftar_ki_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("Data KI tidak ditemukan")
		}
		return nil, err
	}
	return &dto.DaftarKiResponse{DaftarKiModel: &m, DocumentURL: s.Docs.URLOrEmpty(ctx, m.DaftarKiDocument)}, nil
}

/* =========================================================
   WRITE
   ========================================================= */

func (s *DaftarKiService) Create(ctx context.Context, actor helperAuth.Identity, req dto.CreateDaftarKiRequest) (*dto.DaftarKiResponse, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(actor.UserID)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Docs.Attach(ctx, tx, actor, req.DaftarKiDocument); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, helper.FromWriteError(err, "Data KI bentrok", "Gagal menambah data KI")
	}
	s.Notifier.Changed(ctx, livequery.TopicDaftarKi, "create")
	return &dto.DaftarKiResponse{DaftarKiModel: m, DocumentURL: s.Docs.URLOrEmpty(ctx, m.DaftarKiDocument)}, nil
}

func (s *DaftarKiService) Update(ctx context.Context, actor helperAuth.Identity, id uuid.UUID, req dto.UpdateDaftarKiRequest) (*dto.DaftarKiResponse, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var (
		m        model.DaftarKiModel
		replaced string
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := helper.LockForUpdate(tx).First(&m, "daftar_ki_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("Data KI tidak ditemukan")
			}
			return err
		}
		prevDoc := m.DaftarKiDocument
		replaced = req.ApplyToModel(&m)
		if documentChanged(prevDoc, req.DaftarKiDocument) {
			if err := s.Docs.Attach(ctx, tx, actor, *req.DaftarKiDocument); err != nil {
				return err
			}
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, helper.FromWriteError(err, "Data KI bentrok", "Gagal memperbarui data KI")
	}
	if replaced != "" {
		s.Docs.Release(ctx, replaced)
	}
	s.Notifier.Changed(ctx, livequery.TopicDaftarKi, "update")
	return &dto.DaftarKiResponse{DaftarKiModel: &m, DocumentURL: s.Docs.URLOrEmpty(ctx, m.DaftarKiDocument)}, nil
}

func (s *DaftarKiService) Delete(ctx context.Context, actor helperAuth.Identity, id uuid.UUID) error {
	if err := actor.Require(); err != nil {
		return err
	}
	var doc *string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.DaftarKiModel
		if err := helper.LockForUpdate(tx).First(&m, "daftar_ki_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("Data KI tidak ditemukan")
			}
			return err
		}
		doc = m.DaftarKiDocument
		return tx.Delete(&m).Error
	})
	if err != nil {
		return err
	}
	if doc != nil {
		s.Docs.Release(ctx, *doc)
	}
	s.Notifier.Changed(ctx, livequery.TopicDaftarKi, "delete")
	return nil
}

func documentChanged(current, next *string) bool {
	if next == nil || *next == "" {
		return false
	}
	return current == nil || *current != *next
}
