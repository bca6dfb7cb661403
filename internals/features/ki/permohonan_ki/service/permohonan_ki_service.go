// file: internals/features/ki/permohonan_ki/service/permohonan_ki_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kiadmin_backend/internals/features/dashboard/stats"
	"kiadmin_backend/internals/features/ki/permohonan_ki/dto"
	"kiadmin_backend/internals/features/ki/permohonan_ki/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/paging"
)

const msgDuplicateDate = "Tanggal permohonan sudah tercatat"

type PermohonanKiService struct {
	DB       *gorm.DB
	Loc      *time.Location
	Notifier *livequery.Notifier
}

func NewPermohonanKiService(db *gorm.DB, loc *time.Location, n *livequery.Notifier) *PermohonanKiService {
	if loc == nil {
		loc = time.UTC
	}
	return &PermohonanKiService{DB: db, Loc: loc, Notifier: n}
}

// ownerScope: admin melihat semua, user hanya miliknya.
func ownerScope(actor helperAuth.Identity) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if actor.IsAdmin() {
			return q
		}
		return q.Where("permohonan_ki_user_id = ?", actor.UserID)
	}
}

func (s *PermohonanKiService) Source(actor helperAuth.Identity) paging.Source[model.PermohonanKiModel] {
	return &paging.GormSource[model.PermohonanKiModel]{
		DB:              s.DB,
		CreatedAtColumn: "permohonan_ki_created_at",
		IDColumn:        "permohonan_ki_id",
		SearchColumn:    "permohonan_ki_date",
		Scope:           ownerScope(actor),
		KeyOf: func(m model.PermohonanKiModel) (time.Time, string) {
			return m.Key()
		},
	}
}

/* =========================================================
   READ
   ========================================================= */

func (s *PermohonanKiService) List(ctx context.Context, actor helperAuth.Identity, pq helper.PageQuery) ([]model.PermohonanKiModel, paging.PageInfo, error) {
	if err := actor.Require(); err != nil {
		return nil, paging.PageInfo{}, err
	}
	return paging.Load(ctx, s.Source(actor), pq)
}

func (s *PermohonanKiService) ListCursor(ctx context.Context, actor helperAuth.Identity, cq helper.CursorQuery) (paging.PageResult[model.PermohonanKiModel], error) {
	if err := actor.Require(); err != nil {
		return paging.PageResult[model.PermohonanKiModel]{}, err
	}
	return s.Source(actor).Paginate(ctx, paging.PageRequest{Cursor: cq.Cursor, NumItems: cq.NumItems, Query: cq.Query})
}

func (s *PermohonanKiService) All(ctx context.Context, actor helperAuth.Identity) ([]model.PermohonanKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	var rows []model.PermohonanKiModel
	err := ownerScope(actor)(s.DB.WithContext(ctx)).
		Order("permohonan_ki_date ASC").
		Find(&rows).Error
	return rows, err
}

// Snapshots memuat rekap untuk agregasi. owner nil = semua user (dashboard publik).
func (s *PermohonanKiService) Snapshots(ctx context.Context, owner *uuid.UUID) ([]stats.Snapshot, error) {
	q := s.DB.WithContext(ctx).Model(&model.PermohonanKiModel{})
	if owner != nil {
		q = q.Where("permohonan_ki_user_id = ?", *owner)
	}
	var rows []model.PermohonanKiModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]stats.Snapshot, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToSnapshot(r))
	}
	return out, nil
}

func (s *PermohonanKiService) Get(ctx context.Context, actor helperAuth.Identity, id uuid.UUID) (*model.PermohonanKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	m, err := s.find(s.DB.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(m.PermohonanKiUserID) {
		return nil, helper.Forbidden("Anda tidak memiliki akses ke data ini")
	}
	return m, nil
}

func (s *PermohonanKiService) find(q *gorm.DB, id uuid.UUID) (*model.PermohonanKiModel, error) {
	var m model.PermohonanKiModel
	if err := q.First(&m, "permohonan_ki_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("Data permohonan KI tidak ditemukan")
		}
		return nil, err
	}
	return &m, nil
}

/* =========================================================
   WRITE
   ========================================================= */

func (s *PermohonanKiService) canonical(field, date string) (string, error) {
	d, err := dto.CanonicalDate(date, s.Loc)
	if err != nil {
		return "", helper.Validation("Validasi gagal", map[string][]string{field: {"format tanggal tidak valid"}})
	}
	return d, nil
}

// Create menolak tanggal yang sudah punya snapshot.
func (s *PermohonanKiService) Create(ctx context.Context, actor helperAuth.Identity, req dto.CreatePermohonanKiRequest) (*model.PermohonanKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	date, err := s.canonical("permohonan_ki_date", req.PermohonanKiDate)
	if err != nil {
		return nil, err
	}
	req.PermohonanKiDate = date

	m := req.ToModel(actor.UserID)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := dateTaken(tx, date, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return helper.Conflict(msgDuplicateDate)
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, helper.FromWriteError(err, msgDuplicateDate, "Gagal menambah permohonan KI")
	}
	s.Notifier.Changed(ctx, livequery.TopicPermohonanKi, "create")
	return m, nil
}

// Update hanya menolak tanggal yang dipakai record *lain*; menyimpan tanggal yang sama
// ke record itu sendiri diperbolehkan.
func (s *PermohonanKiService) Update(ctx context.Context, actor helperAuth.Identity, id uuid.UUID, req dto.UpdatePermohonanKiRequest) (*model.PermohonanKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.PermohonanKiDate != nil {
		d, err := s.canonical("permohonan_ki_date", *req.PermohonanKiDate)
		if err != nil {
			return nil, err
		}
		req.PermohonanKiDate = &d
	}

	var m *model.PermohonanKiModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := s.find(helper.LockForUpdate(tx), id)
		if err != nil {
			return err
		}
		if !actor.CanModify(found.PermohonanKiUserID) {
			return helper.Forbidden("Anda tidak memiliki akses ke data ini")
		}
		if req.PermohonanKiDate != nil {
			taken, err := dateTaken(tx, *req.PermohonanKiDate, id)
			if err != nil {
				return err
			}
			if taken {
				return helper.Conflict(msgDuplicateDate)
			}
		}
		req.ApplyToModel(found)
		m = found
		return tx.Save(found).Error
	})
	if err != nil {
		return nil, helper.FromWriteError(err, msgDuplicateDate, "Gagal memperbarui permohonan KI")
	}
	s.Notifier.Changed(ctx, livequery.TopicPermohonanKi, "update")
	return m, nil
}

func (s *PermohonanKiService) Delete(ctx context.Context, actor helperAuth.Identity, id uuid.UUID) error {
	if err := actor.Require(); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := s.find(helper.LockForUpdate(tx), id)
		if err != nil {
			return err
		}
		if !actor.CanModify(m.PermohonanKiUserID) {
			return helper.Forbidden("Anda tidak memiliki akses ke data ini")
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return err
	}
	s.Notifier.Changed(ctx, livequery.TopicPermohonanKi, "delete")
	return nil
}

// dateTaken: apakah tanggal sudah dipakai record selain except.
func dateTaken(tx *gorm.DB, date string, except uuid.UUID) (bool, error) {
	q := tx.Model(&model.PermohonanKiModel{}).Where("permohonan_ki_date = ?", date)
	if except != uuid.Nil {
		q = q.Where("permohonan_ki_id <> ?", except)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
