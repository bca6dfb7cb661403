// file: internals/features/master/instansi/service/instansi_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kiadmin_backend/internals/features/master/instansi/dto"
	"kiadmin_backend/internals/features/master/instansi/model"
	sentraModel "kiadmin_backend/internals/features/sentra/sentra_ki/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/paging"
)

type InstansiService struct {
	DB       *gorm.DB
	Notifier *livequery.Notifier
}

func NewInstansiService(db *gorm.DB, n *livequery.Notifier) *InstansiService {
	return &InstansiService{DB: db, Notifier: n}
}

func (s *InstansiService) Source() paging.Source[model.InstansiModel] {
	return &paging.GormSource[model.InstansiModel]{
		DB:              s.DB,
		CreatedAtColumn: "instansi_created_at",
		IDColumn:        "instansi_id",
		SearchColumn:    "instansi_name",
		KeyOf: func(m model.InstansiModel) (time.Time, string) {
			return m.Key()
		},
	}
}

func (s *InstansiService) List(ctx context.Context, pq helper.PageQuery) ([]model.InstansiModel, paging.PageInfo, error) {
	return paging.Load(ctx, s.Source(), pq)
}

func (s *InstansiService) ListCursor(ctx context.Context, cq helper.CursorQuery) (paging.PageResult[model.InstansiModel], error) {
	return s.Source().Paginate(ctx, paging.PageRequest{Cursor: cq.Cursor, NumItems: cq.NumItems, Query: cq.Query})
}

// All dipakai untuk dropdown (form Sentra KI).
func (s *InstansiService) All(ctx context.Context) ([]model.InstansiModel, error) {
	var rows []model.InstansiModel
	err := s.DB.WithContext(ctx).
		Order("instansi_name ASC").
		Find(&rows).Error
	return rows, err
}

func (s *InstansiService) Get(ctx context.Context, id uuid.UUID) (*model.InstansiModel, error) {
	var m model.InstansiModel
	if err := s.DB.WithContext(ctx).First(&m, "instansi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("Instansi tidak ditemukan")
		}
		return nil, err
	}
	return &m, nil
}

// CountSentraKi menghitung Sentra KI yang memakai instansi ini.
func (s *InstansiService) CountSentraKi(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&sentraModel.SentraKiModel{}).
		Where("sentra_ki_instansi_id = ?", id).
		Count(&n).Error
	return n, err
}

func (s *InstansiService) Create(ctx context.Context, actor helperAuth.Identity, req dto.CreateInstansiRequest) (*model.InstansiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, helper.Internal("Gagal menambah instansi", err)
	}
	s.Notifier.Changed(ctx, livequery.TopicInstansi, "create")
	return m, nil
}

func (s *InstansiService) Update(ctx context.Context, actor helperAuth.Identity, id uuid.UUID, req dto.UpdateInstansiRequest) (*model.InstansiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, helper.Internal("Gagal memperbarui instansi", err)
	}
	s.Notifier.Changed(ctx, livequery.TopicInstansi, "update")
	return m, nil
}

// Delete ditolak selama masih ada Sentra KI yang merujuk instansi ini.
// Baris instansi dikunci FOR UPDATE supaya create Sentra KI (yang mengunci FOR SHARE)
// tidak bisa menyelip di antara pengecekan dan penghapusan.
func (s *InstansiService) Delete(ctx context.Context, actor helperAuth.Identity, id uuid.UUID) error {
	if err := actor.Require(); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.InstansiModel
		if err := helper.LockForUpdate(tx).First(&m, "instansi_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("Instansi tidak ditemukan")
			}
			return err
		}
		var refs int64
		if err := tx.Model(&sentraModel.SentraKiModel{}).
			Where("sentra_ki_instansi_id = ?", id).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return helper.ReferenceInUse("Instansi masih digunakan oleh Sentra KI")
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return err
	}
	s.Notifier.Changed(ctx, livequery.TopicInstansi, "delete")
	return nil
}
