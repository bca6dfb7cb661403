// file: internals/features/ki/informasi_ki/service/informasi_ki_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kiadmin_backend/internals/features/ki/informasi_ki/dto"
	"kiadmin_backend/internals/features/ki/informasi_ki/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/paging"
)

type InformasiKiService struct {
	DB       *gorm.DB
	Notifier *livequery.Notifier
}

func NewInformasiKiService(db *gorm.DB, n *livequery.Notifier) *InformasiKiService {
	return &InformasiKiService{DB: db, Notifier: n}
}

func ownerScope(actor helperAuth.Identity) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if actor.IsAdmin() {
			return q
		}
		return q.Where("informasi_ki_user_id = ?", actor.UserID)
	}
}

func (s *InformasiKiService) Source(actor helperAuth.Identity) paging.Source[model.InformasiKiModel] {
	return &paging.GormSource[model.InformasiKiModel]{
		DB:              s.DB,
		CreatedAtColumn: "informasi_ki_created_at",
		IDColumn:        "informasi_ki_id",
		SearchColumn:    "informasi_ki_name",
		Scope:           ownerScope(actor),
		KeyOf: func(m model.InformasiKiModel) (time.Time, string) {
			return m.Key()
		},
	}
}

func (s *InformasiKiService) List(ctx context.Context, actor helperAuth.Identity, pq helper.PageQuery) ([]model.InformasiKiModel, paging.PageInfo, error) {
	if err := actor.Require(); err != nil {
		return nil, paging.PageInfo{}, err
	}
	return paging.Load(ctx, s.Source(actor), pq)
}

func (s *InformasiKiService) ListCursor(ctx context.Context, actor helperAuth.Identity, cq helper.CursorQuery) (paging.PageResult[model.InformasiKiModel], error) {
	if err := actor.Require(); err != nil {
		return paging.PageResult[model.InformasiKiModel]{}, err
	}
	return s.Source(actor).Paginate(ctx, paging.PageRequest{Cursor: cq.Cursor, NumItems: cq.NumItems, Query: cq.Query})
}

func (s *InformasiKiService) All(ctx context.Context, actor helperAuth.Identity) ([]model.InformasiKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	var rows []model.InformasiKiModel
	err := ownerScope(actor)(s.DB.WithContext(ctx)).
		Order("informasi_ki_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *InformasiKiService) find(q *gorm.DB, id uuid.UUID) (*model.InformasiKiModel, error) {
	var m model.InformasiKiModel
	if err := q.First(&m, "informasi_ki_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("Informasi KI tidak ditemukan")
		}
		return nil, err
	}
	return &m, nil
}

func (s *InformasiKiService) Get(ctx context.Context, actor helperAuth.Identity, id uuid.UUID) (*model.InformasiKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	m, err := s.find(s.DB.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(m.InformasiKiUserID) {
		return nil, helper.Forbidden("Anda tidak memiliki akses ke data ini")
	}
	return m, nil
}

func (s *InformasiKiService) Create(ctx context.Context, actor helperAuth.Identity, req dto.CreateInformasiKiRequest) (*model.InformasiKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(actor.UserID)
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, helper.Internal("Gagal menambah informasi KI", err)
	}
	s.Notifier.Changed(ctx, livequery.TopicInformasiKi, "create")
	return m, nil
}

func (s *InformasiKiService) Update(ctx context.Context, actor helperAuth.Identity, id uuid.UUID, req dto.UpdateInformasiKiRequest) (*model.InformasiKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	var m *model.InformasiKiModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := s.find(helper.LockForUpdate(tx), id)
		if err != nil {
			return err
		}
		if !actor.CanModify(found.InformasiKiUserID) {
			return helper.Forbidden("Anda tidak memiliki akses ke data ini")
		}
		req.ApplyToModel(found)
		m = found
		return tx.Save(found).Error
	})
	if err != nil {
		return nil, helper.FromWriteError(err, "Informasi KI bentrok", "Gagal memperbarui informasi KI")
	}
	s.Notifier.Changed(ctx, livequery.TopicInformasiKi, "update")
	return m, nil
}

func (s *InformasiKiService) Delete(ctx context.Context, actor helperAuth.Identity, id uuid.UUID) error {
	if err := actor.Require(); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := s.find(helper.LockForUpdate(tx), id)
		if err != nil {
			return err
		}
		if !actor.CanModify(m.InformasiKiUserID) {
			return helper.Forbidden("Anda tidak memiliki akses ke data ini")
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return err
	}
	s.Notifier.Changed(ctx, livequery.TopicInformasiKi, "delete")
	return nil
}
