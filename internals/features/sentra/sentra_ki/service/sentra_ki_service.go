// file: internals/features/sentra/sentra_ki/service/sentra_ki_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kiadmin_backend/internals/constants"
	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
	pksModel "kiadmin_backend/internals/features/sentra/pks/model"
	"kiadmin_backend/internals/features/sentra/sentra_ki/dto"
	"kiadmin_backend/internals/features/sentra/sentra_ki/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/displaycode"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/paging"
)

type SentraKiService struct {
	DB       *gorm.DB
	Notifier *livequery.Notifier
}

func NewSentraKiService(db *gorm.DB, n *livequery.Notifier) *SentraKiService {
	return &SentraKiService{DB: db, Notifier: n}
}

func withInstansi(q *gorm.DB) *gorm.DB { return q.Preload("Instansi") }

func (s *SentraKiService) Source() paging.Source[model.SentraKiModel] {
	return &paging.GormSource[model.SentraKiModel]{
		DB:              s.DB,
		CreatedAtColumn: "sentra_ki_created_at",
		IDColumn:        "sentra_ki_id",
		SearchColumn:    "sentra_ki_name",
		Scope:           withInstansi,
		KeyOf: func(m model.SentraKiModel) (time.Time, string) {
			return m.Key()
		},
	}
}

func (s *SentraKiService) List(ctx context.Context, pq helper.PageQuery) ([]model.SentraKiModel, paging.PageInfo, error) {
	return paging.Load(ctx, s.Source(), pq)
}

func (s *SentraKiService) ListCursor(ctx context.Context, cq helper.CursorQuery) (paging.PageResult[model.SentraKiModel], error) {
	return s.Source().Paginate(ctx, paging.PageRequest{Cursor: cq.Cursor, NumItems: cq.NumItems, Query: cq.Query})
}

func (s *SentraKiService) All(ctx context.Context) ([]model.SentraKiModel, error) {
	var rows []model.SentraKiModel
	err := withInstansi(s.DB.WithContext(ctx)).
		Order("sentra_ki_custom_id ASC").
		Find(&rows).Error
	return rows, err
}

func (s *SentraKiService) Get(ctx context.Context, id uuid.UUID) (*model.SentraKiModel, error) {
	var m model.SentraKiModel
	if err := withInstansi(s.DB.WithContext(ctx)).First(&m, "sentra_ki_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("Sentra KI tidak ditemukan")
		}
		return nil, err
	}
	return &m, nil
}

// ensureInstansi memastikan instansi ada dan mengunci barisnya sampai transaksi selesai.
func ensureInstansi(tx *gorm.DB, id uuid.UUID) (*instansiModel.InstansiModel, error) {
	var in instansiModel.InstansiModel
	if err := helper.LockForShare(tx).First(&in, "instansi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ReferenceMissing("Instansi yang dipilih tidak ditemukan")
		}
		return nil, err
	}
	return &in, nil
}

func seedCustomIDs(tx *gorm.DB) ([]string, error) {
	var codes []string
	err := tx.Model(&model.SentraKiModel{}).Pluck("sentra_ki_custom_id", &codes).Error
	return codes, err
}

func (s *SentraKiService) Create(ctx context.Context, actor helperAuth.Identity, req dto.CreateSentraKiRequest) (*model.SentraKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		in, err := ensureInstansi(tx, m.SentraKiInstansiID)
		if err != nil {
			return err
		}
		code, err := displaycode.Next(ctx, tx, constants.PrefixSentraKi, seedCustomIDs)
		if err != nil {
			return err
		}
		m.SentraKiCustomID = code
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		m.Instansi = in
		return nil
	})
	if err != nil {
		return nil, helper.FromWriteError(err, "Kode Sentra KI bentrok, silakan coba lagi", "Gagal menambah Sentra KI")
	}
	s.Notifier.Changed(ctx, livequery.TopicSentraKi, "create")
	return m, nil
}

func (s *SentraKiService) Update(ctx context.Context, actor helperAuth.Identity, id uuid.UUID, req dto.UpdateSentraKiRequest) (*model.SentraKiModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var m model.SentraKiModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := helper.LockForUpdate(tx).First(&m, "sentra_ki_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("Sentra KI tidak ditemukan")
			}
			return err
		}
		req.ApplyToModel(&m)
		in, err := ensureInstansi(tx, m.SentraKiInstansiID)
		if err != nil {
			return err
		}
		m.Instansi = nil
		if err := tx.Omit("Instansi").Save(&m).Error; err != nil {
			return err
		}
		m.Instansi = in
		return nil
	})
	if err != nil {
		return nil, helper.FromWriteError(err, "Kode Sentra KI bentrok, silakan coba lagi", "Gagal memperbarui Sentra KI")
	}
	s.Notifier.Changed(ctx, livequery.TopicSentraKi, "update")
	return &m, nil
}

// Delete ditolak selama masih ada PKS yang merujuk Sentra KI ini.
func (s *SentraKiService) Delete(ctx context.Context, actor helperAuth.Identity, id uuid.UUID) error {
	if err := actor.Require(); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.SentraKiModel
		if err := helper.LockForUpdate(tx).First(&m, "sentra_ki_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("Sentra KI tidak ditemukan")
			}
			return err
		}
		var refs int64
		if err := tx.Model(&pksModel.PksModel{}).Where("pks_sentra_ki_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return helper.ReferenceInUse("Sentra KI masih digunakan oleh PKS")
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return err
	}
	s.Notifier.Changed(ctx, livequery.TopicSentraKi, "delete")
	return nil
}
