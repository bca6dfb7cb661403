// file: internals/features/users/user/service/user_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
	authHelper "kiadmin_backend/internals/features/users/auth/helper"
	authRepo "kiadmin_backend/internals/features/users/auth/repository"
	"kiadmin_backend/internals/features/users/user/dto"
	"kiadmin_backend/internals/features/users/user/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/paging"
)

// UserService: manajemen akun oleh admin.
type UserService struct {
	DB       *gorm.DB
	Notifier *livequery.Notifier
}

func NewUserService(db *gorm.DB, n *livequery.Notifier) *UserService {
	return &UserService{DB: db, Notifier: n}
}

func (s *UserService) Source() paging.Source[model.UserModel] {
	return &paging.GormSource[model.UserModel]{
		DB:              s.DB,
		CreatedAtColumn: "created_at",
		IDColumn:        "id",
		SearchColumn:    "name || ' ' || user_name || ' ' || email",
		KeyOf: func(m model.UserModel) (time.Time, string) {
			return m.Key()
		},
	}
}

func (s *UserService) List(ctx context.Context, pq helper.PageQuery) ([]model.UserModel, paging.PageInfo, error) {
	return paging.Load(ctx, s.Source(), pq)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	u, err := authRepo.FindUserByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("User tidak ditemukan")
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) ensureInstansi(ctx context.Context, id *uuid.UUID) error {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&instansiModel.InstansiModel{}).
		Where("instansi_id = ?", *id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.ReferenceMissing("Instansi tidak ditemukan")
	}
	return nil
}

func (s *UserService) ensureAvailable(ctx context.Context, userName, email string, except uuid.UUID) error {
	userTaken, emailTaken, err := authRepo.IsUsernameOrEmailTaken(ctx, s.DB, userName, email, except)
	if err != nil {
		return err
	}
	fields := map[string][]string{}
	if userTaken {
		fields["user_name"] = []string{"sudah digunakan"}
	}
	if emailTaken {
		fields["email"] = []string{"sudah terdaftar"}
	}
	if len(fields) > 0 {
		return &helper.AppError{Kind: helper.KindConflict, Message: "User name atau email sudah terdaftar", Fields: fields}
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, actor helperAuth.Identity, req dto.CreateUserRequest) (*model.UserModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := s.ensureInstansi(ctx, req.InstansiID); err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, req.UserName, req.Email, uuid.Nil); err != nil {
		return nil, err
	}
	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, helper.Internal("Gagal memproses password", err)
	}
	u := req.ToModel(hashed)
	if err := authRepo.CreateUser(ctx, s.DB, u); err != nil {
		return nil, helper.FromWriteError(err, "User name atau email sudah terdaftar", "Gagal menambah user")
	}
	s.Notifier.Changed(ctx, livequery.TopicUsers, "create")
	return u, nil
}

func (s *UserService) Update(ctx context.Context, actor helperAuth.Identity, id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if id == actor.UserID {
		// admin tidak boleh mengunci dirinya sendiri
		if req.IsActive != nil && !*req.IsActive {
			return nil, helper.Validation("Tidak dapat menonaktifkan akun sendiri", map[string][]string{"is_active": {"tidak dapat menonaktifkan akun sendiri"}})
		}
		if req.Role != nil && *req.Role != u.Role {
			return nil, helper.Validation("Tidak dapat mengubah role akun sendiri", map[string][]string{"role": {"tidak dapat mengubah role akun sendiri"}})
		}
	}
	if err := s.ensureInstansi(ctx, req.InstansiID); err != nil {
		return nil, err
	}
	req.ApplyToModel(u)
	if err := s.ensureAvailable(ctx, u.UserName, u.Email, u.ID); err != nil {
		return nil, err
	}
	if req.Password != nil {
		hashed, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return nil, helper.Internal("Gagal memproses password", err)
		}
		u.Password = hashed
	}
	if err := s.DB.WithContext(ctx).Save(u).Error; err != nil {
		return nil, helper.FromWriteError(err, "User name atau email sudah terdaftar", "Gagal memperbarui user")
	}
	s.Notifier.Changed(ctx, livequery.TopicUsers, "update")
	return u, nil
}

// Remove: admin tidak bisa menghapus akunnya sendiri.
func (s *UserService) Remove(ctx context.Context, actor helperAuth.Identity, id uuid.UUID) error {
	if err := actor.Require(); err != nil {
		return err
	}
	if id == actor.UserID {
		return helper.Forbidden("Tidak dapat menghapus akun sendiri")
	}
	res := s.DB.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Internal("Gagal menghapus user", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.NotFound("User tidak ditemukan")
	}
	s.Notifier.Changed(ctx, livequery.TopicUsers, "delete")
	return nil
}
