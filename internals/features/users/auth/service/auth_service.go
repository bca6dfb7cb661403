// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/users/auth/dto"
	authHelper "kiadmin_backend/internals/features/users/auth/helper"
	authRepo "kiadmin_backend/internals/features/users/auth/repository"
	userModel "kiadmin_backend/internals/features/users/user/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/logger"
)

type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := authRepo.FindUserByEmailOrUsername(ctx, s.DB, req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Unauthorized("Identifier atau Password salah")
		}
		return nil, err
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		return nil, helper.Unauthorized("Identifier atau Password salah")
	}
	if !user.IsActive {
		return nil, helper.Forbidden("Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	tok, exp, err := s.Tokens.Issue(*user)
	if err != nil {
		return nil, helper.Internal("Gagal membuat token", err)
	}
	return &dto.LoginResponse{AccessToken: tok, ExpiresAt: exp, User: *user}, nil
}

/* ==========================
   REGISTER
========================== */

// Register membuat akun ber-role user. Akun admin dibuat lewat seed atau menu admin.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*userModel.UserModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := ensureAvailable(ctx, s.DB, req.UserName, req.Email, uuid.Nil); err != nil {
		return nil, err
	}
	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, helper.Internal("Gagal memproses password", err)
	}
	u := &userModel.UserModel{
		Name:        req.Name,
		UserName:    req.UserName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    hashed,
		Role:        constants.RoleUser,
		IsActive:    true,
	}
	if err := authRepo.CreateUser(ctx, s.DB, u); err != nil {
		return nil, helper.FromWriteError(err, "User name atau email sudah terdaftar", "Gagal mendaftarkan user")
	}
	return u, nil
}

// ensureAvailable: user_name dan email harus unik.
func ensureAvailable(ctx context.Context, db *gorm.DB, userName, email string, except uuid.UUID) error {
	userTaken, emailTaken, err := authRepo.IsUsernameOrEmailTaken(ctx, db, userName, email, except)
	if err != nil {
		return err
	}
	if !userTaken && !emailTaken {
		return nil
	}
	fields := map[string][]string{}
	if userTaken {
		fields["user_name"] = []string{"sudah digunakan"}
	}
	if emailTaken {
		fields["email"] = []string{"sudah terdaftar"}
	}
	return &helper.AppError{Kind: helper.KindConflict, Message: "User name atau email sudah terdaftar", Fields: fields}
}

/* ==========================
   LOGOUT / ME / PASSWORD
========================== */

// Logout memasukkan token ke blacklist sampai masa berlakunya habis.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	exp := time.Now().UTC().Add(time.Minute)
	if claims, err := s.Tokens.Parse(rawToken); err == nil && claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time.Add(time.Minute)
	}
	if err := helperAuth.AddToBlacklist(ctx, s.DB, rawToken, string(s.Tokens.Secret), exp); err != nil {
		logger.L().Warn("gagal blacklist token", "err", err)
		return helper.Internal("Logout gagal", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, actor helperAuth.Identity) (*userModel.UserModel, error) {
	if err := actor.Require(); err != nil {
		return nil, err
	}
	u, err := authRepo.FindUserByID(ctx, s.DB, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Unauthorized("User tidak ditemukan")
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, actor helperAuth.Identity, req dto.ChangePasswordRequest) error {
	if err := actor.Require(); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	u, err := s.Me(ctx, actor)
	if err != nil {
		return err
	}
	if err := authHelper.CheckPasswordHash(u.Password, req.CurrentPassword); err != nil {
		return helper.Validation("Password lama salah", map[string][]string{"current_password": {"tidak sesuai"}})
	}
	if req.CurrentPassword == req.NewPassword {
		return helper.Validation("Password baru sama dengan password lama", map[string][]string{"new_password": {"harus berbeda dari password lama"}})
	}
	hashed, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return helper.Internal("Gagal memproses password", err)
	}
	return authRepo.UpdateUserPassword(ctx, s.DB, u.ID, hashed)
}
