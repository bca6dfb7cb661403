package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
	authHelper "kiadmin_backend/internals/features/users/auth/helper"
	"kiadmin_backend/internals/features/users/user/model"
	"kiadmin_backend/internals/helpers/logger"
)

type UserSeed struct {
	Name     string `yaml:"name"`
	UserName string `yaml:"user_name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	// Instansi: nama instansi (harus sudah di-seed).
	Instansi string `yaml:"instansi"`
}

// SeedUsers menambah user yang belum ada (dicek dari email). Mengembalikan jumlah yang dibuat.
func SeedUsers(ctx context.Context, db *gorm.DB, inputs []UserSeed) (int, error) {
	log := logger.L()
	created := 0
	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.Email))
		var existing model.UserModel
		err := db.WithContext(ctx).Where("email = ? OR user_name = ?", email, data.UserName).First(&existing).Error
		if err == nil {
			log.Info("ℹ️ User sudah ada, dilewati", "email", email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			return created, err
		}
		role := strings.ToLower(strings.TrimSpace(data.Role))
		if role == "" {
			role = "user"
		}
		newUser := model.UserModel{
			Name:     data.Name,
			UserName: data.UserName,
			Email:    email,
			Password: hashedPassword,
			Role:     role,
			IsActive: true,
		}
		if data.Instansi != "" {
			var inst instansiModel.InstansiModel
			if err := db.WithContext(ctx).Where("instansi_name = ?", data.Instansi).First(&inst).Error; err != nil {
				log.Warn("⚠️ Instansi user tidak ditemukan, dikosongkan", "instansi", data.Instansi)
			} else {
				newUser.InstansiID = &inst.InstansiID
			}
		}

		if err := db.WithContext(ctx).Create(&newUser).Error; err != nil {
			return created, err
		}
		created++
		log.Info("✅ Berhasil insert user", "email", email, "role", role)
	}
	return created, nil
}
