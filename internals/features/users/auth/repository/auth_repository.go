// file: internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "kiadmin_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

// FindUserByEmailOrUsername: identifier boleh email atau user_name (email case-insensitive).
func FindUserByEmailOrUsername(ctx context.Context, db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Where("email = ? OR user_name = ?", strings.ToLower(identifier), identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, user *userModel.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
}

// IsUsernameOrEmailTaken: except = user yang sedang diubah (uuid.Nil saat register).
func IsUsernameOrEmailTaken(ctx context.Context, db *gorm.DB, userName, email string, except uuid.UUID) (userTaken, emailTaken bool, err error) {
	var rows []userModel.UserModel
	q := db.WithContext(ctx).Select("id", "user_name", "email").
		Where("user_name = ? OR email = ?", userName, strings.ToLower(email))
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	if err = q.Find(&rows).Error; err != nil {
		return false, false, err
	}
	for _, r := range rows {
		if r.UserName == userName {
			userTaken = true
		}
		if strings.EqualFold(r.Email, email) {
			emailTaken = true
		}
	}
	return userTaken, emailTaken, nil
}
