// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users.
type UserModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name        string     `gorm:"size:160;not null;column:name" json:"name"`
	UserName    string     `gorm:"size:50;not null;uniqueIndex:uq_users_user_name;column:user_name" json:"user_name"`
	Email       string     `gorm:"size:255;not null;uniqueIndex:uq_users_email;column:email" json:"email"`
	PhoneNumber *string    `gorm:"size:32;column:phone_number" json:"phone_number,omitempty"`
	Password    string     `gorm:"not null;column:password" json:"-"`
	Role        string     `gorm:"type:varchar(20);not null;default:'user';column:role" json:"role"`
	InstansiID  *uuid.UUID `gorm:"type:uuid;index;column:instansi_id" json:"instansi_id,omitempty"`
	IsActive    bool       `gorm:"not null;column:is_active" json:"is_active"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;autoCreateTime;index:idx_users_keyset,priority:1" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = "user"
	}
	return nil
}

func (u UserModel) Key() (time.Time, string) {
	return u.CreatedAt, u.ID.String()
}
