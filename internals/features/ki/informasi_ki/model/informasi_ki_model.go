// file: internals/features/ki/informasi_ki/model/informasi_ki_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InformasiKiModel: kegiatan sosialisasi / informasi KI.
type InformasiKiModel struct {
	InformasiKiID          uuid.UUID `gorm:"type:uuid;primaryKey;column:informasi_ki_id" json:"informasi_ki_id"`
	InformasiKiName        string    `gorm:"type:varchar(255);not null;column:informasi_ki_name" json:"informasi_ki_name"`
	InformasiKiDate        string    `gorm:"type:varchar(40);not null;column:informasi_ki_date" json:"informasi_ki_date"`
	InformasiKiDescription string    `gorm:"type:text;not null;column:informasi_ki_description" json:"informasi_ki_description"`
	InformasiKiUserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_informasi_ki_user;column:informasi_ki_user_id" json:"informasi_ki_user_id"`

	InformasiKiCreatedAt time.Time `gorm:"column:informasi_ki_created_at;not null;autoCreateTime;index:idx_informasi_ki_keyset,priority:1" json:"informasi_ki_created_at"`
	InformasiKiUpdatedAt time.Time `gorm:"column:informasi_ki_updated_at;not null;autoUpdateTime" json:"informasi_ki_updated_at"`
}

func (InformasiKiModel) TableName() string { return "informasi_ki" }

func (m *InformasiKiModel) BeforeCreate(tx *gorm.DB) error {
	if m.InformasiKiID == uuid.Nil {
		m.InformasiKiID = uuid.New()
	}
	return nil
}

func (m InformasiKiModel) Key() (time.Time, string) {
	return m.InformasiKiCreatedAt, m.InformasiKiID.String()
}
