// file: internals/features/sentra/sentra_ki/model/sentra_ki_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
)

// SentraKiModel: pusat layanan KI daerah (Sentra KI) milik satu instansi.
type SentraKiModel struct {
	SentraKiID       uuid.UUID `gorm:"type:uuid;primaryKey;column:sentra_ki_id" json:"sentra_ki_id"`
	SentraKiCustomID string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_sentra_ki_custom_id;column:sentra_ki_custom_id" json:"sentra_ki_custom_id"`
	SentraKiName     string    `gorm:"type:varchar(200);not null;column:sentra_ki_name" json:"sentra_ki_name"`

	SentraKiInstansiID uuid.UUID `gorm:"type:uuid;not null;index:idx_sentra_ki_instansi;column:sentra_ki_instansi_id" json:"sentra_ki_instansi_id"`

	SentraKiAddress   string `gorm:"type:text;not null;column:sentra_ki_address" json:"sentra_ki_address"`
	SentraKiCity      string `gorm:"type:varchar(120);not null;column:sentra_ki_city" json:"sentra_ki_city"`
	SentraKiLatitude  string `gorm:"type:varchar(32);not null;column:sentra_ki_latitude" json:"sentra_ki_latitude"`
	SentraKiLongitude string `gorm:"type:varchar(32);not null;column:sentra_ki_longitude" json:"sentra_ki_longitude"`

	SentraKiPicName  string `gorm:"type:varchar(160);not null;column:sentra_ki_pic_name" json:"sentra_ki_pic_name"`
	SentraKiPicPhone string `gorm:"type:varchar(32);not null;column:sentra_ki_pic_phone" json:"sentra_ki_pic_phone"`
	SentraKiPicEmail string `gorm:"type:varchar(160);not null;column:sentra_ki_pic_email" json:"sentra_ki_pic_email"`
	SentraKiPicID    string `gorm:"type:varchar(64);not null;column:sentra_ki_pic_id" json:"sentra_ki_pic_id"`

	SentraKiCreatedAt time.Time `gorm:"column:sentra_ki_created_at;not null;autoCreateTime;index:idx_sentra_ki_keyset,priority:1" json:"sentra_ki_created_at"`
	SentraKiUpdatedAt time.Time `gorm:"column:sentra_ki_updated_at;not null;autoUpdateTime" json:"sentra_ki_updated_at"`

	Instansi *instansiModel.InstansiModel `gorm:"foreignKey:SentraKiInstansiID;references:InstansiID" json:"instansi,omitempty"`
}

func (SentraKiModel) TableName() string { return "sentra_ki" }

func (m *SentraKiModel) BeforeCreate(tx *gorm.DB) error {
	if m.SentraKiID == uuid.Nil {
		m.SentraKiID = uuid.New()
	}
	return nil
}

func (m SentraKiModel) Key() (time.Time, string) {
	return m.SentraKiCreatedAt, m.SentraKiID.String()
}
