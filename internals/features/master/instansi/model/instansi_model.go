// file: internals/features/master/instansi/model/instansi_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstansiModel: organisasi pemilik Sentra KI (kampus, dinas, lembaga riset).
type InstansiModel struct {
	InstansiID   uuid.UUID `gorm:"type:uuid;primaryKey;column:instansi_id" json:"instansi_id"`
	InstansiName string    `gorm:"type:varchar(160);not null;column:instansi_name" json:"instansi_name"`
	InstansiType string    `gorm:"type:varchar(80);not null;column:instansi_type" json:"instansi_type"`

	InstansiCreatedAt time.Time `gorm:"column:instansi_created_at;not null;autoCreateTime;index:idx_instansi_keyset,priority:1" json:"instansi_created_at"`
	InstansiUpdatedAt time.Time `gorm:"column:instansi_updated_at;not null;autoUpdateTime" json:"instansi_updated_at"`
}

func (InstansiModel) TableName() string { return "instansi" }

func (m *InstansiModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstansiID == uuid.Nil {
		m.InstansiID = uuid.New()
	}
	return nil
}

// Key dipakai sebagai kunci cursor (created_at, id).
func (m InstansiModel) Key() (time.Time, string) {
	return m.InstansiCreatedAt, m.InstansiID.String()
}
