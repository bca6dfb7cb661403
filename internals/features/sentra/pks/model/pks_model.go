// file: internals/features/sentra/pks/model/pks_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sentraModel "kiadmin_backend/internals/features/sentra/sentra_ki/model"
)

// PksModel: perjanjian kerja sama (PKS) dengan masa berlaku.
// Status Aktif / Akan Habis / Kedaluwarsa dihitung saat dibaca, tidak disimpan.
type PksModel struct {
	PksID          uuid.UUID `gorm:"type:uuid;primaryKey;column:pks_id" json:"pks_id"`
	PksNo          string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_pks_no;column:pks_no" json:"pks_no"`
	PksName        string    `gorm:"type:varchar(200);not null;column:pks_name" json:"pks_name"`
	PksDescription *string   `gorm:"type:text;column:pks_description" json:"pks_description,omitempty"`

	// key object storage
	PksDocument *string `gorm:"type:varchar(512);column:pks_document" json:"pks_document,omitempty"`

	PksExpiryDateFrom string `gorm:"type:varchar(40);not null;column:pks_expiry_date_from" json:"pks_expiry_date_from"`
	PksExpiryDateTo   string `gorm:"type:varchar(40);not null;column:pks_expiry_date_to" json:"pks_expiry_date_to"`

	PksSentraKiID uuid.UUID `gorm:"type:uuid;not null;index:idx_pks_sentra_ki;column:pks_sentra_ki_id" json:"pks_sentra_ki_id"`
	PksCreatedBy  uuid.UUID `gorm:"type:uuid;not null;column:pks_created_by" json:"pks_created_by"`

	PksCreatedAt time.Time `gorm:"column:pks_created_at;not null;autoCreateTime;index:idx_pks_keyset,priority:1" json:"pks_created_at"`
	PksUpdatedAt time.Time `gorm:"column:pks_updated_at;not null;autoUpdateTime" json:"pks_updated_at"`

	SentraKi *sentraModel.SentraKiModel `gorm:"foreignKey:PksSentraKiID;references:SentraKiID" json:"sentra_ki,omitempty"`
}

func (PksModel) TableName() string { return "pks" }

func (m *PksModel) BeforeCreate(tx *gorm.DB) error {
	if m.PksID == uuid.Nil {
		m.PksID = uuid.New()
	}
	return nil
}

func (m PksModel) Key() (time.Time, string) {
	return m.PksCreatedAt, m.PksID.String()
}
