// file: internals/features/ki/daftar_ki/model/daftar_ki_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DaftarKiModel: satu pendaftaran KI (merek, paten, hak cipta, dst).
// Tanggal pendaftaran disimpan "M/D/YYYY" apa adanya.
type DaftarKiModel struct {
	DaftarKiID              uuid.UUID `gorm:"type:uuid;primaryKey;column:daftar_ki_id" json:"daftar_ki_id"`
	DaftarKiNomorPermohonan string    `gorm:"type:varchar(80);not null;column:daftar_ki_nomor_permohonan" json:"daftar_ki_nomor_permohonan"`
	DaftarKiName            string    `gorm:"type:varchar(255);not null;column:daftar_ki_name" json:"daftar_ki_name"`
	DaftarKiType            string    `gorm:"type:varchar(40);not null;index:idx_daftar_ki_type;column:daftar_ki_type" json:"daftar_ki_type"`
	DaftarKiSubType         *string   `gorm:"type:varchar(120);column:daftar_ki_sub_type" json:"daftar_ki_sub_type,omitempty"`

	DaftarKiNamePemilik      string `gorm:"type:varchar(200);not null;column:daftar_ki_name_pemilik" json:"daftar_ki_name_pemilik"`
	DaftarKiAddressPemilik   string `gorm:"type:text;not null;column:daftar_ki_address_pemilik" json:"daftar_ki_address_pemilik"`
	DaftarKiPemberiFasilitas string `gorm:"type:varchar(200);not null;column:daftar_ki_pemberi_fasilitas" json:"daftar_ki_pemberi_fasilitas"`

	DaftarKiDocument *string `gorm:"type:varchar(512);column:daftar_ki_document" json:"daftar_ki_document,omitempty"`

	DaftarKiPicName  string `gorm:"type:varchar(160);not null;column:daftar_ki_pic_name" json:"daftar_ki_pic_name"`
	DaftarKiPicPhone string `gorm:"type:varchar(32);not null;column:daftar_ki_pic_phone" json:"daftar_ki_pic_phone"`
	DaftarKiPicEmail string `gorm:"type:varchar(160);not null;column:daftar_ki_pic_email" json:"daftar_ki_pic_email"`
	DaftarKiPicID    string `gorm:"type:varchar(64);not null;column:daftar_ki_pic_id" json:"daftar_ki_pic_id"`

	DaftarKiRegistrationDate string    `gorm:"type:varchar(16);not null;column:daftar_ki_registration_date" json:"daftar_ki_registration_date"`
	DaftarKiCreatedBy        uuid.UUID `gorm:"type:uuid;not null;column:daftar_ki_created_by" json:"daftar_ki_created_by"`

	DaftarKiCreatedAt time.Time `gorm:"column:daftar_ki_created_at;not null;autoCreateTime;index:idx_daftar_ki_keyset,priority:1" json:"daftar_ki_created_at"`
	DaftarKiUpdatedAt time.Time `gorm:"column:daftar_ki_updated_at;not null;autoUpdateTime" json:"daftar_ki_updated_at"`
}

func (DaftarKiModel) TableName() string { return "daftar_ki" }

func (m *DaftarKiModel) BeforeCreate(tx *gorm.DB) error {
	if m.DaftarKiID == uuid.Nil {
		m.DaftarKiID = uuid.New()
	}
	return nil
}

func (m DaftarKiModel) Key() (time.Time, string) {
	return m.DaftarKiCreatedAt, m.DaftarKiID.String()
}
