// file: internals/features/ki/permohonan_ki/model/permohonan_ki_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermohonanKiModel: rekap jumlah permohonan KI per tanggal (snapshot).
// Satu tanggal hanya boleh punya satu snapshot.
type PermohonanKiModel struct {
	PermohonanKiID   uuid.UUID `gorm:"type:uuid;primaryKey;column:permohonan_ki_id" json:"permohonan_ki_id"`
	PermohonanKiDate string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_permohonan_ki_date;column:permohonan_ki_date" json:"permohonan_ki_date"`

	PermohonanKiMerek             int `gorm:"not null;default:0;column:permohonan_ki_merek" json:"permohonan_ki_merek"`
	PermohonanKiPaten             int `gorm:"not null;default:0;column:permohonan_ki_paten" json:"permohonan_ki_paten"`
	PermohonanKiHakCipta          int `gorm:"not null;default:0;column:permohonan_ki_hak_cipta" json:"permohonan_ki_hak_cipta"`
	PermohonanKiIndikasiGeografis int `gorm:"not null;default:0;column:permohonan_ki_indikasi_geografis" json:"permohonan_ki_indikasi_geografis"`
	PermohonanKiDTLST             int `gorm:"not null;default:0;column:permohonan_ki_dtlst" json:"permohonan_ki_dtlst"`
	PermohonanKiRahasiaDagang     int `gorm:"not null;default:0;column:permohonan_ki_rahasia_dagang" json:"permohonan_ki_rahasia_dagang"`
	PermohonanKiDesainIndustri    int `gorm:"not null;default:0;column:permohonan_ki_desain_industri" json:"permohonan_ki_desain_industri"`
	PermohonanKiKiKomunal         int `gorm:"not null;default:0;column:permohonan_ki_ki_komunal" json:"permohonan_ki_ki_komunal"`

	PermohonanKiUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_permohonan_ki_user;column:permohonan_ki_user_id" json:"permohonan_ki_user_id"`

	PermohonanKiCreatedAt time.Time `gorm:"column:permohonan_ki_created_at;not null;autoCreateTime;index:idx_permohonan_ki_keyset,priority:1" json:"permohonan_ki_created_at"`
	PermohonanKiUpdatedAt time.Time `gorm:"column:permohonan_ki_updated_at;not null;autoUpdateTime" json:"permohonan_ki_updated_at"`
}

func (PermohonanKiModel) TableName() string { return "permohonan_ki" }

func (m *PermohonanKiModel) BeforeCreate(tx *gorm.DB) error {
	if m.PermohonanKiID == uuid.Nil {
		m.PermohonanKiID = uuid.New()
	}
	return nil
}

func (m PermohonanKiModel) Key() (time.Time, string) {
	return m.PermohonanKiCreatedAt, m.PermohonanKiID.String()
}

func (m PermohonanKiModel) Total() int {
	return m.PermohonanKiMerek + m.PermohonanKiPaten + m.PermohonanKiHakCipta +
		m.PermohonanKiIndikasiGeografis + m.PermohonanKiDTLST + m.PermohonanKiRahasiaDagang +
		m.PermohonanKiDesainIndustri + m.PermohonanKiKiKomunal
}
