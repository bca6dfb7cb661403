// file: internals/features/ki/permohonan_ki/dto/permohonan_ki_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kiadmin_backend/internals/features/dashboard/stats"
	"kiadmin_backend/internals/features/ki/permohonan_ki/model"
	"kiadmin_backend/internals/helpers/kidate"
)

type CreatePermohonanKiRequest struct {
	PermohonanKiDate              string `json:"permohonan_ki_date" validate:"required,ki_date"`
	PermohonanKiMerek             int    `json:"permohonan_ki_merek" validate:"min=0"`
	PermohonanKiPaten             int    `json:"permohonan_ki_paten" validate:"min=0"`
	PermohonanKiHakCipta          int    `json:"permohonan_ki_hak_cipta" validate:"min=0"`
	PermohonanKiIndikasiGeografis int    `json:"permohonan_ki_indikasi_geografis" validate:"min=0"`
	PermohonanKiDTLST             int    `json:"permohonan_ki_dtlst" validate:"min=0"`
	PermohonanKiRahasiaDagang     int    `json:"permohonan_ki_rahasia_dagang" validate:"min=0"`
	PermohonanKiDesainIndustri    int    `json:"permohonan_ki_desain_industri" validate:"min=0"`
	PermohonanKiKiKomunal         int    `json:"permohonan_ki_ki_komunal" validate:"min=0"`
}

func (r CreatePermohonanKiRequest) ToModel(userID uuid.UUID) *model.PermohonanKiModel {
	return &model.PermohonanKiModel{
		PermohonanKiDate:              r.PermohonanKiDate,
		PermohonanKiMerek:             r.PermohonanKiMerek,
		PermohonanKiPaten:             r.PermohonanKiPaten,
		PermohonanKiHakCipta:          r.PermohonanKiHakCipta,
		PermohonanKiIndikasiGeografis: r.PermohonanKiIndikasiGeografis,
		PermohonanKiDTLST:             r.PermohonanKiDTLST,
		PermohonanKiRahasiaDagang:     r.PermohonanKiRahasiaDagang,
		PermohonanKiDesainIndustri:    r.PermohonanKiDesainIndustri,
		PermohonanKiKiKomunal:         r.PermohonanKiKiKomunal,
		PermohonanKiUserID:            userID,
	}
}

type UpdatePermohonanKiRequest struct {
	PermohonanKiDate              *string `json:"permohonan_ki_date" validate:"omitempty,ki_date"`
	PermohonanKiMerek             *int    `json:"permohonan_ki_merek" validate:"omitempty,min=0"`
	PermohonanKiPaten             *int    `json:"permohonan_ki_paten" validate:"omitempty,min=0"`
	PermohonanKiHakCipta          *int    `json:"permohonan_ki_hak_cipta" validate:"omitempty,min=0"`
	PermohonanKiIndikasiGeografis *int    `json:"permohonan_ki_indikasi_geografis" validate:"omitempty,min=0"`
	PermohonanKiDTLST             *int    `json:"permohonan_ki_dtlst" validate:"omitempty,min=0"`
	PermohonanKiRahasiaDagang     *int    `json:"permohonan_ki_rahasia_dagang" validate:"omitempty,min=0"`
	PermohonanKiDesainIndustri    *int    `json:"permohonan_ki_desain_industri" validate:"omitempty,min=0"`
	PermohonanKiKiKomunal         *int    `json:"permohonan_ki_ki_komunal" validate:"omitempty,min=0"`
}

func (r UpdatePermohonanKiRequest) ApplyToModel(m *model.PermohonanKiModel) {
	if r.PermohonanKiDate != nil {
		m.PermohonanKiDate = *r.PermohonanKiDate
	}
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setInt(&m.PermohonanKiMerek, r.PermohonanKiMerek)
	setInt(&m.PermohonanKiPaten, r.PermohonanKiPaten)
	setInt(&m.PermohonanKiHakCipta, r.PermohonanKiHakCipta)
	setInt(&m.PermohonanKiIndikasiGeografis, r.PermohonanKiIndikasiGeografis)
	setInt(&m.PermohonanKiDTLST, r.PermohonanKiDTLST)
	setInt(&m.PermohonanKiRahasiaDagang, r.PermohonanKiRahasiaDagang)
	setInt(&m.PermohonanKiDesainIndustri, r.PermohonanKiDesainIndustri)
	setInt(&m.PermohonanKiKiKomunal, r.PermohonanKiKiKomunal)
}

// CanonicalDate menyeragamkan tanggal snapshot ke RFC3339 di zona aplikasi,
// sehingga "2025-03-01" dan "2025-03-01T00:00:00" dianggap tanggal yang sama.
func CanonicalDate(s string, loc *time.Location) (string, error) {
	t, err := kidate.Parse(strings.TrimSpace(s), loc)
	if err != nil {
		return "", err
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(time.RFC3339), nil
}

// ToSnapshot memetakan baris ke input agregator.
func ToSnapshot(m model.PermohonanKiModel) stats.Snapshot {
	return stats.Snapshot{
		Date:              m.PermohonanKiDate,
		Merek:             m.PermohonanKiMerek,
		Paten:             m.PermohonanKiPaten,
		HakCipta:          m.PermohonanKiHakCipta,
		IndikasiGeografis: m.PermohonanKiIndikasiGeografis,
		DTLST:             m.PermohonanKiDTLST,
		RahasiaDagang:     m.PermohonanKiRahasiaDagang,
		DesainIndustri:    m.PermohonanKiDesainIndustri,
		KiKomunal:         m.PermohonanKiKiKomunal,
	}
}

type PermohonanKiResponse struct {
	*model.PermohonanKiModel
	Total int `json:"total"`
}

func FromModel(m *model.PermohonanKiModel) PermohonanKiResponse {
	return PermohonanKiResponse{PermohonanKiModel: m, Total: m.Total()}
}

func FromModels(rows []model.PermohonanKiModel) []PermohonanKiResponse {
	out := make([]PermohonanKiResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
