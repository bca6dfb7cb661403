// file: internals/features/ki/informasi_ki/dto/informasi_ki_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"kiadmin_backend/internals/features/ki/informasi_ki/model"
)

type CreateInformasiKiRequest struct {
	InformasiKiName        string `json:"informasi_ki_name" validate:"required,min=2,max=255"`
	InformasiKiDate        string `json:"informasi_ki_date" validate:"required,ki_date"`
	InformasiKiDescription string `json:"informasi_ki_description" validate:"required"`
}

func (r *CreateInformasiKiRequest) Normalize() {
	r.InformasiKiName = strings.TrimSpace(r.InformasiKiName)
	r.InformasiKiDate = strings.TrimSpace(r.InformasiKiDate)
	r.InformasiKiDescription = strings.TrimSpace(r.InformasiKiDescription)
}

func (r CreateInformasiKiRequest) ToModel(userID uuid.UUID) *model.InformasiKiModel {
	return &model.InformasiKiModel{
		InformasiKiName:        r.InformasiKiName,
		InformasiKiDate:        r.InformasiKiDate,
		InformasiKiDescription: r.InformasiKiDescription,
		InformasiKiUserID:      userID,
	}
}

type UpdateInformasiKiRequest struct {
	InformasiKiName        *string `json:"informasi_ki_name" validate:"omitempty,min=2,max=255"`
	InformasiKiDate        *string `json:"informasi_ki_date" validate:"omitempty,ki_date"`
	InformasiKiDescription *string `json:"informasi_ki_description" validate:"omitempty,min=1"`
}

func (r *UpdateInformasiKiRequest) Normalize() {
	for _, p := range []*string{r.InformasiKiName, r.InformasiKiDate, r.InformasiKiDescription} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

func (r UpdateInformasiKiRequest) ApplyToModel(m *model.InformasiKiModel) {
	if r.InformasiKiName != nil {
		m.InformasiKiName = *r.InformasiKiName
	}
	if r.InformasiKiDate != nil {
		m.InformasiKiDate = *r.InformasiKiDate
	}
	if r.InformasiKiDescription != nil {
		m.InformasiKiDescription = *r.InformasiKiDescription
	}
}
