// file: internals/features/master/instansi/dto/instansi_dto.go
package dto

import (
	"strings"

	"kiadmin_backend/internals/features/master/instansi/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type CreateInstansiRequest struct {
	InstansiName string `json:"instansi_name" validate:"required,min=2,max=160"`
	InstansiType string `json:"instansi_type" validate:"required,max=80"`
}

func (r *CreateInstansiRequest) Normalize() {
	r.InstansiName = strings.TrimSpace(r.InstansiName)
	r.InstansiType = strings.TrimSpace(r.InstansiType)
}

func (r CreateInstansiRequest) ToModel() *model.InstansiModel {
	return &model.InstansiModel{
		InstansiName: r.InstansiName,
		InstansiType: r.InstansiType,
	}
}

// UpdateInstansiRequest: field nil = tidak diubah.
type UpdateInstansiRequest struct {
	InstansiName *string `json:"instansi_name" validate:"omitempty,min=2,max=160"`
	InstansiType *string `json:"instansi_type" validate:"omitempty,min=1,max=80"`
}

func (r *UpdateInstansiRequest) Normalize() {
	trimPtr(r.InstansiName)
	trimPtr(r.InstansiType)
}

func (r UpdateInstansiRequest) ApplyToModel(m *model.InstansiModel) {
	if r.InstansiName != nil {
		m.InstansiName = *r.InstansiName
	}
	if r.InstansiType != nil {
		m.InstansiType = *r.InstansiType
	}
}

func trimPtr(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type InstansiResponse struct {
	*model.InstansiModel
	SentraKiCount *int64 `json:"sentra_ki_count,omitempty"`
}

func FromModel(m *model.InstansiModel) InstansiResponse {
	return InstansiResponse{InstansiModel: m}
}

func FromModels(rows []model.InstansiModel) []InstansiResponse {
	out := make([]InstansiResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
