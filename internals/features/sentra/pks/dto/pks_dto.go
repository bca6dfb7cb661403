// file: internals/features/sentra/pks/dto/pks_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
	"kiadmin_backend/internals/features/dashboard/status"
	"kiadmin_backend/internals/features/sentra/pks/model"
	helper "kiadmin_backend/internals/helpers"
	"kiadmin_backend/internals/helpers/kidate"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreatePksRequest struct {
	PksName           string    `json:"pks_name" validate:"required,min=2,max=200"`
	PksDescription    *string   `json:"pks_description" validate:"omitempty,max=5000"`
	PksDocument       string    `json:"pks_document" validate:"required,max=512"`
	PksExpiryDateFrom string    `json:"pks_expiry_date_from" validate:"required,ki_date"`
	PksExpiryDateTo   string    `json:"pks_expiry_date_to" validate:"required,ki_date"`
	PksSentraKiID     uuid.UUID `json:"pks_sentra_ki_id" validate:"required"`
}

func (r *CreatePksRequest) Normalize() {
	r.PksName = strings.TrimSpace(r.PksName)
	r.PksDocument = strings.TrimSpace(r.PksDocument)
	r.PksExpiryDateFrom = strings.TrimSpace(r.PksExpiryDateFrom)
	r.PksExpiryDateTo = strings.TrimSpace(r.PksExpiryDateTo)
	r.PksDescription = emptyToNil(r.PksDescription)
}

func (r CreatePksRequest) ToModel(createdBy uuid.UUID) *model.PksModel {
	doc := r.PksDocument
	return &model.PksModel{
		PksName:           r.PksName,
		PksDescription:    r.PksDescription,
		PksDocument:       &doc,
		PksExpiryDateFrom: r.PksExpiryDateFrom,
		PksExpiryDateTo:   r.PksExpiryDateTo,
		PksSentraKiID:     r.PksSentraKiID,
		PksCreatedBy:      createdBy,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdatePksRequest struct {
	PksName *string `json:"pks_name" validate:"omitempty,min=2,max=200"`
	// absent = tetap, null = dikosongkan
	PksDescription    helper.PatchField[string] `json:"pks_description"`
	PksDocument       *string                   `json:"pks_document" validate:"omitempty,max=512"`
	PksExpiryDateFrom *string                   `json:"pks_expiry_date_from" validate:"omitempty,ki_date"`
	PksExpiryDateTo   *string                   `json:"pks_expiry_date_to" validate:"omitempty,ki_date"`
	PksSentraKiID     *uuid.UUID                `json:"pks_sentra_ki_id"`
}

func (r *UpdatePksRequest) Normalize() {
	for _, p := range []*string{r.PksName, r.PksDocument, r.PksExpiryDateFrom, r.PksExpiryDateTo} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if v, ok := r.PksDescription.Get(); ok {
		r.PksDescription.Value = emptyToNil(v)
	}
}

// ApplyToModel mengembalikan key dokumen lama bila dokumen diganti.
func (r UpdatePksRequest) ApplyToModel(m *model.PksModel) (replacedDocument string) {
	if r.PksName != nil {
		m.PksName = *r.PksName
	}
	if v, ok := r.PksDescription.Get(); ok {
		m.PksDescription = v
	}
	if r.PksDocument != nil && *r.PksDocument != "" {
		if m.PksDocument != nil && *m.PksDocument != *r.PksDocument {
			replacedDocument = *m.PksDocument
		}
		doc := *r.PksDocument
		m.PksDocument = &doc
	}
	if r.PksExpiryDateFrom != nil {
		m.PksExpiryDateFrom = *r.PksExpiryDateFrom
	}
	if r.PksExpiryDateTo != nil {
		m.PksExpiryDateTo = *r.PksExpiryDateTo
	}
	if r.PksSentraKiID != nil {
		m.PksSentraKiID = *r.PksSentraKiID
	}
	return replacedDocument
}

// ValidateWindow: tanggal berakhir tidak boleh sebelum tanggal mulai.
func ValidateWindow(from, to string, loc *time.Location) error {
	f, err1 := kidate.Parse(from, loc)
	t, err2 := kidate.Parse(to, loc)
	if err1 != nil || err2 != nil {
		return helper.Validation("Validasi gagal", map[string][]string{"pks_expiry_date_to": {"format tanggal tidak valid"}})
	}
	if t.Before(f) {
		return helper.Validation("Validasi gagal", map[string][]string{
			"pks_expiry_date_to": {"tidak boleh sebelum tanggal mulai"},
		})
	}
	return nil
}

func emptyToNil(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

/* =========================================================
   RESPONSE
   ========================================================= */

type PksResponse struct {
	*model.PksModel
	Instansi    *instansiModel.InstansiModel `json:"instansi,omitempty"`
	DocumentURL string                       `json:"document_url,omitempty"`
	Status      status.Status                `json:"status"`
	StatusLabel string                       `json:"status_label"`
}

// URLFunc mengubah key dokumen menjadi URL ("" bila tidak ada).
type URLFunc func(key *string) string

func FromModel(m *model.PksModel, cls status.Classifier, url URLFunc) PksResponse {
	st := cls.Classify(m.PksExpiryDateTo)
	resp := PksResponse{
		PksModel:    m,
		Status:      st,
		StatusLabel: st.Label(),
	}
	if m.SentraKi != nil {
		resp.Instansi = m.SentraKi.Instansi
	}
	if url != nil {
		resp.DocumentURL = url(m.PksDocument)
	}
	return resp
}

func FromModels(rows []model.PksModel, cls status.Classifier, url URLFunc) []PksResponse {
	out := make([]PksResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i], cls, url))
	}
	return out
}
