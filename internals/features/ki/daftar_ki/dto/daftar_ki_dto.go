// file: internals/features/ki/daftar_ki/dto/daftar_ki_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/ki/daftar_ki/model"
	helper "kiadmin_backend/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateDaftarKiRequest struct {
	DaftarKiNomorPermohonan  string  `json:"daftar_ki_nomor_permohonan" validate:"required,max=80"`
	DaftarKiName             string  `json:"daftar_ki_name" validate:"required,min=2,max=255"`
	DaftarKiType             string  `json:"daftar_ki_type" validate:"required,ki_type"`
	DaftarKiSubType          *string `json:"daftar_ki_sub_type" validate:"omitempty,max=120"`
	DaftarKiNamePemilik      string  `json:"daftar_ki_name_pemilik" validate:"required,max=200"`
	DaftarKiAddressPemilik   string  `json:"daftar_ki_address_pemilik" validate:"required"`
	DaftarKiPemberiFasilitas string  `json:"daftar_ki_pemberi_fasilitas" validate:"required,max=200"`
	DaftarKiDocument         string  `json:"daftar_ki_document" validate:"required,max=512"`
	DaftarKiPicName          string  `json:"daftar_ki_pic_name" validate:"required,max=160"`
	DaftarKiPicPhone         string  `json:"daftar_ki_pic_phone" validate:"required,max=32"`
	DaftarKiPicEmail         string  `json:"daftar_ki_pic_email" validate:"required,email,max=160"`
	DaftarKiPicID            string  `json:"daftar_ki_pic_id" validate:"required,max=64"`
	DaftarKiRegistrationDate string  `json:"daftar_ki_registration_date" validate:"required,mdy_date"`
}

func (r *CreateDaftarKiRequest) Normalize() {
	for _, p := range []*string{
		&r.DaftarKiNomorPermohonan, &r.DaftarKiName, &r.DaftarKiType,
		&r.DaftarKiNamePemilik, &r.DaftarKiAddressPemilik, &r.DaftarKiPemberiFasilitas,
		&r.DaftarKiDocument, &r.DaftarKiPicName, &r.DaftarKiPicPhone, &r.DaftarKiPicEmail,
		&r.DaftarKiPicID, &r.DaftarKiRegistrationDate,
	} {
		*p = strings.TrimSpace(*p)
	}
	if t, ok := constants.NormalizeKiType(r.DaftarKiType); ok {
		r.DaftarKiType = t
	}
	r.DaftarKiPicEmail = strings.ToLower(r.DaftarKiPicEmail)
	r.DaftarKiSubType = emptyToNil(r.DaftarKiSubType)
}

func (r CreateDaftarKiRequest) ToModel(createdBy uuid.UUID) *model.DaftarKiModel {
	doc := r.DaftarKiDocument
	return &model.DaftarKiModel{
		DaftarKiNomorPermohonan:  r.DaftarKiNomorPermohonan,
		DaftarKiName:             r.DaftarKiName,
		DaftarKiType:             r.DaftarKiType,
		DaftarKiSubType:          r.DaftarKiSubType,
		DaftarKiNamePemilik:      r.DaftarKiNamePemilik,
		DaftarKiAddressPemilik:   r.DaftarKiAddressPemilik,
		DaftarKiPemberiFasilitas: r.DaftarKiPemberiFasilitas,
		DaftarKiDocument:         &doc,
		DaftarKiPicName:          r.DaftarKiPicName,
		DaftarKiPicPhone:         r.DaftarKiPicPhone,
		DaftarKiPicEmail:         r.DaftarKiPicEmail,
		DaftarKiPicID:            r.DaftarKiPicID,
		DaftarKiRegistrationDate: r.DaftarKiRegistrationDate,
		DaftarKiCreatedBy:        createdBy,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateDaftarKiRequest struct {
	DaftarKiNomorPermohonan  *string                   `json:"daftar_ki_nomor_permohonan" validate:"omitempty,min=1,max=80"`
	DaftarKiName             *string                   `json:"daftar_ki_name" validate:"omitempty,min=2,max=255"`
	DaftarKiType             *string                   `json:"daftar_ki_type" validate:"omitempty,ki_type"`
	DaftarKiSubType          helper.PatchField[string] `json:"daftar_ki_sub_type"`
	DaftarKiNamePemilik      *string                   `json:"daftar_ki_name_pemilik" validate:"omitempty,min=1,max=200"`
	DaftarKiAddressPemilik   *string                   `json:"daftar_ki_address_pemilik" validate:"omitempty,min=1"`
	DaftarKiPemberiFasilitas *string                   `json:"daftar_ki_pemberi_fasilitas" validate:"omitempty,min=1,max=200"`
	DaftarKiDocument         *string                   `json:"daftar_ki_document" validate:"omitempty,max=512"`
	DaftarKiPicName          *string                   `json:"daftar_ki_pic_name" validate:"omitempty,min=1,max=160"`
	DaftarKiPicPhone         *string                   `json:"daftar_ki_pic_phone" validate:"omitempty,min=1,max=32"`
	DaftarKiPicEmail         *string                   `json:"daftar_ki_pic_email" validate:"omitempty,email,max=160"`
	DaftarKiPicID            *string                   `json:"daftar_ki_pic_id" validate:"omitempty,min=1,max=64"`
	DaftarKiRegistrationDate *string                   `json:"daftar_ki_registration_date" validate:"omitempty,mdy_date"`
}

func (r *UpdateDaftarKiRequest) Normalize() {
	for _, p := range []*string{
		r.DaftarKiNomorPermohonan, r.DaftarKiName, r.DaftarKiType,
		r.DaftarKiNamePemilik, r.DaftarKiAddressPemilik, r.DaftarKiPemberiFasilitas,
		r.DaftarKiDocument, r.DaftarKiPicName, r.DaftarKiPicPhone, r.DaftarKiPicEmail,
		r.DaftarKiPicID, r.DaftarKiRegistrationDate,
	} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if r.DaftarKiType != nil {
		if t, ok := constants.NormalizeKiType(*r.DaftarKiType); ok {
			*r.DaftarKiType = t
		}
	}
	if r.DaftarKiPicEmail != nil {
		*r.DaftarKiPicEmail = strings.ToLower(*r.DaftarKiPicEmail)
	}
	if v, ok := r.DaftarKiSubType.Get(); ok {
		r.DaftarKiSubType.Value = emptyToNil(v)
	}
}

// ApplyToModel mengembalikan key dokumen lama bila dokumen diganti.
func (r UpdateDaftarKiRequest) ApplyToModel(m *model.DaftarKiModel) (replacedDocument string) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&m.DaftarKiNomorPermohonan, r.DaftarKiNomorPermohonan)
	set(&m.DaftarKiName, r.DaftarKiName)
	set(&m.DaftarKiType, r.DaftarKiType)
	set(&m.DaftarKiNamePemilik, r.DaftarKiNamePemilik)
	set(&m.DaftarKiAddressPemilik, r.DaftarKiAddressPemilik)
	set(&m.DaftarKiPemberiFasilitas, r.DaftarKiPemberiFasilitas)
	set(&m.DaftarKiPicName, r.DaftarKiPicName)
	set(&m.DaftarKiPicPhone, r.DaftarKiPicPhone)
	set(&m.DaftarKiPicEmail, r.DaftarKiPicEmail)
	set(&m.DaftarKiPicID, r.DaftarKiPicID)
	set(&m.DaftarKiRegistrationDate, r.DaftarKiRegistrationDate)
	if v, ok := r.DaftarKiSubType.Get(); ok {
		m.DaftarKiSubType = v
	}
	if r.DaftarKiDocument != nil && *r.DaftarKiDocument != "" {
		if m.DaftarKiDocument != nil && *m.DaftarKiDocument != *r.DaftarKiDocument {
			replacedDocument = *m.DaftarKiDocument
		}
		doc := *r.DaftarKiDocument
		m.DaftarKiDocument = &doc
	}
	return replacedDocument
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

type DaftarKiResponse struct {
	*model.DaftarKiModel
	DocumentURL string `json:"document_url,omitempty"`
}
