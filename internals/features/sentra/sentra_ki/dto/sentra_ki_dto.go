// file: internals/features/sentra/sentra_ki/dto/sentra_ki_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"kiadmin_backend/internals/features/sentra/sentra_ki/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateSentraKiRequest struct {
	SentraKiName       string    `json:"sentra_ki_name" validate:"required,min=2,max=200"`
	SentraKiInstansiID uuid.UUID `json:"sentra_ki_instansi_id" validate:"required"`
	SentraKiAddress    string    `json:"sentra_ki_address" validate:"required"`
	SentraKiCity       string    `json:"sentra_ki_city" validate:"required,max=120"`
	SentraKiLatitude   string    `json:"sentra_ki_latitude" validate:"required,latitude"`
	SentraKiLongitude  string    `json:"sentra_ki_longitude" validate:"required,longitude"`
	SentraKiPicName    string    `json:"sentra_ki_pic_name" validate:"required,max=160"`
	SentraKiPicPhone   string    `json:"sentra_ki_pic_phone" validate:"required,max=32"`
	SentraKiPicEmail   string    `json:"sentra_ki_pic_email" validate:"required,email,max=160"`
	SentraKiPicID      string    `json:"sentra_ki_pic_id" validate:"required,max=64"`
}

func (r *CreateSentraKiRequest) Normalize() {
	for _, p := range []*string{
		&r.SentraKiName, &r.SentraKiAddress, &r.SentraKiCity,
		&r.SentraKiLatitude, &r.SentraKiLongitude,
		&r.SentraKiPicName, &r.SentraKiPicPhone, &r.SentraKiPicEmail, &r.SentraKiPicID,
	} {
		*p = strings.TrimSpace(*p)
	}
	r.SentraKiPicEmail = strings.ToLower(r.SentraKiPicEmail)
}

// ToModel: custom_id diisi service dari counter.
func (r CreateSentraKiRequest) ToModel() *model.SentraKiModel {
	return &model.SentraKiModel{
		SentraKiName:       r.SentraKiName,
		SentraKiInstansiID: r.SentraKiInstansiID,
		SentraKiAddress:    r.SentraKiAddress,
		SentraKiCity:       r.SentraKiCity,
		SentraKiLatitude:   r.SentraKiLatitude,
		SentraKiLongitude:  r.SentraKiLongitude,
		SentraKiPicName:    r.SentraKiPicName,
		SentraKiPicPhone:   r.SentraKiPicPhone,
		SentraKiPicEmail:   r.SentraKiPicEmail,
		SentraKiPicID:      r.SentraKiPicID,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateSentraKiRequest struct {
	SentraKiName       *string    `json:"sentra_ki_name" validate:"omitempty,min=2,max=200"`
	SentraKiInstansiID *uuid.UUID `json:"sentra_ki_instansi_id"`
	SentraKiAddress    *string    `json:"sentra_ki_address" validate:"omitempty,min=1"`
	SentraKiCity       *string    `json:"sentra_ki_city" validate:"omitempty,min=1,max=120"`
	SentraKiLatitude   *string    `json:"sentra_ki_latitude" validate:"omitempty,latitude"`
	SentraKiLongitude  *string    `json:"sentra_ki_longitude" validate:"omitempty,longitude"`
	SentraKiPicName    *string    `json:"sentra_ki_pic_name" validate:"omitempty,min=1,max=160"`
	SentraKiPicPhone   *string    `json:"sentra_ki_pic_phone" validate:"omitempty,min=1,max=32"`
	SentraKiPicEmail   *string    `json:"sentra_ki_pic_email" validate:"omitempty,email,max=160"`
	SentraKiPicID      *string    `json:"sentra_ki_pic_id" validate:"omitempty,min=1,max=64"`
}

func (r *UpdateSentraKiRequest) Normalize() {
	for _, p := range []*string{
		r.SentraKiName, r.SentraKiAddress, r.SentraKiCity,
		r.SentraKiLatitude, r.SentraKiLongitude,
		r.SentraKiPicName, r.SentraKiPicPhone, r.SentraKiPicEmail, r.SentraKiPicID,
	} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if r.SentraKiPicEmail != nil {
		*r.SentraKiPicEmail = strings.ToLower(*r.SentraKiPicEmail)
	}
}

func (r UpdateSentraKiRequest) ApplyToModel(m *model.SentraKiModel) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&m.SentraKiName, r.SentraKiName)
	set(&m.SentraKiAddress, r.SentraKiAddress)
	set(&m.SentraKiCity, r.SentraKiCity)
	set(&m.SentraKiLatitude, r.SentraKiLatitude)
	set(&m.SentraKiLongitude, r.SentraKiLongitude)
	set(&m.SentraKiPicName, r.SentraKiPicName)
	set(&m.SentraKiPicPhone, r.SentraKiPicPhone)
	set(&m.SentraKiPicEmail, r.SentraKiPicEmail)
	set(&m.SentraKiPicID, r.SentraKiPicID)
	if r.SentraKiInstansiID != nil {
		m.SentraKiInstansiID = *r.SentraKiInstansiID
	}
}
