// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"kiadmin_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=160"`
	UserName    string     `json:"user_name" validate:"required,min=3,max=50,alphanum"`
	Email       string     `json:"email" validate:"required,email,max=255"`
	PhoneNumber *string    `json:"phone_number" validate:"omitempty,max=32"`
	Password    string     `json:"password" validate:"required,min=8,max=72"`
	Role        string     `json:"role" validate:"required,oneof=admin user"`
	InstansiID  *uuid.UUID `json:"instansi_id"`
	IsActive    *bool      `json:"is_active"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	if r.PhoneNumber != nil && strings.TrimSpace(*r.PhoneNumber) == "" {
		r.PhoneNumber = nil
	}
}

// ToModel: password sudah di-hash oleh service.
func (r CreateUserRequest) ToModel(hashed string) *model.UserModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.UserModel{
		Name:        r.Name,
		UserName:    r.UserName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Password:    hashed,
		Role:        r.Role,
		InstansiID:  r.InstansiID,
		IsActive:    active,
	}
}

// UpdateUserRequest: field nil = tidak diubah. Password diisi = reset password.
type UpdateUserRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=2,max=160"`
	UserName    *string    `json:"user_name" validate:"omitempty,min=3,max=50,alphanum"`
	Email       *string    `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber *string    `json:"phone_number" validate:"omitempty,max=32"`
	Password    *string    `json:"password" validate:"omitempty,min=8,max=72"`
	Role        *string    `json:"role" validate:"omitempty,oneof=admin user"`
	InstansiID  *uuid.UUID `json:"instansi_id"`
	IsActive    *bool      `json:"is_active"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
	}
	if r.UserName != nil {
		*r.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.Email != nil {
		*r.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		*r.Role = strings.ToLower(strings.TrimSpace(*r.Role))
	}
}

func (r UpdateUserRequest) ApplyToModel(m *model.UserModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.PhoneNumber != nil {
		p := strings.TrimSpace(*r.PhoneNumber)
		if p == "" {
			m.PhoneNumber = nil
		} else {
			m.PhoneNumber = &p
		}
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.InstansiID != nil {
		if *r.InstansiID == uuid.Nil {
			m.InstansiID = nil
		} else {
			id := *r.InstansiID
			m.InstansiID = &id
		}
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
