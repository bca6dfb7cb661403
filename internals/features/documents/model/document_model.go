// file: internals/features/documents/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentModel mencatat setiap berkas yang berhasil di-upload ke storage.
// Berkas yang tidak pernah ditempel ke PKS / daftar KI (AttachedAt nil) akan dibersihkan reaper.
type DocumentModel struct {
	DocumentKey          string            `gorm:"type:varchar(512);primaryKey;column:document_key" json:"document_key"`
	DocumentContentType  string            `gorm:"type:varchar(120);not null;column:document_content_type" json:"document_content_type"`
	DocumentSize         int64             `gorm:"not null;column:document_size" json:"document_size"`
	DocumentOriginalName string            `gorm:"type:varchar(255);not null;column:document_original_name" json:"document_original_name"`
	DocumentMeta         datatypes.JSONMap `gorm:"column:document_meta" json:"document_meta,omitempty"`
	DocumentUploadedBy   uuid.UUID         `gorm:"type:uuid;not null;index;column:document_uploaded_by" json:"document_uploaded_by"`
	DocumentAttachedAt   *time.Time        `gorm:"column:document_attached_at;index" json:"document_attached_at,omitempty"`
	DocumentCreatedAt    time.Time         `gorm:"column:document_created_at;not null;autoCreateTime;index" json:"document_created_at"`
}

func (DocumentModel) TableName() string { return "documents" }
