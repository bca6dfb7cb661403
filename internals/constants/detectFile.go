package constants

import (
	"path/filepath"
	"strings"
)

type FileKind int

const (
	FileUnknown FileKind = iota
	FileImage
	FilePDF
	FileDoc
	FileSheet
)

// DetectFileKindFromExt dipakai untuk menolak lampiran di luar gambar/PDF/office.
func DetectFileKindFromExt(filename string) FileKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileImage
	case ".pdf":
		return FilePDF
	case ".doc", ".docx":
		return FileDoc
	case ".xls", ".xlsx":
		return FileSheet
	default:
		return FileUnknown
	}
}
