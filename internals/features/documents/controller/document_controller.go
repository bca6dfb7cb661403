// file: internals/features/documents/controller/document_controller.go
package controller

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/documents/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
)

type DocumentController struct {
	Svc *service.DocumentService
}

func NewDocumentController(svc *service.DocumentService) *DocumentController {
	return &DocumentController{Svc: svc}
}

type uploadResponse struct {
	DocumentKey string `json:"document_key"`
	URL         string `json:"url,omitempty"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// POST /api/u/documents (multipart: file)
func (ctl *DocumentController) Upload(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"file": {"wajib diisi"}})
	}
	if fh.Size > ctl.Svc.MaxBytes {
		return helper.JsonFromError(c, helper.Validation("Ukuran berkas melebihi batas",
			map[string][]string{"file": {"ukuran berkas terlalu besar"}}))
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Berkas tidak bisa dibaca")
	}
	defer f.Close()

	// +1 supaya berkas yang melebihi batas tetap terdeteksi service
	data, err := io.ReadAll(io.LimitReader(f, ctl.Svc.MaxBytes+1))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Berkas tidak bisa dibaca")
	}

	doc, err := ctl.Svc.Upload(c.UserContext(), actor, fh.Filename, data)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	resp := uploadResponse{
		DocumentKey: doc.DocumentKey,
		ContentType: doc.DocumentContentType,
		Size:        doc.DocumentSize,
	}
	resp.URL = ctl.Svc.URLOrEmpty(c.UserContext(), &doc.DocumentKey)
	return helper.JsonCreated(c, "Berkas berhasil diupload", resp)
}

// GET /api/u/documents/url?key=documents/2025/01/abc.pdf
func (ctl *DocumentController) URL(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Query("key"))
	if key == "" {
		return helper.JsonValidationError(c, map[string][]string{"key": {"wajib diisi"}})
	}
	u, err := ctl.Svc.URL(c.UserContext(), key)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "URL dokumen", fiber.Map{"document_key": key, "url": u})
}
