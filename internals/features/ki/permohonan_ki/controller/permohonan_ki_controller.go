// file: internals/features/ki/permohonan_ki/controller/permohonan_ki_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/ki/permohonan_ki/dto"
	"kiadmin_backend/internals/features/ki/permohonan_ki/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
)

type PermohonanKiController struct {
	Svc *service.PermohonanKiService
}

func NewPermohonanKiController(svc *service.PermohonanKiService) *PermohonanKiController {
	return &PermohonanKiController{Svc: svc}
}

func (ctl *PermohonanKiController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	pq, err := helper.ParsePageQuery(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, info, err := ctl.Svc.List(c.UserContext(), actor, pq)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Daftar permohonan KI", dto.FromModels(rows), info)
}

func (ctl *PermohonanKiController) ListCursor(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	cq, err := helper.ParseCursorQuery(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	res, err := ctl.Svc.ListCursor(c.UserContext(), actor, cq)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Daftar permohonan KI", fiber.Map{
		"page":            dto.FromModels(res.Page),
		"continue_cursor": res.ContinueCursor,
		"is_done":         res.IsDone,
	})
}

func (ctl *PermohonanKiController) All(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, err := ctl.Svc.All(c.UserContext(), actor)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Semua permohonan KI", dto.FromModels(rows))
}

func (ctl *PermohonanKiController) GetByID(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := ctl.Svc.Get(c.UserContext(), actor, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Detail permohonan KI", dto.FromModel(m))
}

func (ctl *PermohonanKiController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.CreatePermohonanKiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := ctl.Svc.Create(c.UserContext(), actor, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Permohonan KI berhasil ditambahkan", dto.FromModel(m))
}

func (ctl *PermohonanKiController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdatePermohonanKiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := ctl.Svc.Update(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Permohonan KI berhasil diperbarui", dto.FromModel(m))
}

func (ctl *PermohonanKiController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := ctl.Svc.Delete(c.UserContext(), actor, id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Permohonan KI berhasil dihapus", fiber.Map{"permohonan_ki_id": id})
}
