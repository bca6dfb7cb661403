// file: internals/features/sentra/pks/controller/pks_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/sentra/pks/dto"
	"kiadmin_backend/internals/features/sentra/pks/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
)

type PksController struct {
	Svc *service.PksService
}

func NewPksController(svc *service.PksService) *PksController {
	return &PksController{Svc: svc}
}

func (ctl *PksController) List(c *fiber.Ctx) error {
	pq, err := helper.ParsePageQuery(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, info, err := ctl.Svc.List(c.UserContext(), pq)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Daftar PKS", rows, info)
}

func (ctl *PksController) ListCursor(c *fiber.Ctx) error {
	cq, err := helper.ParseCursorQuery(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	res, err := ctl.Svc.ListCursor(c.UserContext(), cq)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Daftar PKS", res)
}

func (ctl *PksController) All(c *fiber.Ctx) error {
	rows, err := ctl.Svc.All(c.UserContext(), true)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Semua PKS", rows)
}

func (ctl *PksController) Summary(c *fiber.Ctx) error {
	sum, err := ctl.Svc.StatusSummary(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Ringkasan status PKS", sum)
}

func (ctl *PksController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	resp, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Detail PKS", resp)
}

func (ctl *PksController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.CreatePksRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	resp, err := ctl.Svc.Create(c.UserContext(), actor, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "PKS berhasil ditambahkan", resp)
}

func (ctl *PksController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdatePksRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	resp, err := ctl.Svc.Update(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "PKS berhasil diperbarui", resp)
}

func (ctl *PksController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "PKS berhasil dihapus", fiber.Map{"pks_id": id})
}
