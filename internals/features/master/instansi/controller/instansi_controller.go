// file: internals/features/master/instansi/controller/instansi_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/master/instansi/dto"
	"kiadmin_backend/internals/features/master/instansi/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
)

type InstansiController struct {
	Svc *service.InstansiService
}

func NewInstansiController(svc *service.InstansiService) *InstansiController {
	return &InstansiController{Svc: svc}
}

// GET /api/a/instansi?page=&limit=&query=
func (ctl *InstansiController) List(c *fiber.Ctx) error {
	pq, err := helper.ParsePageQuery(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, info, err := ctl.Svc.List(c.UserContext(), pq)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Daftar instansi", dto.FromModels(rows), info)
}

// GET /api/a/instansi/cursor?cursor=&num_items=&query=
func (ctl *InstansiController) ListCursor(c *fiber.Ctx) error {
	cq, err := helper.ParseCursorQuery(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	res, err := ctl.Svc.ListCursor(c.UserContext(), cq)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Daftar instansi", res)
}

// GET /api/a/instansi/all
func (ctl *InstansiController) All(c *fiber.Ctx) error {
	rows, err := ctl.Svc.All(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Semua instansi", dto.FromModels(rows))
}

func (ctl *InstansiController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	resp := dto.FromModel(m)
	if n, err := ctl.Svc.CountSentraKi(c.UserContext(), id); err == nil {
		resp.SentraKiCount = &n
	}
	return helper.JsonOK(c, "Detail instansi", resp)
}

func (ctl *InstansiController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.CreateInstansiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := ctl.Svc.Create(c.UserContext(), actor, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Instansi berhasil ditambahkan", dto.FromModel(m))
}

func (ctl *InstansiController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdateInstansiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := ctl.Svc.Update(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Instansi berhasil diperbarui", dto.FromModel(m))
}

func (ctl *InstansiController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Instansi berhasil dihapus", fiber.Map{"instansi_id": id})
}
