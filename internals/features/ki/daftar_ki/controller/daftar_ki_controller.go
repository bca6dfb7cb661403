// file: internals/features/ki/daftar_ki/controller/daftar_ki_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/ki/daftar_ki/dto"
	"kiadmin_backend/internals/features/ki/daftar_ki/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
)

type DaftarKiController struct {
	Svc *service.DaftarKiService
}

func NewDaftarKiController(svc *service.DaftarKiService) *DaftarKiController {
	return &DaftarKiController{Svc: svc}
}

func (ctl *DaftarKiController) List(c *fiber.Ctx) error {
	pq, err := helper.ParsePageQuery(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, info, err := ctl.Svc.List(c.UserContext(), pq)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Daftar KI", rows, info)
}

func (ctl *DaftarKiController) ListCursor(c *fiber.Ctx) error {
	cq, err := helper.ParseCursorQuery(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	res, err := ctl.Svc.ListCursor(c.UserContext(), cq)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Daftar KI", res)
}

// GET /all?query=
func (ctl *DaftarKiController) All(c *fiber.Ctx) error {
	rows, err := ctl.Svc.All(c.UserContext(), c.Query("query"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Semua data KI", rows)
}

func (ctl *DaftarKiController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	resp, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Detail data KI", resp)
}

func (ctl *DaftarKiController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.CreateDaftarKiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	resp, err := ctl.Svc.Create(c.UserContext(), actor, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Data KI berhasil ditambahkan", resp)
}

func (ctl *DaftarKiController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdateDaftarKiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	resp, err := ctl.Svc.Update(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Data KI berhasil diperbarui", resp)
}

func (ctl *DaftarKiController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Data KI berhasil dihapus", fiber.Map{"daftar_ki_id": id})
}
