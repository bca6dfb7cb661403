// file: internals/features/ki/informasi_ki/controller/informasi_ki_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/ki/informasi_ki/dto"
	"kiadmin_backend/internals/features/ki/informasi_ki/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
)

type InformasiKiController struct {
	Svc *service.InformasiKiService
}

func NewInformasiKiController(svc *service.InformasiKiService) *InformasiKiController {
	return &InformasiKiController{Svc: svc}
}

func (ctl *InformasiKiController) List(c *fiber.Ctx) error {
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
	return helper.JsonList(c, "Daftar informasi KI", rows, info)
}

func (ctl *InformasiKiController) ListCursor(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "Daftar informasi KI", res)
}

func (ctl *InformasiKiController) All(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, err := ctl.Svc.All(c.UserContext(), actor)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Semua informasi KI", rows)
}

func (ctl *InformasiKiController) GetByID(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "Detail informasi KI", m)
}

func (ctl *InformasiKiController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.CreateInformasiKiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := ctl.Svc.Create(c.UserContext(), actor, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Informasi KI berhasil ditambahkan", m)
}

func (ctl *InformasiKiController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdateInformasiKiRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := ctl.Svc.Update(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Informasi KI berhasil diperbarui", m)
}

func (ctl *InformasiKiController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Informasi KI berhasil dihapus", fiber.Map{"informasi_ki_id": id})
}
