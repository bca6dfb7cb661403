// file: internals/features/ki/informasi_ki/route/informasi_ki_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/ki/informasi_ki/controller"
	"kiadmin_backend/internals/features/ki/informasi_ki/service"
)

func InformasiKiUserRoutes(user fiber.Router, svc *service.InformasiKiService) {
	ctl := controller.NewInformasiKiController(svc)

	g := user.Group("/informasi-ki")
	g.Get("/", ctl.List)
	g.Get("/cursor", ctl.ListCursor)
	g.Get("/all", ctl.All)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
