// file: internals/features/master/instansi/route/instansi_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/master/instansi/controller"
	"kiadmin_backend/internals/features/master/instansi/service"
)

// InstansiAdminRoutes dipasang di grup /api/a (khusus admin).
func InstansiAdminRoutes(admin fiber.Router, svc *service.InstansiService) {
	ctl := controller.NewInstansiController(svc)

	g := admin.Group("/instansi")
	g.Get("/", ctl.List)
	g.Get("/cursor", ctl.ListCursor)
	g.Get("/all", ctl.All)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
