// file: internals/features/sentra/pks/route/pks_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/sentra/pks/controller"
	"kiadmin_backend/internals/features/sentra/pks/service"
)

func PksAdminRoutes(admin fiber.Router, svc *service.PksService) {
	ctl := controller.NewPksController(svc)

	g := admin.Group("/pks")
	g.Get("/", ctl.List)
	g.Get("/cursor", ctl.ListCursor)
	g.Get("/all", ctl.All)
	g.Get("/summary", ctl.Summary)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
