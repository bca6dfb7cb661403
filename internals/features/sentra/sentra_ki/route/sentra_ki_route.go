// file: internals/features/sentra/sentra_ki/route/sentra_ki_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/sentra/sentra_ki/controller"
	"kiadmin_backend/internals/features/sentra/sentra_ki/service"
)

func SentraKiAdminRoutes(admin fiber.Router, svc *service.SentraKiService) {
	ctl := controller.NewSentraKiController(svc)

	g := admin.Group("/sentra-ki")
	g.Get("/", ctl.List)
	g.Get("/cursor", ctl.ListCursor)
	g.Get("/all", ctl.All)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
