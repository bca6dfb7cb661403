// file: internals/features/ki/permohonan_ki/route/permohonan_ki_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/ki/permohonan_ki/controller"
	"kiadmin_backend/internals/features/ki/permohonan_ki/service"
)

func PermohonanKiUserRoutes(user fiber.Router, svc *service.PermohonanKiService) {
	ctl := controller.NewPermohonanKiController(svc)

	g := user.Group("/permohonan-ki")
	g.Get("/", ctl.List)
	g.Get("/cursor", ctl.ListCursor)
	g.Get("/all", ctl.All)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
