// file: internals/features/ki/daftar_ki/route/daftar_ki_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/ki/daftar_ki/controller"
	"kiadmin_backend/internals/features/ki/daftar_ki/service"
)

// DaftarKiUserRoutes: semua user yang login boleh mengelola daftar KI.
func DaftarKiUserRoutes(user fiber.Router, svc *service.DaftarKiService) {
	ctl := controller.NewDaftarKiController(svc)

	g := user.Group("/daftar-ki")
	g.Get("/", ctl.List)
	g.Get("/cursor", ctl.ListCursor)
	g.Get("/all", ctl.All)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
