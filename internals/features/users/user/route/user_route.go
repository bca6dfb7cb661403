// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/users/user/controller"
	"kiadmin_backend/internals/features/users/user/service"
)

// UserAdminRoutes dipasang di grup /api/a.
func UserAdminRoutes(admin fiber.Router, svc *service.UserService) {
	ctl := controller.NewUserController(svc)

	g := admin.Group("/users")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
