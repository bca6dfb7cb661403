// file: internals/features/documents/route/document_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/documents/controller"
	"kiadmin_backend/internals/features/documents/service"
	rateLimiter "kiadmin_backend/internals/middlewares"
)

// DocumentUserRoutes dipasang di grup /api/u (semua user yang login).
func DocumentUserRoutes(user fiber.Router, svc *service.DocumentService) {
	ctl := controller.NewDocumentController(svc)

	g := user.Group("/documents")
	g.Post("/", rateLimiter.UploadRateLimiter(), ctl.Upload)
	g.Get("/url", ctl.URL)
}
