// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/users/auth/controller"
	rateLimiter "kiadmin_backend/internals/middlewares"
)

// AuthRoutes: base /api/auth. requireAuth dipasang hanya di endpoint yang butuh sesi.
func AuthRoutes(api fiber.Router, ctl *controller.AuthController, requireAuth fiber.Handler) {
	baseAuth := api.Group("/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), ctl.Register)

	// 🔐 Butuh login
	baseAuth.Post("/logout", requireAuth, ctl.Logout)
	baseAuth.Get("/me", requireAuth, ctl.Me)
	baseAuth.Post("/change-password", requireAuth, ctl.ChangePassword)
}
