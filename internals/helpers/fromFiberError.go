package helper

import "github.com/gofiber/fiber/v2"

// FiberErrorHandler dipasang di fiber.Config.ErrorHandler supaya error yang
// lolos dari handler (termasuk *fiber.Error dari middleware) tetap berbentuk
// ErrorResponse.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	return JsonFromError(c, err)
}
