package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	database "kiadmin_backend/internals/databases"
	"kiadmin_backend/internals/helpers/storage"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, st storage.Provider, publicBase string) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("KI Admin backend berjalan 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if err := database.Ping(ctx, db); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"storage":        st.Name(),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int64(time.Since(startTime).Seconds()),
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// berkas upload lokal (STORAGE_DRIVER=local)
	if lp, ok := st.(*storage.LocalProvider); ok {
		if publicBase == "" {
			publicBase = "/files"
		}
		app.Static(publicBase, lp.Root(), fiber.Static{ByteRange: true, MaxAge: 3600})
	}
}
