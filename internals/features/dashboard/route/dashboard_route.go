// file: internals/features/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/dashboard/controller"
	"kiadmin_backend/internals/features/dashboard/service"
)

// DashboardPublicRoutes: /api/public (tanpa login).
func DashboardPublicRoutes(public fiber.Router, svc *service.DashboardService) {
	ctl := controller.NewDashboardController(svc)

	public.Get("/pks", ctl.PksList)
	public.Get("/pks/summary", ctl.PksSummary)
	public.Get("/pks/summary/stream", ctl.PksSummaryStream)
	public.Get("/daftar-ki/stats", ctl.FilingStats)
	public.Get("/permohonan-ki/stats", ctl.PublicSnapshotStats)
	public.Get("/permohonan-ki/compare", ctl.PublicSnapshotCompare)
}

// DashboardUserRoutes: /api/u/dashboard.
func DashboardUserRoutes(user fiber.Router, svc *service.DashboardService) {
	ctl := controller.NewDashboardController(svc)

	g := user.Group("/dashboard")
	g.Get("/daftar-ki/stats", ctl.FilingStats)
	g.Get("/permohonan-ki/stats", ctl.MySnapshotStats)
	g.Get("/permohonan-ki/compare", ctl.MySnapshotCompare)
}

// DashboardAdminRoutes: /api/a/dashboard.
func DashboardAdminRoutes(admin fiber.Router, svc *service.DashboardService) {
	ctl := controller.NewDashboardController(svc)
	admin.Get("/dashboard", ctl.Overview)
}
