// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kiadmin_backend/internals/configs"
	"kiadmin_backend/internals/constants"
	dashboardRoute "kiadmin_backend/internals/features/dashboard/route"
	documentRoute "kiadmin_backend/internals/features/documents/route"
	daftarKiRoute "kiadmin_backend/internals/features/ki/daftar_ki/route"
	informasiKiRoute "kiadmin_backend/internals/features/ki/informasi_ki/route"
	permohonanKiRoute "kiadmin_backend/internals/features/ki/permohonan_ki/route"
	instansiRoute "kiadmin_backend/internals/features/master/instansi/route"
	pksRoute "kiadmin_backend/internals/features/sentra/pks/route"
	sentraKiRoute "kiadmin_backend/internals/features/sentra/sentra_ki/route"
	authController "kiadmin_backend/internals/features/users/auth/controller"
	authRoute "kiadmin_backend/internals/features/users/auth/route"
	userRoute "kiadmin_backend/internals/features/users/user/route"
	"kiadmin_backend/internals/helpers/logger"
	authMiddleware "kiadmin_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes memasang seluruh grup:
//
//	/api/auth    login, register, logout, me
//	/api/public  dashboard publik (tanpa login)
//	/api/u       user yang sudah login (admin juga boleh)
//	/api/a       khusus admin
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, svc *Services) {
	startTime = time.Now()
	log := logger.L()

	requireAuth := authMiddleware.AuthMiddleware(db, svc.Tokens)
	api := app.Group("/api")

	// ===================== AUTH =====================
	log.Info("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, authController.NewAuthController(svc.Auth, cfg.AppEnv == "production"), requireAuth)

	// ===================== GROUPS =====================
	public := api.Group("/public")
	user := api.Group("/u", requireAuth,
		authMiddleware.OnlyRoles(constants.RoleErrorUser("KI"), constants.AllRoles...))
	admin := api.Group("/a", requireAuth,
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("master data"), constants.AdminOnly...))

	// ===================== MOUNT ROUTES =====================
	log.Info("[INFO] Mounting public routes...")
	dashboardRoute.DashboardPublicRoutes(public, svc.Dashboard)

	log.Info("[INFO] Mounting user routes...")
	daftarKiRoute.DaftarKiUserRoutes(user, svc.DaftarKi)
	permohonanKiRoute.PermohonanKiUserRoutes(user, svc.PermohonanKi)
	informasiKiRoute.InformasiKiUserRoutes(user, svc.InformasiKi)
	documentRoute.DocumentUserRoutes(user, svc.Documents)
	dashboardRoute.DashboardUserRoutes(user, svc.Dashboard)

	log.Info("[INFO] Mounting admin routes...")
	instansiRoute.InstansiAdminRoutes(admin, svc.Instansi)
	sentraKiRoute.SentraKiAdminRoutes(admin, svc.SentraKi)
	pksRoute.PksAdminRoutes(admin, svc.Pks)
	userRoute.UserAdminRoutes(admin, svc.Users)
	dashboardRoute.DashboardAdminRoutes(admin, svc.Dashboard)
}
