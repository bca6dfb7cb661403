// file: internals/route/services.go
package routes

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"kiadmin_backend/internals/configs"
	dashboardService "kiadmin_backend/internals/features/dashboard/service"
	"kiadmin_backend/internals/features/dashboard/status"
	documentService "kiadmin_backend/internals/features/documents/service"
	daftarKiService "kiadmin_backend/internals/features/ki/daftar_ki/service"
	informasiKiService "kiadmin_backend/internals/features/ki/informasi_ki/service"
	permohonanKiService "kiadmin_backend/internals/features/ki/permohonan_ki/service"
	instansiService "kiadmin_backend/internals/features/master/instansi/service"
	pksService "kiadmin_backend/internals/features/sentra/pks/service"
	sentraKiService "kiadmin_backend/internals/features/sentra/sentra_ki/service"
	authService "kiadmin_backend/internals/features/users/auth/service"
	userService "kiadmin_backend/internals/features/users/user/service"
	"kiadmin_backend/internals/helpers/cache"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/storage"
)

// Infra: koneksi eksternal yang sudah dibuka oleh command serve.
// Redis dan Bus boleh nil.
type Infra struct {
	DB      *gorm.DB
	Storage storage.Provider
	Redis   *goredis.Client
	Bus     livequery.Bus
}

// Services berisi seluruh service domain yang sudah saling terhubung.
type Services struct {
	Tokens       *authService.TokenService
	Auth         *authService.AuthService
	Users        *userService.UserService
	Documents    *documentService.DocumentService
	Instansi     *instansiService.InstansiService
	SentraKi     *sentraKiService.SentraKiService
	Pks          *pksService.PksService
	DaftarKi     *daftarKiService.DaftarKiService
	PermohonanKi *permohonanKiService.PermohonanKiService
	InformasiKi  *informasiKiService.InformasiKiService
	Dashboard    *dashboardService.DashboardService
	Bus          livequery.Bus
	Storage      storage.Provider
}

func NewServices(cfg configs.Config, infra Infra) *Services {
	db := infra.DB
	loc := cfg.Location()

	var store cache.Store = cache.NewMemoryStore()
	if infra.Redis != nil {
		store = cache.NewRedisStore(infra.Redis)
	}
	notifier := &livequery.Notifier{Bus: infra.Bus, Cache: store}

	tokens := authService.NewTokenService(cfg.JWTSecret, cfg.JWTAccessTTL)
	docs := documentService.NewDocumentService(db, infra.Storage, cfg.MaxUploadBytes)
	classifier := status.NewClassifier(cfg.Lookahead(), loc)

	pks := pksService.NewPksService(db, docs, classifier, notifier)
	daftar := daftarKiService.NewDaftarKiService(db, docs, notifier)
	permohonan := permohonanKiService.NewPermohonanKiService(db, loc, notifier)

	ttl := cfg.StatsCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Services{
		Tokens:       tokens,
		Auth:         authService.NewAuthService(db, tokens),
		Users:        userService.NewUserService(db, notifier),
		Documents:    docs,
		Instansi:     instansiService.NewInstansiService(db, notifier),
		SentraKi:     sentraKiService.NewSentraKiService(db, notifier),
		Pks:          pks,
		DaftarKi:     daftar,
		PermohonanKi: permohonan,
		InformasiKi:  informasiKiService.NewInformasiKiService(db, notifier),
		Dashboard:    dashboardService.NewDashboardService(db, pks, daftar, permohonan, store, ttl, loc),
		Bus:          infra.Bus,
		Storage:      infra.Storage,
	}
}
