package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/logger"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah lewat
// masa berlaku lebih dari ttlDays. Jalan setiap hari pukul 03:10.
func StartBlacklistCleanupScheduler(db *gorm.DB, ttlDays int, log *logger.Logger) (*cron.Cron, error) {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	if log == nil {
		log = logger.L()
	}
	grace := time.Duration(ttlDays) * 24 * time.Hour

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc("10 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		n, err := helperAuth.PurgeExpired(ctx, db, grace)
		if err != nil {
			log.Error("[CLEANUP] gagal hapus token blacklist", "err", err)
			return
		}
		log.Info("[CLEANUP] token blacklist dibersihkan", "deleted", n)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
