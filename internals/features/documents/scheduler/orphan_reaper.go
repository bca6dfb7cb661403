// file: internals/features/documents/scheduler/orphan_reaper.go
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"kiadmin_backend/internals/features/documents/service"
	"kiadmin_backend/internals/helpers/logger"
)

const OrphanReaperSchedule = "20 * * * *"

// StartOrphanReaper menjalankan pembersihan upload yatim tiap jam.
// Cron yang dikembalikan dihentikan pemanggil saat shutdown.
func StartOrphanReaper(svc *service.DocumentService, ttl time.Duration, log *logger.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(OrphanReaperSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()

		n, err := svc.ReapOrphans(ctx, ttl, 500)
		if err != nil {
			log.Error("[DOC-REAPER] gagal", "err", err)
			return
		}
		if n > 0 {
			log.Info("[DOC-REAPER] berkas yatim dihapus", "count", n)
		}
	})
	if err != nil {
		return nil, err
	}
	log.Info("[DOC-REAPER] started", "schedule", OrphanReaperSchedule, "ttl", ttl.String())
	c.Start()
	return c, nil
}
