// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"bufio"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kiadmin_backend/internals/features/dashboard/dto"
	"kiadmin_backend/internals/features/dashboard/service"
	"kiadmin_backend/internals/features/dashboard/status"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/livequery"
)

const streamKeepAlive = 15 * time.Second

type DashboardController struct {
	Svc *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

/* ===============================
   ADMIN
=================================*/

// GET /api/a/dashboard
func (ctl *DashboardController) Overview(c *fiber.Ctx) error {
	out, err := ctl.Svc.Overview(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Ringkasan dashboard", out)
}

/* ===============================
   PUBLIC
=================================*/

// GET /api/public/pks
func (ctl *DashboardController) PksList(c *fiber.Ctx) error {
	rows, err := ctl.Svc.PksList(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Daftar PKS", rows)
}

// GET /api/public/pks/summary
func (ctl *DashboardController) PksSummary(c *fiber.Ctx) error {
	sum, err := ctl.Svc.PksSummary(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Ringkasan PKS", fiber.Map{"summary": sum, "cards": dto.PksCards(sum)})
}

type summaryEvent struct {
	Summary status.Summary `json:"summary"`
	Cards   []dto.Card     `json:"cards"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
	Version uint64         `json:"version"`
}

func writeSummaryEvent(w *bufio.Writer, st livequery.State[status.Summary]) error {
	ev := summaryEvent{
		Summary: st.Value,
		Cards:   dto.PksCards(st.Value),
		Loading: st.Loading,
		Version: st.Version,
	}
	if st.Err != nil {
		ev.Error = "Gagal memuat ringkasan PKS"
	}
	raw, err := sonic.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: summary\nid: %d\ndata: %s\n\n", st.Version, raw); err != nil {
		return err
	}
	return w.Flush()
}

// GET /api/public/pks/summary/stream (Server-Sent Events)
func (ctl *DashboardController) PksSummaryStream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	q := ctl.Svc.SummaryQuery()
	updates, cancel := q.Subscribe()

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		if err := writeSummaryEvent(w, q.Snapshot()); err != nil {
			return
		}
		ticker := time.NewTicker(streamKeepAlive)
		defer ticker.Stop()
		for {
			select {
			case st := <-updates:
				if err := writeSummaryEvent(w, st); err != nil {
					return
				}
			case <-ticker.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
	return nil
}

// GET /api/public/daftar-ki/stats?year=
func (ctl *DashboardController) FilingStats(c *fiber.Ctx) error {
	year, err := helper.ParseYearQuery(c, "year", ctl.Svc.CurrentYear())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.FilingStats(c.UserContext(), year)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Statistik pengajuan KI", out)
}

// GET /api/public/permohonan-ki/stats?year=
func (ctl *DashboardController) PublicSnapshotStats(c *fiber.Ctx) error {
	return ctl.snapshotStats(c, nil)
}

// GET /api/public/permohonan-ki/compare?year_from=&year_to=
func (ctl *DashboardController) PublicSnapshotCompare(c *fiber.Ctx) error {
	return ctl.snapshotCompare(c, nil)
}

/* ===============================
   USER (data milik sendiri)
=================================*/

// GET /api/u/dashboard/permohonan-ki/stats?year=
func (ctl *DashboardController) MySnapshotStats(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return ctl.snapshotStats(c, &actor.UserID)
}

// GET /api/u/dashboard/permohonan-ki/compare?year_from=&year_to=
func (ctl *DashboardController) MySnapshotCompare(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return ctl.snapshotCompare(c, &actor.UserID)
}

func (ctl *DashboardController) snapshotStats(c *fiber.Ctx, owner *uuid.UUID) error {
	year, err := helper.ParseYearQuery(c, "year", ctl.Svc.CurrentYear())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.SnapshotStats(c.UserContext(), owner, year)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Statistik permohonan KI", out)
}

func (ctl *DashboardController) snapshotCompare(c *fiber.Ctx, owner *uuid.UUID) error {
	cur := ctl.Svc.CurrentYear()
	yearTo, err := helper.ParseYearQuery(c, "year_to", cur)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	yearFrom, err := helper.ParseYearQuery(c, "year_from", yearTo-1)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.SnapshotCompare(c.UserContext(), owner, yearFrom, yearTo)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Perbandingan permohonan KI", out)
}
