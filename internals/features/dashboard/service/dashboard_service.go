// file: internals/features/dashboard/service/dashboard_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"kiadmin_backend/internals/features/dashboard/dto"
	"kiadmin_backend/internals/features/dashboard/stats"
	"kiadmin_backend/internals/features/dashboard/status"
	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
	pksDto "kiadmin_backend/internals/features/sentra/pks/dto"
	sentraModel "kiadmin_backend/internals/features/sentra/sentra_ki/model"
	userModel "kiadmin_backend/internals/features/users/user/model"
	"kiadmin_backend/internals/helpers/cache"
	"kiadmin_backend/internals/helpers/kidate"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/logger"
)

type PksReader interface {
	StatusSummary(ctx context.Context) (status.Summary, error)
	All(ctx context.Context, withURL bool) ([]pksDto.PksResponse, error)
}

type FilingReader interface {
	Filings(ctx context.Context) ([]stats.Filing, error)
	Count(ctx context.Context) (int64, error)
}

type SnapshotReader interface {
	// owner nil = semua user.
	Snapshots(ctx context.Context, owner *uuid.UUID) ([]stats.Snapshot, error)
}

type DashboardService struct {
	DB        *gorm.DB
	Pks       PksReader
	Filings   FilingReader
	Snapshots SnapshotReader
	Cache     cache.Store
	TTL       time.Duration
	Loc       *time.Location
	Now       func() time.Time
	// DayTicks berdetak setiap ganti hari agar status PKS di stream ikut berubah.
	DayTicks func(ctx context.Context) <-chan time.Time

	summary *livequery.Query[status.Summary]
}

func NewDashboardService(db *gorm.DB, pks PksReader, filings FilingReader, snaps SnapshotReader, c cache.Store, ttl time.Duration, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	s := &DashboardService{
		DB: db, Pks: pks, Filings: filings, Snapshots: snaps,
		Cache: c, TTL: ttl, Loc: loc, Now: time.Now,
	}
	s.DayTicks = s.midnights
	s.summary = livequery.NewQuery[status.Summary](s.Pks.StatusSummary)
	return s
}

func (s *DashboardService) today() time.Time { return s.Now().In(s.Loc) }

// CurrentYear dipakai controller sebagai default parameter ?year=.
func (s *DashboardService) CurrentYear() int { return s.today().Year() }

// remember membungkus cache.Remember; tanpa cache langsung menjalankan fn.
func remember[T any](ctx context.Context, s *DashboardService, name, topic string, fn func(context.Context) (T, error), parts ...any) (T, error) {
	if s.Cache == nil {
		return fn(ctx)
	}
	key, err := cache.Key(ctx, s.Cache, name, topic, parts...)
	if err != nil {
		logger.L().Warn("cache key gagal, lanjut tanpa cache", "name", name, "err", err)
		return fn(ctx)
	}
	return cache.Remember(ctx, s.Cache, key, s.TTL, fn)
}

/* ===============================
   PKS
=================================*/

// PksSummary di-cache per hari karena status bergantung pada tanggal hari ini.
func (s *DashboardService) PksSummary(ctx context.Context) (status.Summary, error) {
	day := s.today().Format("2006-01-02")
	return remember(ctx, s, "pks_summary", livequery.TopicPks, s.Pks.StatusSummary, day)
}

// PksList: daftar PKS lengkap dengan status untuk dashboard Sentra KI.
// Tidak di-cache karena URL dokumen bersifat sementara.
func (s *DashboardService) PksList(ctx context.Context) ([]pksDto.PksResponse, error) {
	return s.Pks.All(ctx, true)
}

// SummaryQuery: live query bersama untuk stream SSE.
func (s *DashboardService) SummaryQuery() *livequery.Query[status.Summary] { return s.summary }

// StartLive menjalankan refetch ringkasan PKS setiap ada perubahan dan setiap
// tengah malam (zona aplikasi) sampai ctx selesai. bus boleh nil.
func (s *DashboardService) StartLive(ctx context.Context, bus livequery.Bus) {
	go s.summary.Watch(ctx, bus, livequery.TopicPks, s.DayTicks(ctx))
}

func (s *DashboardService) midnights(ctx context.Context) <-chan time.Time {
	out := make(chan time.Time, 1)
	go func() {
		for {
			now := s.today()
			timer := time.NewTimer(kidate.NextMidnight(now).Sub(now))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case t := <-timer.C:
				select {
				case out <- t:
				default:
				}
			}
		}
	}()
	return out
}

/* ===============================
   ADMIN OVERVIEW
=================================*/

func (s *DashboardService) Overview(ctx context.Context) (*dto.Overview, error) {
	var out dto.Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sum, err := s.PksSummary(gctx)
		out.Pks = sum
		return err
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&instansiModel.InstansiModel{}).Count(&out.InstansiCount).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&sentraModel.SentraKiModel{}).Count(&out.SentraKiCount).Error
	})
	g.Go(func() error {
		n, err := s.Filings.Count(gctx)
		out.DaftarKiCount = n
		return err
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&userModel.UserModel{}).Count(&out.UserCount).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.Cards = dto.PksCards(out.Pks)
	return &out, nil
}

/* ===============================
   DAFTAR KI (pengajuan)
=================================*/

func (s *DashboardService) FilingStats(ctx context.Context, year int) (*dto.FilingStats, error) {
	rows, err := remember(ctx, s, "filings", livequery.TopicDaftarKi, s.Filings.Filings)
	if err != nil {
		return nil, err
	}
	return &dto.FilingStats{
		Year:   year,
		Counts: stats.FilingTypeCounts(rows, year),
		Chart:  stats.FilingChartByType(rows, year),
	}, nil
}

/* ===============================
   PERMOHONAN KI (snapshot)
=================================*/

func (s *DashboardService) snapshots(ctx context.Context, owner *uuid.UUID) ([]stats.Snapshot, error) {
	scope := "all"
	if owner != nil {
		scope = owner.String()
	}
	return remember(ctx, s, "snapshots", livequery.TopicPermohonanKi, func(ctx context.Context) ([]stats.Snapshot, error) {
		return s.Snapshots.Snapshots(ctx, owner)
	}, scope)
}

func (s *DashboardService) SnapshotStats(ctx context.Context, owner *uuid.UUID, year int) (*dto.SnapshotStats, error) {
	rows, err := s.snapshots(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &dto.SnapshotStats{Year: year, Counts: stats.SnapshotTypeCounts(rows, year, s.Loc)}, nil
}

func (s *DashboardService) SnapshotCompare(ctx context.Context, owner *uuid.UUID, yearFrom, yearTo int) (*dto.SnapshotCompare, error) {
	rows, err := s.snapshots(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &dto.SnapshotCompare{
		YearFrom: yearFrom,
		YearTo:   yearTo,
		Buckets:  stats.SnapshotYearCompare(rows, yearFrom, yearTo, s.Loc),
	}, nil
}
