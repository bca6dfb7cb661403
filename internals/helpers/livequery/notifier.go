package livequery

import (
	"context"

	"kiadmin_backend/internals/helpers/cache"
	"kiadmin_backend/internals/helpers/logger"
	"kiadmin_backend/internals/helpers/metrics"
)

// Notifier dipanggil service setelah mutasi berhasil: versi cache naik,
// subscriber live query diberi tahu, metrik dicatat.
type Notifier struct {
	Bus   Bus
	Cache cache.Store
}

// Changed aman dipanggil dengan Notifier nil.
func (n *Notifier) Changed(ctx context.Context, topic, op string) {
	metrics.Mutations.WithLabelValues(topic, op).Inc()
	if n == nil {
		return
	}
	if n.Cache != nil {
		if err := n.Cache.Bump(ctx, topic); err != nil {
			logger.L().Warn("bump versi cache gagal", "topic", topic, "err", err)
		}
	}
	if n.Bus != nil {
		if err := n.Bus.Publish(ctx, topic); err != nil {
			logger.L().Warn("publish perubahan gagal", "topic", topic, "err", err)
		}
	}
}
