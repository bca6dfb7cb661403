// Package metrics mendaftarkan metrik Prometheus aplikasi.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kiadmin",
		Name:      "http_requests_total",
		Help:      "Jumlah request HTTP per route, method, dan status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kiadmin",
		Name:      "http_request_duration_seconds",
		Help:      "Durasi request HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kiadmin",
		Name:      "mutations_total",
		Help:      "Mutasi data per tabel dan operasi.",
	}, []string{"entity", "op"})

	DocumentUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kiadmin",
		Name:      "document_uploads_total",
		Help:      "Upload lampiran per hasil.",
	}, []string{"result"})

	ReapedDocuments = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kiadmin",
		Name:      "documents_reaped_total",
		Help:      "Lampiran yatim yang dihapus reaper.",
	})
)
