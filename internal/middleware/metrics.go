package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the fiberprometheus middleware that tracks HTTP
// request counts and latencies under the given service name. The
// middleware registers collectors in the default registry, so it is
// created once per process regardless of how many servers are built.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware returns the HTTP metrics collection handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wayfare_redis_errors_total",
	Help: "Total number of Redis command errors",
}, []string{"command"})

// EngagementOps counts engagement mutations by kind and outcome, so
// redundant operations are visible next to effective ones.
var EngagementOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wayfare_engagement_ops_total",
	Help: "Total number of engagement operations by kind and status",
}, []string{"kind", "status"})

// NotificationsWritten counts persisted notifications by type.
var NotificationsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wayfare_notifications_written_total",
	Help: "Total number of notifications written",
}, []string{"type"})

// StatsRecomputes counts travel statistics recomputations.
var StatsRecomputes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "wayfare_statistics_recomputes_total",
	Help: "Total number of travel statistics recomputations",
})
