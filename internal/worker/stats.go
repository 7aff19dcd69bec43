package worker

import (
	"context"

	"github.com/pratik-mahalle/usuarios-api/internal/domain/usuario"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/metrics"
)

// Counter reports user counts per state
type Counter interface {
	CountByEstado(ctx context.Context) (map[usuario.Estado]int64, error)
}

// StatsJob publishes per-state user counts as Prometheus gauges
func StatsJob(counter Counter) JobFunc {
	return func(ctx context.Context) error {
		counts, err := counter.CountByEstado(ctx)
		if err != nil {
			return err
		}

		gauges := make(map[string]int64, len(counts))
		for estado, n := range counts {
			gauges[estado.String()] = n
		}
		metrics.SetUsersByEstado(gauges)
		return nil
	}
}

// Sweeper drops idle state, e.g. rate limiter buckets
type Sweeper interface {
	Cleanup() int
}

// CleanupJob runs s.Cleanup on every tick
func CleanupJob(s Sweeper) JobFunc {
	return func(ctx context.Context) error {
		s.Cleanup()
		return nil
	}
}
