package app

import (
	"context"
	"sort"
	"time"
)

const checkTimeout = 5 * time.Second

// pinger defines the minimal interface for a dependency check.
type pinger interface {
	Ping(ctx context.Context) error
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthReport is the outcome of Health.
type HealthReport struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Health pings the database and the results site. Status is "down" if any
// component failed.
func (a *App) Health(ctx context.Context) HealthReport {
	return checkAll(ctx, a.checks, BuildVersion())
}

func checkAll(ctx context.Context, checks map[string]pinger, version string) HealthReport {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	report := HealthReport{
		Status:     "ok",
		Version:    version,
		Components: make(map[string]CompStatus, len(checks)),
	}
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		start := time.Now()
		err := checks[name].Ping(cctx)
		latency := time.Since(start)
		cancel()

		if err != nil {
			report.Components[name] = CompStatus{Status: "down", Error: err.Error()}
			report.Status = "down"
			continue
		}
		report.Components[name] = CompStatus{Status: "ok", Latency: latency.String()}
	}
	report.Timestamp = time.Now()
	return report
}
