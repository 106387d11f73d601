package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/mmynk/addressbook/internal/command"
)

// Command outcome labels.
const (
	statusOK       = "ok"
	statusRejected = "rejected"
	statusFailed   = "failed"
)

// Metrics records command counts and durations in a Prometheus registry.
type Metrics struct {
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the command collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_commands_total",
			Help: "Number of commands run, by command and outcome.",
		}, []string{"command", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "assistant_command_duration_seconds",
			Help:    "Time spent running a command.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 6),
		}, []string{"command"}),
	}
	reg.MustRegister(m.commands, m.duration)
	return m
}

// Middleware returns a command middleware that counts and times every command run.
func (m *Metrics) Middleware() command.Middleware {
	return func(name string, next command.HandlerFunc) command.HandlerFunc {
		return func(ctx context.Context, args []string) (string, error) {
			start := time.Now()
			out, err := next(ctx, args)

			status := statusOK
			switch {
			case err == nil, errors.Is(err, command.ErrQuit):
			case isUserError(err):
				status = statusRejected
			default:
				status = statusFailed
			}
			m.commands.WithLabelValues(name, status).Inc()
			m.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())

			return out, err
		}
	}
}

// WriteText writes every metric family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
