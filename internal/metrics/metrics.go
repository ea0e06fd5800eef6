// Package metrics exposes countdown and storage counters in the Prometheus
// text format while a countdown screen is open.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ayoisaiah/chime/countdown"
)

const (
	metricPrefix = "chime_"

	resultSuccess = "success"
	resultError   = "error"

	shutdownTimeout = 2 * time.Second
)

// Metrics bundles chime metrics on a private registry.
type Metrics struct {
	Registry       *prometheus.Registry
	TicksTotal     prometheus.Counter
	Completions    *prometheus.CounterVec
	Remaining      prometheus.Gauge
	StoreOpsTotal  *prometheus.CounterVec
	TriggerErrors  prometheus.Counter
	CountdownState *prometheus.CounterVec
}

// New constructs and registers metrics.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "countdown_ticks_total",
			Help: "Total countdown ticks processed",
		}),
		Completions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "alarm_completions_total",
				Help: "Total alarms that reached zero by kind",
			},
			[]string{"kind"},
		),
		Remaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "countdown_remaining_seconds",
			Help: "Seconds left on the active countdown",
		}),
		StoreOpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "store_operations_total",
				Help: "Total alarm store operations by op and result",
			},
			[]string{"op", "result"},
		),
		TriggerErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "trigger_errors_total",
			Help: "Total failed sound, notification or command side effects",
		}),
		CountdownState: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "countdown_events_total",
				Help: "Total countdown state changes by event",
			},
			[]string{"event"},
		),
	}

	m.Registry.MustRegister(
		m.TicksTotal,
		m.Completions,
		m.Remaining,
		m.StoreOpsTotal,
		m.TriggerErrors,
		m.CountdownState,
	)

	return m
}

// ObserveStore records a store operation. It matches store.Observer.
func (m *Metrics) ObserveStore(op string, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}

	m.StoreOpsTotal.WithLabelValues(op, result).Inc()
}

// CountdownObserver returns a countdown observer that records events for an
// alarm of the given kind.
func (m *Metrics) CountdownObserver(kind string) func(countdown.Event) {
	return func(ev countdown.Event) {
		m.Remaining.Set(float64(ev.State.Remaining))

		switch ev.Type {
		case countdown.EventTick:
			m.TicksTotal.Inc()
		case countdown.EventCompleted:
			m.Completions.WithLabelValues(kind).Inc()
			m.CountdownState.WithLabelValues(ev.Type.String()).Inc()
		default:
			m.CountdownState.WithLabelValues(ev.Type.String()).Inc()
		}
	}
}

// ObserveTrigger counts a failed alarm side effect.
func (m *Metrics) ObserveTrigger(err error) {
	if err != nil {
		m.TriggerErrors.Inc()
	}
}

// Handler serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled. It returns once the
// listener is ready so that callers can rely on the address being bound.
func (m *Metrics) Serve(ctx context.Context, addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		err := srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server stopped", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			shutdownTimeout,
		)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("serving metrics", "addr", ln.Addr().String())

	return ln.Addr(), nil
}
