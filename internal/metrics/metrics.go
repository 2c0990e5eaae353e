package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	GamesStarted   prometheus.Counter
	GamesFinished  *prometheus.CounterVec
	Moves          *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
	Requests       *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "minefield_games_started_total",
			Help: "Total games created",
		}),
		GamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minefield_games_finished_total",
				Help: "Total games that reached a terminal outcome",
			},
			[]string{"outcome"},
		),
		Moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minefield_moves_total",
				Help: "Total actions applied to boards",
			},
			[]string{"action", "outcome"},
		),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "minefield_active_sessions",
			Help: "Game sessions currently held in memory",
		}),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minefield_http_requests_total",
				Help: "Total HTTP requests by method and status code",
			},
			[]string{"method", "code"},
		),
	}

	reg.MustRegister(
		m.GamesStarted,
		m.GamesFinished,
		m.Moves,
		m.ActiveSessions,
		m.Requests,
	)

	return m
}
