package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)

	RoundsPlayed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_rounds_total",
			Help: "Total resolved game rounds",
		},
		[]string{"game"},
	)
	CreditsWagered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_credits_wagered_total",
			Help: "Total credits wagered",
		},
		[]string{"game"},
	)
	CreditsPaid = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_credits_paid_total",
			Help: "Total credits paid out",
		},
		[]string{"game"},
	)
)

func init() {
	prometheus.MustRegister(RLRequests)
	prometheus.MustRegister(RLBlocked)
	prometheus.MustRegister(RoundsPlayed)
	prometheus.MustRegister(CreditsWagered)
	prometheus.MustRegister(CreditsPaid)
}

// ObserveRound records one settled round for the dashboards.
func ObserveRound(game string, bet, win int64) {
	RoundsPlayed.WithLabelValues(game).Inc()
	CreditsWagered.WithLabelValues(game).Add(float64(bet))
	CreditsPaid.WithLabelValues(game).Add(float64(win))
}
