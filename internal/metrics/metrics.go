package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "tictactoe"

const (
	MoveApplied = "applied"
	MoveIgnored = "ignored"
)

type Metrics struct {
	GamesCreated prometheus.Counter
	Moves        *prometheus.CounterVec
	Jumps        prometheus.Counter
	GamesDecided *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GamesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_created_total",
			Help:      "Number of games started.",
		}),
		Moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Number of square clicks by result.",
		}, []string{"result"}),
		Jumps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_jumps_total",
			Help:      "Number of jumps to a previous step.",
		}),
		GamesDecided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_decided_total",
			Help:      "Number of moves that decided a game, by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.GamesCreated, m.Moves, m.Jumps, m.GamesDecided)

	return m
}

func (that *Metrics) GameCreated() {
	that.GamesCreated.Inc()
}

func (that *Metrics) MoveApplied() {
	that.Moves.WithLabelValues(MoveApplied).Inc()
}

func (that *Metrics) MoveIgnored() {
	that.Moves.WithLabelValues(MoveIgnored).Inc()
}

func (that *Metrics) Jumped() {
	that.Jumps.Inc()
}

// GameDecided records a winning mark or "-" for a draw.
func (that *Metrics) GameDecided(outcome string) {
	that.GamesDecided.WithLabelValues(outcome).Inc()
}
