// Package dynamics samples emergent in-match events from score, time, and
// possession: momentum swings, late-game pressure, and player motivation.
// Triggered events accumulate in an append-only log with age-based retrieval.
package dynamics

import (
	"log/slog"
	"time"

	"github.com/pitchlab/matchcore/internal/eventlog"
	"github.com/pitchlab/matchcore/internal/model/core"
	"github.com/pitchlab/matchcore/internal/rng"
)

// EventType classifies a dynamic event.
type EventType string

const (
	EventMomentumSwing    EventType = "momentum_swing"
	EventLateGamePressure EventType = "late_game_pressure"
	EventPlayerMotivation EventType = "player_motivation"
)

// Trigger tuning. Momentum scales with the goal difference; late-game
// pressure is independent of score.
const (
	momentumMinute        = 60.0
	momentumChancePerGoal = 0.05
	lateGameMinute        = 85.0
	lateGameChance        = 0.02
	defaultMotivation     = 0.0015

	// Default retrieval window and retention for the event log.
	DefaultActiveWindow = 60 * time.Second
	DefaultMaxAge       = 300 * time.Second
)

// Event is one triggered dynamic event. Impact maps coefficient names to
// signed deltas the match engine folds into its attack/defense formulas.
type Event struct {
	Type     EventType          `json:"type"`
	Time     time.Time          `json:"time"`
	Side     core.TeamSide      `json:"side,omitempty"`
	PlayerID *uint16            `json:"playerId,omitempty"`
	Impact   map[string]float64 `json:"impact"`
}

// Monitor samples dynamic events for one match instance.
type Monitor struct {
	logger           *slog.Logger
	rand             rng.Rand
	motivationChance float64
	log              *eventlog.Log[Event]
	now              func() time.Time
}

// NewMonitor creates a dynamics monitor. motivationChance is the per-tick
// probability of a background player-motivation event; values <= 0 use the
// default table value.
func NewMonitor(logger *slog.Logger, r rng.Rand, motivationChance float64) *Monitor {
	if motivationChance <= 0 {
		motivationChance = defaultMotivation
	}
	return &Monitor{
		logger:           logger,
		rand:             r,
		motivationChance: motivationChance,
		log:              eventlog.New[Event](),
		now:              time.Now,
	}
}

// CheckTriggers evaluates all trigger rules against the snapshot and returns
// the events fired this tick. Every fired event is appended to the log.
func (m *Monitor) CheckTriggers(snap core.Snapshot) []Event {
	var fired []Event

	diff := snap.Score.Diff()
	if diff != 0 && snap.ElapsedMin > momentumMinute {
		goals := diff
		if goals < 0 {
			goals = -goals
		}
		if rng.Chance(m.rand, float64(goals)*momentumChancePerGoal) {
			trailing := core.SideHome
			if diff > 0 {
				trailing = core.SideAway
			}
			fired = append(fired,
				Event{
					Type: EventMomentumSwing,
					Side: trailing,
					Impact: map[string]float64{
						"attackPower": 0.15,
						"defense":     -0.1,
						"mentality":   0.2,
					},
				},
				Event{
					Type: EventMomentumSwing,
					Side: trailing.Opponent(),
					Impact: map[string]float64{
						"attackPower": -0.15,
						"defense":     0.1,
						"mentality":   -0.2,
					},
				},
			)
		}
	}

	if snap.ElapsedMin > lateGameMinute && rng.Chance(m.rand, lateGameChance) {
		fired = append(fired, Event{
			Type: EventLateGamePressure,
			Impact: map[string]float64{
				"urgency":    0.3,
				"riskTaking": 0.2,
				"mentality":  -0.1,
			},
		})
	}

	if len(snap.Roster) > 0 && rng.Chance(m.rand, m.motivationChance) {
		player := snap.Roster[m.rand.Intn(len(snap.Roster))]
		id := player.ID
		fired = append(fired, Event{
			Type:     EventPlayerMotivation,
			Side:     player.Side,
			PlayerID: &id,
			Impact: map[string]float64{
				"form":        0.1,
				"confidence":  0.15,
				"performance": 0.08,
			},
		})
	}

	now := m.now()
	for i := range fired {
		fired[i].Time = now
		m.log.Append(now, fired[i])
		m.logger.Debug("dynamic event", "type", fired[i].Type, "side", fired[i].Side)
	}
	return fired
}

// Active returns the events newer than the given window, oldest first.
func (m *Monitor) Active(window time.Duration) []Event {
	if window <= 0 {
		window = DefaultActiveWindow
	}
	return m.log.Since(m.now().Add(-window))
}

// Cleanup purges events older than maxAge and returns the number removed.
func (m *Monitor) Cleanup(maxAge time.Duration) int {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return m.log.PurgeBefore(m.now().Add(-maxAge))
}

// Len returns the number of events currently retained.
func (m *Monitor) Len() int {
	return m.log.Len()
}
