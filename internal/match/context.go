// Package match wires the five decision modules into a per-match context.
// One Context owns all mutable state for one simulated match; nothing is
// shared across matches. Access is strictly sequential within a tick.
package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/pitchlab/matchcore/internal/dynamics"
	"github.com/pitchlab/matchcore/internal/environment"
	"github.com/pitchlab/matchcore/internal/model/core"
	"github.com/pitchlab/matchcore/internal/officiating"
	"github.com/pitchlab/matchcore/internal/pitch"
	"github.com/pitchlab/matchcore/internal/positioning"
	"github.com/pitchlab/matchcore/internal/rng"
	"github.com/pitchlab/matchcore/internal/setpiece"
)

// ErrInvalidTactics is returned when formation tactics fail validation at
// match setup. Tactics are never rejected mid-match.
var ErrInvalidTactics = errors.New("invalid formation tactics")

// Config assembles everything a match context needs at setup.
type Config struct {
	Dims             pitch.Dimensions
	Seed             int64
	MistakeRate      float64
	Weather          environment.WeatherType
	FieldCondition   environment.FieldCondition
	MotivationChance float64
	HomeTactics      core.FormationTactics
	AwayTactics      core.FormationTactics
}

// TickResult carries everything the match engine applies back to match
// state after one step.
type TickResult struct {
	Targets     map[uint16]core.PositionVector
	Multipliers environment.Multipliers
	Injuries    []environment.InjuryEvent
	Events      []dynamics.Event
}

// Context owns one match's decision modules and state.
type Context struct {
	mu     sync.RWMutex
	logger *slog.Logger
	cfg    Config

	positioning *positioning.Engine
	referee     *officiating.Referee
	environment *environment.Engine
	dynamics    *dynamics.Monitor
	setpieces   *setpiece.Planner

	metrics *metrics
	tick    uint64
}

// New creates a match context. Formation tactics are validated here, before
// the first tick; a match never starts with tactics that fail validation.
func New(logger *slog.Logger, cfg Config) (*Context, error) {
	if cfg.Dims.Width <= 0 || cfg.Dims.Height <= 0 {
		cfg.Dims = pitch.Standard
	}

	posEngine := positioning.NewEngine(cfg.Dims)
	for side, tactics := range map[core.TeamSide]core.FormationTactics{
		core.SideHome: cfg.HomeTactics,
		core.SideAway: cfg.AwayTactics,
	} {
		if !posEngine.Validate(tactics) {
			return nil, fmt.Errorf("%w: %s side, formation %q", ErrInvalidTactics, side, tactics.Name)
		}
	}

	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	r := rng.New(cfg.Seed)
	ctx := &Context{
		logger:      logger,
		cfg:         cfg,
		positioning: posEngine,
		referee:     officiating.NewReferee(logger, r, cfg.Dims, cfg.MistakeRate),
		environment: environment.NewEngine(logger, r, cfg.Weather, cfg.FieldCondition),
		dynamics:    dynamics.NewMonitor(logger, r, cfg.MotivationChance),
		setpieces:   setpiece.NewPlanner(cfg.Dims),
		metrics:     m,
	}
	logger.Info("match context created",
		"seed", cfg.Seed,
		"weather", ctx.environment.Weather().Type,
		"field", ctx.environment.Field().Condition,
		"home", cfg.HomeTactics.Name,
		"away", cfg.AwayTactics.Name,
	)
	return ctx, nil
}

// Tick returns the number of steps processed so far.
func (c *Context) Tick() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tick
}

// Step runs one simulation tick: the environment drifts, every roster slot
// gets a target position, injuries are rolled, and dynamic triggers are
// evaluated. It never fails; all outputs are clamped and defaulted.
func (c *Context) Step(snap core.Snapshot) TickResult {
	c.mu.Lock()
	c.tick = snap.Tick
	c.mu.Unlock()

	c.environment.Tick()

	result := TickResult{
		Targets: make(map[uint16]core.PositionVector, len(snap.Roster)),
	}
	for _, player := range snap.Roster {
		tactics := c.cfg.HomeTactics
		if player.Side == core.SideAway {
			tactics = c.cfg.AwayTactics
		}
		attacking := player.Side == snap.Possession
		result.Targets[player.ID] = c.positioning.ComputeTarget(player.Role, tactics, snap.Ball, attacking)

		if injury := c.environment.RollInjury(player.ID); injury != nil {
			result.Injuries = append(result.Injuries, *injury)
		}
	}

	result.Multipliers = c.environment.ImpactMultipliers()
	result.Events = c.dynamics.CheckTriggers(snap)

	bg := context.Background()
	c.metrics.ticks.Add(bg, 1)
	if n := len(result.Injuries); n > 0 {
		c.metrics.injuries.Add(bg, int64(n))
	}
	if n := len(result.Events); n > 0 {
		c.metrics.events.Add(bg, int64(n))
	}
	return result
}

// HandleFoul rules on a foul event via the officiating module.
func (c *Context) HandleFoul(event core.FoulEvent) core.RefereeDecision {
	decision := c.referee.RecordFoul(event)

	bg := context.Background()
	c.metrics.fouls.Add(bg, 1,
		metric.WithAttributes(attribute.String("type", string(event.Type))))
	if decision.Card != core.CardNone {
		c.metrics.cards.Add(bg, 1,
			metric.WithAttributes(attribute.String("card", string(decision.Card))))
	}
	return decision
}

// Referee exposes the officiating module.
func (c *Context) Referee() *officiating.Referee {
	return c.referee
}

// Environment exposes the environment module.
func (c *Context) Environment() *environment.Engine {
	return c.environment
}

// Dynamics exposes the dynamic event monitor.
func (c *Context) Dynamics() *dynamics.Monitor {
	return c.dynamics
}

// SetPieces exposes the set-piece planner.
func (c *Context) SetPieces() *setpiece.Planner {
	return c.setpieces
}

// Positioning exposes the positioning engine.
func (c *Context) Positioning() *positioning.Engine {
	return c.positioning
}
