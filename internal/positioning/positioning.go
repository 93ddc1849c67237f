// Package positioning maps formation slots, ball position, and possession
// into per-player target coordinates and tactical zones. It is pure and
// never returns errors: every output is clamped to the field bounds.
package positioning

import (
	"github.com/pitchlab/matchcore/internal/model/core"
	"github.com/pitchlab/matchcore/internal/pitch"
)

// Attacking-phase drift toward the ball, as a fraction of the vector from
// field center to the ball.
const attackDrift = 0.3

// Defending-phase shift factors toward the ball, scaled by compactness.
const (
	defendShiftX = 0.20
	defendShiftY = 0.15
)

// Compactness saturates once the ball has advanced past this fraction of
// the pitch length.
const compactnessDepth = 0.6

// Pressure decays linearly to zero at this distance in meters.
const pressureRadius = 15.0

// Engine computes tactical positioning for one match instance.
type Engine struct {
	dims pitch.Dimensions
}

// NewEngine creates a positioning engine for the given field dimensions.
func NewEngine(dims pitch.Dimensions) *Engine {
	return &Engine{dims: dims}
}

// ComputeTarget returns the target position and zone for a role given the
// ball position and which side has possession. The player's side attacking
// means it currently has the ball.
func (e *Engine) ComputeTarget(role core.Role, tactics core.FormationTactics, ball pitch.Position, attacking bool) core.PositionVector {
	slots := tactics.Slots[role]

	var target pitch.Position
	if attacking {
		center := e.dims.Center()
		target = pitch.Position{
			X: slots.Attacking.X + (ball.X-center.X)*attackDrift,
			Y: slots.Attacking.Y + (ball.Y-center.Y)*attackDrift,
		}
	} else {
		compact := ball.X / (compactnessDepth * e.dims.Width)
		if compact > 1 {
			compact = 1
		}
		base := slots.Defending
		target = pitch.Position{
			X: base.X + (ball.X-base.X)*defendShiftX*compact,
			Y: base.Y + (ball.Y-base.Y)*defendShiftY*compact,
		}
	}

	target = e.dims.Clamp(target)
	return core.PositionVector{
		Pos:  target,
		Zone: e.dims.ZoneID(target),
	}
}

// Pressure returns how much a defender at b pressures a player at a:
// 1 at zero distance, decaying linearly to 0 at pressureRadius.
func Pressure(a, b pitch.Position) float64 {
	p := 1 - pitch.Distance(a, b)/pressureRadius
	if p < 0 {
		return 0
	}
	return p
}

// SpaceAvailable returns how much free space a player at pos has given the
// defenders around them, in [0, 1].
func SpaceAvailable(pos pitch.Position, defenders []pitch.Position) float64 {
	total := 0.0
	for _, d := range defenders {
		total += Pressure(pos, d)
	}
	space := 1 - total
	if space < 0 {
		return 0
	}
	return space
}

// Validate checks formation tactics at match setup. It reports false when
// any two roles share identical coordinates across the attacking and
// defending sets, or when any slot coordinate is out of bounds.
func (e *Engine) Validate(tactics core.FormationTactics) bool {
	// A role may keep the same spot in both phases (typical for keepers),
	// but two different roles must never occupy the same coordinates.
	seen := make(map[pitch.Position]core.Role, len(tactics.Slots)*2)
	for role, slots := range tactics.Slots {
		if !e.dims.Contains(slots.Defending) || !e.dims.Contains(slots.Attacking) || !e.dims.Contains(slots.Transitioning) {
			return false
		}
		for _, p := range []pitch.Position{slots.Defending, slots.Attacking} {
			if other, ok := seen[p]; ok && other != role {
				return false
			}
			seen[p] = role
		}
	}
	return true
}
