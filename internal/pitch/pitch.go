// Package pitch provides field geometry shared by all decision modules:
// dimensions, positions, the tactical zone grid, and the penalty area.
package pitch

import (
	"fmt"
	"math"
)

// Dimensions describe the playing surface in meters. X runs along the length
// of the pitch toward the attacked goal, Y across its width.
type Dimensions struct {
	Width  float64 // length of the pitch (x axis)
	Height float64 // width of the pitch (y axis)
}

// Standard is the regulation pitch used when no dimensions are configured.
var Standard = Dimensions{Width: 105, Height: 68}

// Position is a point on the pitch in meters.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zone grid resolution. Columns split the length into attacking thirds,
// rows split the width into six lanes.
const (
	zoneCols = 3
	zoneRows = 6
)

// Penalty area proportions. The box starts at 88.5% of the pitch length and
// spans the central 40.32m band of a regulation-width pitch.
const (
	penaltyAreaDepth = 0.885
	penaltyAreaBand  = 40.32 / 68.0
)

// Center returns the midpoint of the pitch.
func (d Dimensions) Center() Position {
	return Position{X: d.Width / 2, Y: d.Height / 2}
}

// Contains reports whether p lies within the field bounds.
func (d Dimensions) Contains(p Position) bool {
	return p.X >= 0 && p.X <= d.Width && p.Y >= 0 && p.Y <= d.Height
}

// Clamp returns p constrained to the field bounds.
func (d Dimensions) Clamp(p Position) Position {
	return Position{
		X: clamp(p.X, 0, d.Width),
		Y: clamp(p.Y, 0, d.Height),
	}
}

// ZoneID buckets a position into the 3x6 tactical grid, returning "z_{row}_{col}".
// Out-of-bounds positions are clamped first so the id is always valid.
func (d Dimensions) ZoneID(p Position) string {
	p = d.Clamp(p)
	col := int(p.X / d.Width * zoneCols)
	if col >= zoneCols {
		col = zoneCols - 1
	}
	row := int(p.Y / d.Height * zoneRows)
	if row >= zoneRows {
		row = zoneRows - 1
	}
	return fmt.Sprintf("z_%d_%d", row, col)
}

// Distance returns the euclidean distance between two positions.
func Distance(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
