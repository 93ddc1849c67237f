// internal/model/core/match.go
package core

import (
	"time"

	"github.com/pitchlab/matchcore/internal/pitch"
)

// TeamSide identifies one of the two teams in a match.
type TeamSide string

const (
	SideHome TeamSide = "home"
	SideAway TeamSide = "away"
)

// Opponent returns the other side.
func (s TeamSide) Opponent() TeamSide {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// Score holds the current goal tally.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Diff returns home minus away goals.
func (s Score) Diff() int {
	return s.Home - s.Away
}

// PlayerRef identifies one roster slot as seen by the decision core.
type PlayerRef struct {
	ID   uint16   `json:"id"`
	Side TeamSide `json:"side"`
	Role Role     `json:"role"`
	Name string   `json:"name"`
}

// Snapshot is the per-tick view of match state supplied by the match engine.
type Snapshot struct {
	Tick       uint64
	Time       time.Time
	ElapsedMin float64
	Ball       pitch.Position
	Possession TeamSide
	Score      Score
	Roster     []PlayerRef
}

// PositionVector is a target position with its derived zone id.
// Zone is always derived from the coordinates, never authored.
type PositionVector struct {
	Pos  pitch.Position `json:"pos"`
	Zone string         `json:"zone"`
}
