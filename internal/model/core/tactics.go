// internal/model/core/tactics.go
package core

import "github.com/pitchlab/matchcore/internal/pitch"

// Role identifies a formation slot ("GK", "CB_L", "ST", ...).
type Role string

// RoleSlots holds the three base positions a role occupies depending on
// the phase of play.
type RoleSlots struct {
	Defending     pitch.Position `json:"defending"`
	Attacking     pitch.Position `json:"attacking"`
	Transitioning pitch.Position `json:"transitioning"`
}

// FormationTactics is a named formation with per-role base positions and
// shape scalars. Supplied by the match engine at setup and treated as
// read-only by the decision core.
type FormationTactics struct {
	Name           string             `json:"name"`
	Slots          map[Role]RoleSlots `json:"slots"`
	Width          float64            `json:"width"`
	Depth          float64            `json:"depth"`
	Aggressiveness float64            `json:"aggressiveness"`
}
