package match

import (
	"github.com/pitchlab/matchcore/internal/model/core"
	"github.com/pitchlab/matchcore/internal/pitch"
)

// Stock formations for the demo runner and tests. A real engine supplies
// its own tactics; these are laid out for the standard 105x68 pitch.

func slots(def, att pitch.Position) core.RoleSlots {
	return core.RoleSlots{
		Defending: def,
		Attacking: att,
		Transitioning: pitch.Position{
			X: (def.X + att.X) / 2,
			Y: (def.Y + att.Y) / 2,
		},
	}
}

// Formation442 returns a flat 4-4-2.
func Formation442() core.FormationTactics {
	return core.FormationTactics{
		Name: "4-4-2",
		Slots: map[core.Role]core.RoleSlots{
			"GK":   slots(pitch.Position{X: 5, Y: 34}, pitch.Position{X: 8, Y: 34}),
			"RB":   slots(pitch.Position{X: 20, Y: 56}, pitch.Position{X: 45, Y: 58}),
			"CB_R": slots(pitch.Position{X: 18, Y: 42}, pitch.Position{X: 40, Y: 44}),
			"CB_L": slots(pitch.Position{X: 18, Y: 26}, pitch.Position{X: 40, Y: 24}),
			"LB":   slots(pitch.Position{X: 20, Y: 12}, pitch.Position{X: 45, Y: 10}),
			"RM":   slots(pitch.Position{X: 40, Y: 58}, pitch.Position{X: 68, Y: 60}),
			"CM_R": slots(pitch.Position{X: 38, Y: 42}, pitch.Position{X: 65, Y: 40}),
			"CM_L": slots(pitch.Position{X: 38, Y: 26}, pitch.Position{X: 65, Y: 28}),
			"LM":   slots(pitch.Position{X: 40, Y: 10}, pitch.Position{X: 68, Y: 8}),
			"ST_R": slots(pitch.Position{X: 55, Y: 40}, pitch.Position{X: 85, Y: 40}),
			"ST_L": slots(pitch.Position{X: 55, Y: 28}, pitch.Position{X: 85, Y: 28}),
		},
		Width:          0.6,
		Depth:          0.5,
		Aggressiveness: 0.5,
	}
}

// Formation433 returns an attacking 4-3-3.
func Formation433() core.FormationTactics {
	return core.FormationTactics{
		Name: "4-3-3",
		Slots: map[core.Role]core.RoleSlots{
			"GK":   slots(pitch.Position{X: 5, Y: 34}, pitch.Position{X: 8, Y: 34}),
			"RB":   slots(pitch.Position{X: 20, Y: 54}, pitch.Position{X: 42, Y: 58}),
			"CB_R": slots(pitch.Position{X: 17, Y: 42}, pitch.Position{X: 38, Y: 44}),
			"CB_L": slots(pitch.Position{X: 17, Y: 26}, pitch.Position{X: 38, Y: 24}),
			"LB":   slots(pitch.Position{X: 20, Y: 14}, pitch.Position{X: 42, Y: 10}),
			"CM_R": slots(pitch.Position{X: 38, Y: 46}, pitch.Position{X: 62, Y: 48}),
			"CM":   slots(pitch.Position{X: 35, Y: 34}, pitch.Position{X: 58, Y: 34}),
			"CM_L": slots(pitch.Position{X: 38, Y: 22}, pitch.Position{X: 62, Y: 20}),
			"RW":   slots(pitch.Position{X: 55, Y: 56}, pitch.Position{X: 82, Y: 58}),
			"ST":   slots(pitch.Position{X: 52, Y: 34}, pitch.Position{X: 88, Y: 34}),
			"LW":   slots(pitch.Position{X: 55, Y: 12}, pitch.Position{X: 82, Y: 10}),
		},
		Width:          0.7,
		Depth:          0.6,
		Aggressiveness: 0.7,
	}
}
