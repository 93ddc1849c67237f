// Package setpiece generates corner, free-kick, and penalty configurations,
// synthesizes runner patterns, predicts expected-goal values, and aggregates
// outcome statistics for one match.
package setpiece

import (
	"math"
	"time"

	"github.com/pitchlab/matchcore/internal/model/core"
	"github.com/pitchlab/matchcore/internal/pitch"
)

// PlayType enumerates set-piece kinds.
type PlayType string

const (
	PlayCorner   PlayType = "corner"
	PlayFreeKick PlayType = "free_kick"
	PlayThrowIn  PlayType = "throw_in"
	PlayPenalty  PlayType = "penalty"
	PlayGoalKick PlayType = "goal_kick"
)

// Difficulty grades how elaborate a rehearsed routine is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// RunType is the movement pattern of one runner.
type RunType string

const (
	RunStraight RunType = "straight"
	RunDiagonal RunType = "diagonal"
	RunDummy    RunType = "dummy"
)

// Config describes one planned set piece.
type Config struct {
	Type       PlayType       `json:"type"`
	Team       core.TeamSide  `json:"team"`
	Position   pitch.Position `json:"position"`
	Formation  string         `json:"formation"`
	Difficulty Difficulty     `json:"difficulty"`
}

// Runner is one synthesized off-ball run for a set piece.
type Runner struct {
	Target     pitch.Position `json:"target"`
	Run        RunType        `json:"run"`
	StartDelay time.Duration  `json:"startDelay"`
	Speed      float64        `json:"speed"`
}

// Result records the outcome of an executed set piece.
type Result struct {
	Config      Config  `json:"config"`
	Success     bool    `json:"success"`
	ScorerID    *uint16 `json:"scorerId,omitempty"`
	AssistID    *uint16 `json:"assistId,omitempty"`
	PredictedXG float64 `json:"predictedXg"`
}

// Base expected-goal value per play type.
var baseXG = map[PlayType]float64{
	PlayCorner:   0.15,
	PlayFreeKick: 0.08,
	PlayThrowIn:  0.05,
	PlayPenalty:  0.75,
	PlayGoalKick: 0.02,
}

var difficultyMultiplier = map[Difficulty]float64{
	DifficultyEasy:   0.8,
	DifficultyNormal: 1.0,
	DifficultyHard:   1.3,
	DifficultyExpert: 1.8,
}

// Routine names are looked up by difficulty, distinct per play type.
// Only the name varies; geometry comes from the config position.
var formationNames = map[PlayType]map[Difficulty]string{
	PlayCorner: {
		DifficultyEasy:   "simple",
		DifficultyNormal: "standard",
		DifficultyHard:   "complex",
		DifficultyExpert: "elite",
	},
	PlayFreeKick: {
		DifficultyEasy:   "direct",
		DifficultyNormal: "wall_split",
		DifficultyHard:   "layoff",
		DifficultyExpert: "deception",
	},
	PlayPenalty: {
		DifficultyEasy:   "standard",
		DifficultyNormal: "composed",
		DifficultyHard:   "stutter",
		DifficultyExpert: "panenka",
	},
}

// Defensive strength by formation name, applied when predicting success
// against the opposing shape. Unknown formations use defaultDefense.
var defenseStrength = map[string]float64{
	"4-4-2": 0.6,
	"4-3-3": 0.5,
	"4-5-1": 0.7,
	"5-3-2": 0.75,
	"3-5-2": 0.55,
	"3-4-3": 0.45,
	"4-2-4": 0.4,
}

const (
	defaultDefense = 0.6
	defenseWeight  = 0.5
	maxXG          = 0.9

	runnerRadius     = 15.0
	baseRunnerDelay  = 800 * time.Millisecond
	delayStep        = 200 * time.Millisecond
	baseRunnerSpeed  = 0.7
	runnerSpeedStep  = 0.1
	penaltySpotDepth = 11.0
)

// Planner generates and tracks set pieces for one match instance.
type Planner struct {
	dims    pitch.Dimensions
	history []Result
}

// NewPlanner creates a set-piece planner for the given field dimensions.
func NewPlanner(dims pitch.Dimensions) *Planner {
	return &Planner{dims: dims}
}

// GenerateCorner plans a corner kick. The delivery position is the goal-line
// corner on the kicking side; fromLeft picks which corner flag.
func (p *Planner) GenerateCorner(team core.TeamSide, fromLeft bool, difficulty Difficulty) Config {
	y := p.dims.Height
	if fromLeft {
		y = 0
	}
	return Config{
		Type:       PlayCorner,
		Team:       team,
		Position:   pitch.Position{X: p.dims.Width, Y: y},
		Formation:  formationName(PlayCorner, difficulty),
		Difficulty: difficulty,
	}
}

// GenerateFreeKick plans a free kick from a distance (as a percentage of the
// pitch length from the attacked goal) and an angle from the center line.
func (p *Planner) GenerateFreeKick(team core.TeamSide, distanceFromGoalPct, angleFromCenterDeg float64, difficulty Difficulty) Config {
	dist := distanceFromGoalPct / 100 * p.dims.Width
	rad := angleFromCenterDeg * math.Pi / 180
	pos := p.dims.Clamp(pitch.Position{
		X: p.dims.Width - dist,
		Y: p.dims.Height/2 + math.Sin(rad)*dist,
	})
	return Config{
		Type:       PlayFreeKick,
		Team:       team,
		Position:   pos,
		Formation:  formationName(PlayFreeKick, difficulty),
		Difficulty: difficulty,
	}
}

// GeneratePenalty plans a penalty kick from the spot.
func (p *Planner) GeneratePenalty(team core.TeamSide, difficulty Difficulty) Config {
	return Config{
		Type:       PlayPenalty,
		Team:       team,
		Position:   pitch.Position{X: p.dims.Width - penaltySpotDepth, Y: p.dims.Height / 2},
		Formation:  formationName(PlayPenalty, difficulty),
		Difficulty: difficulty,
	}
}

// GenerateRunners synthesizes the off-ball runs for a set piece: runners are
// spread evenly around the delivery point, run types cycle, and delays and
// speeds step up per runner.
func (p *Planner) GenerateRunners(cfg Config) []Runner {
	count := 3
	if cfg.Difficulty == DifficultyExpert {
		count = 4
	}
	runTypes := []RunType{RunStraight, RunDiagonal, RunDummy}

	runners := make([]Runner, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		runners[i] = Runner{
			Target: p.dims.Clamp(pitch.Position{
				X: cfg.Position.X + math.Cos(angle)*runnerRadius,
				Y: cfg.Position.Y + math.Sin(angle)*runnerRadius,
			}),
			Run:        runTypes[i%len(runTypes)],
			StartDelay: baseRunnerDelay + time.Duration(i)*delayStep,
			Speed:      baseRunnerSpeed + runnerSpeedStep*float64(i),
		}
	}
	return runners
}

// PredictSuccess estimates the expected-goal value of a set piece against
// the named opposing formation, clamped to maxXG.
func (p *Planner) PredictSuccess(cfg Config, opposingFormation string) float64 {
	base, ok := baseXG[cfg.Type]
	if !ok {
		base = baseXG[PlayGoalKick]
	}
	mult, ok := difficultyMultiplier[cfg.Difficulty]
	if !ok {
		mult = difficultyMultiplier[DifficultyNormal]
	}
	defense, ok := defenseStrength[opposingFormation]
	if !ok {
		defense = defaultDefense
	}

	xg := base * mult * (1 - defense*defenseWeight)
	if xg > maxXG {
		xg = maxXG
	}
	return xg
}

// Record stores the outcome of an executed set piece.
func (p *Planner) Record(result Result) {
	p.history = append(p.history, result)
}

func formationName(play PlayType, difficulty Difficulty) string {
	if name, ok := formationNames[play][difficulty]; ok {
		return name
	}
	return formationNames[play][DifficultyNormal]
}
