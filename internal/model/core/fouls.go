// internal/model/core/fouls.go
package core

import (
	"time"

	"github.com/pitchlab/matchcore/internal/pitch"
)

// FoulType classifies a foul reported by the match engine.
type FoulType string

const (
	FoulTackle      FoulType = "tackle"
	FoulHandball    FoulType = "handball"
	FoulOffside     FoulType = "offside"
	FoulPush        FoulType = "push"
	FoulKick        FoulType = "kick"
	FoulObstruction FoulType = "obstruction"
)

// FoulEvent is a discrete foul reported by the match engine.
type FoulEvent struct {
	Tick     uint64
	Time     time.Time
	Type     FoulType
	Position pitch.Position
	ActorID  uint16
	VictimID uint16
	Side     TeamSide // side of the offending player
}

// CardType is the disciplinary card attached to a ruling.
type CardType string

const (
	CardNone   CardType = "none"
	CardYellow CardType = "yellow"
	CardRed    CardType = "red"
)

// RefereeDecision is the ruling produced for a foul event.
type RefereeDecision struct {
	FoulCalled bool     `json:"foulCalled"`
	Card       CardType `json:"card"`
	FreeKick   bool     `json:"freeKick"`
	Penalty    bool     `json:"penalty"`
	VARReview  bool     `json:"varReview"`
	Confidence float64  `json:"confidence"`
	Severity   float64  `json:"severity"`
}
