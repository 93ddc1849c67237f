// Package officiating turns foul events into referee rulings and maintains
// the per-match disciplinary ledger. Rulings fail closed: unknown foul types
// fall back to a neutral severity instead of erroring.
package officiating

import (
	"log/slog"

	"github.com/pitchlab/matchcore/internal/model/core"
	"github.com/pitchlab/matchcore/internal/pitch"
	"github.com/pitchlab/matchcore/internal/rng"
)

// Base severity per foul type. Unknown types use neutralSeverity.
var baseSeverity = map[core.FoulType]float64{
	core.FoulTackle:      0.4,
	core.FoulHandball:    0.7,
	core.FoulOffside:     0.3,
	core.FoulPush:        0.55,
	core.FoulKick:        0.8,
	core.FoulObstruction: 0.45,
}

const neutralSeverity = 0.5

// Decision thresholds. Comparisons are strict: a severity of exactly 0.8 is
// not treated as clear and obvious.
const (
	clearThreshold    = 0.8
	redThreshold      = 0.9
	varThreshold      = 0.85
	foulThreshold     = 0.5
	yellowThreshold   = 0.75
	penaltyThreshold  = 0.6
	severityVariance  = 0.1
	mistakePenalty    = 0.3
	maxMistakeRate    = 0.3
	clearConfidence   = 0.95
	varOverturnChance = 0.12
)

// Referee produces rulings for foul events and applies cards to the ledger.
type Referee struct {
	logger      *slog.Logger
	rand        rng.Rand
	mistakeRate float64
	ledger      *Ledger
	area        pitch.PenaltyArea
}

// NewReferee creates a referee for one match. mistakeRate is clamped to
// [0, 0.3] here, at configuration time, never at call time.
func NewReferee(logger *slog.Logger, r rng.Rand, dims pitch.Dimensions, mistakeRate float64) *Referee {
	if mistakeRate < 0 {
		mistakeRate = 0
	}
	if mistakeRate > maxMistakeRate {
		mistakeRate = maxMistakeRate
	}
	return &Referee{
		logger:      logger,
		rand:        r,
		mistakeRate: mistakeRate,
		ledger:      NewLedger(),
		area:        pitch.NewPenaltyArea(dims),
	}
}

// Ledger exposes the match's disciplinary ledger.
func (r *Referee) Ledger() *Ledger {
	return r.ledger
}

// Accuracy returns the referee's expected decision accuracy.
func (r *Referee) Accuracy() float64 {
	return 1 - r.mistakeRate
}

// RecordFoul rules on a foul event, updates the disciplinary ledger, and
// returns the decision. It never fails.
func (r *Referee) RecordFoul(event core.FoulEvent) core.RefereeDecision {
	base, ok := baseSeverity[event.Type]
	if !ok {
		base = neutralSeverity
	}
	adjusted := base + rng.Variance(r.rand, severityVariance)
	inArea := r.area.Contains(event.Position)

	var decision core.RefereeDecision
	if adjusted > clearThreshold {
		// Clear and obvious: the mistake rate never applies here.
		decision = core.RefereeDecision{
			FoulCalled: true,
			Card:       core.CardYellow,
			FreeKick:   true,
			Penalty:    inArea,
			VARReview:  adjusted > varThreshold,
			Confidence: clearConfidence,
			Severity:   adjusted,
		}
		if adjusted > redThreshold {
			decision.Card = core.CardRed
		}
	} else {
		final := adjusted
		if rng.Chance(r.rand, r.mistakeRate) {
			final -= mistakePenalty
		}
		decision = core.RefereeDecision{
			FoulCalled: final > foulThreshold,
			Card:       core.CardNone,
			Penalty:    final > penaltyThreshold && inArea,
			Confidence: final,
			Severity:   final,
		}
		decision.FreeKick = decision.FoulCalled
		if final > yellowThreshold {
			decision.Card = core.CardYellow
		}
	}

	if decision.Card != core.CardNone {
		state := r.ledger.Apply(event.ActorID, decision.Card)
		r.logger.Info("card shown",
			"player", event.ActorID,
			"card", decision.Card,
			"yellows", state.Yellows,
			"sentOff", state.Red,
		)
	}
	if decision.FoulCalled {
		r.logger.Debug("foul called",
			"type", event.Type,
			"severity", decision.Severity,
			"penalty", decision.Penalty,
			"var", decision.VARReview,
		)
	}
	return decision
}

// ReviewVAR independently reviews a ruling. High-severity calls are
// overturned with a fixed probability; everything else stands.
func (r *Referee) ReviewVAR(decision core.RefereeDecision) bool {
	if decision.Severity > clearThreshold {
		return rng.Chance(r.rand, varOverturnChance)
	}
	return false
}
