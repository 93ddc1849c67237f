package officiating

import (
	"sync"

	"github.com/pitchlab/matchcore/internal/model/core"
)

// Discipline is the card state of one player within a match.
type Discipline struct {
	Yellows int  `json:"yellows"`
	Red     bool `json:"red"`
}

// Ledger tracks per-player disciplinary state for one match. A red flag is
// set the instant a second yellow is shown, or immediately on a direct red.
type Ledger struct {
	m       sync.Mutex
	players map[uint16]Discipline
}

// NewLedger creates an empty disciplinary ledger.
func NewLedger() *Ledger {
	return &Ledger{
		players: make(map[uint16]Discipline),
	}
}

// Reset clears the ledger for a new match.
func (l *Ledger) Reset() {
	l.m.Lock()
	defer l.m.Unlock()
	l.players = make(map[uint16]Discipline)
}

// Get returns the card state for a player.
func (l *Ledger) Get(playerID uint16) Discipline {
	l.m.Lock()
	defer l.m.Unlock()
	return l.players[playerID]
}

// SentOff reports whether the player has been shown a red card.
func (l *Ledger) SentOff(playerID uint16) bool {
	return l.Get(playerID).Red
}

// Apply records a card for a player and returns the updated state.
// A second yellow forces red; further cards after a red are ignored.
func (l *Ledger) Apply(playerID uint16, card core.CardType) Discipline {
	l.m.Lock()
	defer l.m.Unlock()
	d := l.players[playerID]
	if d.Red {
		return d
	}
	switch card {
	case core.CardYellow:
		d.Yellows++
		if d.Yellows >= 2 {
			d.Red = true
		}
	case core.CardRed:
		d.Red = true
	}
	l.players[playerID] = d
	return d
}

// Booked returns the ids of every player holding at least one card.
func (l *Ledger) Booked() []uint16 {
	l.m.Lock()
	defer l.m.Unlock()
	ids := make([]uint16, 0, len(l.players))
	for id, d := range l.players {
		if d.Yellows > 0 || d.Red {
			ids = append(ids, id)
		}
	}
	return ids
}
