package dynamics

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchlab/matchcore/internal/model/core"
	"github.com/pitchlab/matchcore/internal/rng"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRoster() []core.PlayerRef {
	return []core.PlayerRef{
		{ID: 1, Side: core.SideHome, Role: "GK"},
		{ID: 2, Side: core.SideHome, Role: "ST"},
		{ID: 12, Side: core.SideAway, Role: "GK"},
		{ID: 13, Side: core.SideAway, Role: "ST"},
	}
}

func TestCheckTriggers_MomentumSwing(t *testing.T) {
	// Home trails 0-1 past the hour. Scripted rolls: momentum triggers,
	// late-game and motivation do not.
	m := NewMonitor(testLogger(), rng.NewScripted(0.01, 0.9, 0.9), 0)

	fired := m.CheckTriggers(core.Snapshot{
		ElapsedMin: 70,
		Score:      core.Score{Home: 0, Away: 1},
		Roster:     testRoster(),
	})

	require.Len(t, fired, 2)
	trailing, leading := fired[0], fired[1]
	assert.Equal(t, EventMomentumSwing, trailing.Type)
	assert.Equal(t, core.SideHome, trailing.Side)
	assert.InDelta(t, 0.15, trailing.Impact["attackPower"], 1e-9)
	assert.InDelta(t, -0.1, trailing.Impact["defense"], 1e-9)
	assert.InDelta(t, 0.2, trailing.Impact["mentality"], 1e-9)

	assert.Equal(t, core.SideAway, leading.Side)
	assert.InDelta(t, -0.15, leading.Impact["attackPower"], 1e-9)
	assert.InDelta(t, 0.1, leading.Impact["defense"], 1e-9)
	assert.InDelta(t, -0.2, leading.Impact["mentality"], 1e-9)
}

func TestCheckTriggers_MomentumNeedsTimeAndDeficit(t *testing.T) {
	m := NewMonitor(testLogger(), rng.NewScripted(0.0), 0)

	// Level score: no momentum even with a guaranteed roll.
	fired := m.CheckTriggers(core.Snapshot{
		ElapsedMin: 70,
		Score:      core.Score{Home: 1, Away: 1},
		Roster:     testRoster(),
	})
	for _, ev := range fired {
		assert.NotEqual(t, EventMomentumSwing, ev.Type)
	}

	// Too early: trailing but before the hour.
	fired = m.CheckTriggers(core.Snapshot{
		ElapsedMin: 30,
		Score:      core.Score{Home: 0, Away: 2},
		Roster:     testRoster(),
	})
	for _, ev := range fired {
		assert.NotEqual(t, EventMomentumSwing, ev.Type)
	}
}

func TestCheckTriggers_LateGamePressure(t *testing.T) {
	// Level score in the 88th minute. Scripted rolls: late-game triggers,
	// motivation does not.
	m := NewMonitor(testLogger(), rng.NewScripted(0.01, 0.9), 0)

	fired := m.CheckTriggers(core.Snapshot{
		ElapsedMin: 88,
		Score:      core.Score{},
		Roster:     testRoster(),
	})

	require.Len(t, fired, 1)
	assert.Equal(t, EventLateGamePressure, fired[0].Type)
	assert.InDelta(t, 0.3, fired[0].Impact["urgency"], 1e-9)
	assert.InDelta(t, 0.2, fired[0].Impact["riskTaking"], 1e-9)
	assert.InDelta(t, -0.1, fired[0].Impact["mentality"], 1e-9)
	assert.Nil(t, fired[0].PlayerID)
}

func TestCheckTriggers_PlayerMotivation(t *testing.T) {
	// Quiet first half: only the background motivation roll can fire.
	// Scripted rolls: motivation triggers, then picks the third slot.
	m := NewMonitor(testLogger(), rng.NewScripted(0.0001, 0.5), 0)

	fired := m.CheckTriggers(core.Snapshot{
		ElapsedMin: 20,
		Score:      core.Score{},
		Roster:     testRoster(),
	})

	require.Len(t, fired, 1)
	ev := fired[0]
	assert.Equal(t, EventPlayerMotivation, ev.Type)
	require.NotNil(t, ev.PlayerID)
	assert.Equal(t, uint16(12), *ev.PlayerID)
	assert.Equal(t, core.SideAway, ev.Side)
	assert.InDelta(t, 0.1, ev.Impact["form"], 1e-9)
	assert.InDelta(t, 0.15, ev.Impact["confidence"], 1e-9)
	assert.InDelta(t, 0.08, ev.Impact["performance"], 1e-9)
}

func TestActive_ExcludesOldEvents(t *testing.T) {
	m := NewMonitor(testLogger(), rng.NewScripted(0.0001, 0.5), 0)

	base := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	m.CheckTriggers(core.Snapshot{ElapsedMin: 20, Roster: testRoster()})

	// 90 seconds later the event has aged out of the default window.
	m.now = func() time.Time { return base.Add(90 * time.Second) }
	assert.Empty(t, m.Active(time.Minute))
	assert.Len(t, m.Active(2*time.Minute), 1)
}

func TestCleanup(t *testing.T) {
	m := NewMonitor(testLogger(), rng.NewScripted(0.0001, 0.5), 0)

	base := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	m.CheckTriggers(core.Snapshot{ElapsedMin: 20, Roster: testRoster()})
	require.Equal(t, 1, m.Len())

	// Max age longer than total elapsed time removes nothing.
	m.now = func() time.Time { return base.Add(time.Minute) }
	assert.Zero(t, m.Cleanup(time.Hour))
	assert.Equal(t, 1, m.Len())

	// Past the retention cutoff the log is purged.
	m.now = func() time.Time { return base.Add(10 * time.Minute) }
	assert.Equal(t, 1, m.Cleanup(DefaultMaxAge))
	assert.Zero(t, m.Len())
}
