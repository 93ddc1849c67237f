package environment

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchlab/matchcore/internal/rng"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEngine_ProfilesAreDeterministic(t *testing.T) {
	e := NewEngine(testLogger(), rng.NewScripted(0.5), WeatherRain, FieldMuddy)

	w := e.Weather()
	assert.Equal(t, WeatherRain, w.Type)
	assert.InDelta(t, 7.0, w.WindSpeed, 1e-9)
	assert.InDelta(t, 14.0, w.Temperature, 1e-9)
	assert.InDelta(t, 0.85, w.Humidity, 1e-9)

	f := e.Field()
	assert.Equal(t, FieldMuddy, f.Condition)
	assert.InDelta(t, 0.70, f.Wetness, 1e-9)
	assert.InDelta(t, 0.50, f.Damage, 1e-9)
	assert.InDelta(t, 0.50, f.BallGrip, 1e-9)
}

func TestNewEngine_UnknownValuesFallBack(t *testing.T) {
	e := NewEngine(testLogger(), rng.NewScripted(0.5), WeatherType("monsoon"), FieldCondition("lava"))

	assert.Equal(t, WeatherClear, e.Weather().Type)
	assert.Equal(t, FieldGood, e.Field().Condition)
}

func TestTick_DamageIsMonotonic(t *testing.T) {
	// 0.9 rolls never hit the 0.001 weather-change chance and give fixed
	// positive drift on wind direction and temperature.
	e := NewEngine(testLogger(), rng.NewScripted(0.9), WeatherClear, FieldGood)

	prev := e.Field().Damage
	for i := 0; i < 1000; i++ {
		e.Tick()
		d := e.Field().Damage
		require.GreaterOrEqual(t, d, prev, "damage decreased at tick %d", i)
		prev = d
	}
	assert.InDelta(t, 0.10+1000*0.0001, prev, 1e-9)
}

func TestTick_DamageCapsAtOne(t *testing.T) {
	e := NewEngine(testLogger(), rng.NewScripted(0.9), WeatherClear, FieldMuddy)
	for i := 0; i < 6000; i++ {
		e.Tick()
	}
	assert.InDelta(t, 1.0, e.Field().Damage, 1e-9)
}

func TestTick_WindDirectionStaysInRange(t *testing.T) {
	e := NewEngine(testLogger(), rng.NewScripted(0.01, 0.99), WeatherClear, FieldGood)
	for i := 0; i < 500; i++ {
		e.Tick()
		dir := e.Weather().WindDirDeg
		require.True(t, dir >= 0 && dir < 360, "wind direction out of range: %v", dir)
	}
}

func TestRollInjury_Triggers(t *testing.T) {
	// Clear weather on a good pitch: trigger probability is
	// damage*0.01 + wind*0.005 = 0.10*0.01 + 2*0.005 = 0.011.
	// Scripted rolls: wind direction at creation, then trigger roll,
	// type pick, severity pick, recovery.
	e := NewEngine(testLogger(), rng.NewScripted(0.5, 0.005, 0.0, 0.5, 0.5), WeatherClear, FieldGood)

	ev := e.RollInjury(9)
	require.NotNil(t, ev)
	assert.Equal(t, uint16(9), ev.PlayerID)
	assert.Equal(t, InjuryType("muscle_strain"), ev.Type)
	assert.Equal(t, InjuryModerate, ev.Severity)
	assert.InDelta(t, 60.0, ev.RecoveryMinutes, 1e-9)
	assert.Len(t, e.Injuries(), 1)
}

func TestRollInjury_NoTrigger(t *testing.T) {
	e := NewEngine(testLogger(), rng.NewScripted(0.9), WeatherClear, FieldGood)

	assert.Nil(t, e.RollInjury(9))
	assert.Empty(t, e.Injuries())
}

func TestRollInjury_RecoveryWithinBounds(t *testing.T) {
	e := NewEngine(testLogger(), rng.New(11), WeatherHeavyRain, FieldMuddy)

	for i := 0; i < 5000; i++ {
		if ev := e.RollInjury(uint16(i % 22)); ev != nil {
			require.GreaterOrEqual(t, ev.RecoveryMinutes, 30.0)
			require.Less(t, ev.RecoveryMinutes, 90.0)
		}
	}
	assert.NotEmpty(t, e.Injuries(), "muddy pitch in heavy rain should produce injuries")
}

func TestImpactMultipliers_InRange(t *testing.T) {
	for _, wt := range WeatherTypes {
		for _, fc := range FieldConditions {
			e := NewEngine(testLogger(), rng.NewScripted(0.5), wt, fc)
			m := e.ImpactMultipliers()
			for name, v := range map[string]float64{
				"ballControl":      m.BallControl,
				"passAccuracy":     m.PassAccuracy,
				"shootingAccuracy": m.ShootingAccuracy,
				"speed":            m.Speed,
			} {
				require.Greater(t, v, 0.0, "%s for %s/%s", name, wt, fc)
				require.LessOrEqual(t, v, 1.0, "%s for %s/%s", name, wt, fc)
			}
		}
	}
}

func TestImpactMultipliers_DecreaseWithWind(t *testing.T) {
	calm := NewEngine(testLogger(), rng.NewScripted(0.5), WeatherClear, FieldGood)
	windy := NewEngine(testLogger(), rng.NewScripted(0.5), WeatherWindy, FieldGood)

	c, w := calm.ImpactMultipliers(), windy.ImpactMultipliers()
	assert.Less(t, w.BallControl, c.BallControl)
	assert.Less(t, w.PassAccuracy, c.PassAccuracy)
	assert.Less(t, w.ShootingAccuracy, c.ShootingAccuracy)
	assert.Less(t, w.Speed, c.Speed)
}

func TestImpactMultipliers_DecreaseWithDamage(t *testing.T) {
	pristine := NewEngine(testLogger(), rng.NewScripted(0.5), WeatherClear, FieldExcellent)
	churned := NewEngine(testLogger(), rng.NewScripted(0.5), WeatherClear, FieldMuddy)

	p, c := pristine.ImpactMultipliers(), churned.ImpactMultipliers()
	assert.Less(t, c.BallControl, p.BallControl)
	assert.Less(t, c.PassAccuracy, p.PassAccuracy)
	assert.Less(t, c.ShootingAccuracy, p.ShootingAccuracy)
	assert.Less(t, c.Speed, p.Speed)
}
