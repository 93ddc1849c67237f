// Package environment owns weather and pitch-condition state for one match
// and produces gameplay multipliers and injury rolls from it.
package environment

import (
	"log/slog"
	"math"
	"time"

	"github.com/pitchlab/matchcore/internal/eventlog"
	"github.com/pitchlab/matchcore/internal/rng"
)

// Per-tick drift and trigger constants.
const (
	weatherChangeChance = 0.001
	windDriftDeg        = 2.5
	tempDrift           = 0.05
	damagePerTick       = 0.0001

	injuryDamageWeight = 0.01
	injuryWindWeight   = 0.005
	recoveryMinMinutes = 30
	recoveryMaxMinutes = 90

	windSaturation = 20.0
)

// Per-dimension impact coefficients for {ballControl, passAccuracy,
// shootingAccuracy, speed}.
var (
	windImpact   = Multipliers{BallControl: 0.15, PassAccuracy: 0.10, ShootingAccuracy: 0.20, Speed: 0.05}
	damageImpact = Multipliers{BallControl: 0.30, PassAccuracy: 0.15, ShootingAccuracy: 0.20, Speed: 0.25}
)

// WeatherState is the live weather for a match.
type WeatherState struct {
	Type        WeatherType `json:"type"`
	WindSpeed   float64     `json:"windSpeed"`
	WindDirDeg  float64     `json:"windDirDeg"`
	Temperature float64     `json:"temperature"`
	Humidity    float64     `json:"humidity"`
}

// FieldState is the live pitch surface for a match. Damage never decreases
// within a match.
type FieldState struct {
	Condition FieldCondition `json:"condition"`
	Wetness   float64        `json:"wetness"`
	Damage    float64        `json:"damage"`
	BallGrip  float64        `json:"ballGrip"`
}

// InjuryEvent records an injury roll that triggered. Entries are appended to
// the log and never mutated.
type InjuryEvent struct {
	PlayerID        uint16         `json:"playerId"`
	Type            InjuryType     `json:"type"`
	Severity        InjurySeverity `json:"severity"`
	RecoveryMinutes float64        `json:"recoveryMinutes"`
	Time            time.Time      `json:"time"`
}

// Multipliers are the four gameplay factors folded into the engine's
// pass/shot/dribble formulas. Each stays in (0, 1].
type Multipliers struct {
	BallControl      float64 `json:"ballControl"`
	PassAccuracy     float64 `json:"passAccuracy"`
	ShootingAccuracy float64 `json:"shootingAccuracy"`
	Speed            float64 `json:"speed"`
}

// Engine owns the environment state of one match instance.
type Engine struct {
	logger   *slog.Logger
	rand     rng.Rand
	weather  WeatherState
	field    FieldState
	injuries *eventlog.Log[InjuryEvent]
	now      func() time.Time
}

// NewEngine creates the environment for a match from its initial weather
// type and field condition. Unknown values fall back to clear weather on a
// good pitch rather than erroring.
func NewEngine(logger *slog.Logger, r rng.Rand, weather WeatherType, condition FieldCondition) *Engine {
	wp, ok := weatherProfiles[weather]
	if !ok {
		weather = WeatherClear
		wp = weatherProfiles[weather]
	}
	fp, ok := fieldProfiles[condition]
	if !ok {
		condition = FieldGood
		fp = fieldProfiles[condition]
	}
	return &Engine{
		logger: logger,
		rand:   r,
		weather: WeatherState{
			Type:        weather,
			WindSpeed:   wp.WindSpeed,
			WindDirDeg:  rng.Range(r, 0, 360),
			Temperature: wp.Temperature,
			Humidity:    wp.Humidity,
		},
		field: FieldState{
			Condition: condition,
			Wetness:   fp.Wetness,
			Damage:    fp.Damage,
			BallGrip:  fp.BallGrip,
		},
		injuries: eventlog.New[InjuryEvent](),
		now:      time.Now,
	}
}

// Weather returns the current weather state.
func (e *Engine) Weather() WeatherState {
	return e.weather
}

// Field returns the current field state.
func (e *Engine) Field() FieldState {
	return e.field
}

// Injuries returns every injury recorded so far, oldest first.
func (e *Engine) Injuries() []InjuryEvent {
	return e.injuries.All()
}

// Tick advances the environment by one simulation step. Weather may rarely
// flip to a new type; wind direction and temperature always drift; field
// damage accumulates monotonically.
func (e *Engine) Tick() {
	if rng.Chance(e.rand, weatherChangeChance) {
		next := WeatherTypes[e.rand.Intn(len(WeatherTypes))]
		wp := weatherProfiles[next]
		e.weather.Type = next
		e.weather.WindSpeed = wp.WindSpeed
		e.weather.Temperature = wp.Temperature
		e.weather.Humidity = wp.Humidity
		e.logger.Info("weather changed", "type", next, "windSpeed", wp.WindSpeed)
	}

	e.weather.WindDirDeg = math.Mod(e.weather.WindDirDeg+rng.Variance(e.rand, windDriftDeg)+360, 360)
	e.weather.Temperature += rng.Variance(e.rand, tempDrift)

	e.field.Damage += damagePerTick
	if e.field.Damage > 1 {
		e.field.Damage = 1
	}
}

// RollInjury rolls for an injury to the given player this tick. The trigger
// probability scales with field damage and wind speed. Returns nil when
// nothing happens.
func (e *Engine) RollInjury(playerID uint16) *InjuryEvent {
	p := e.field.Damage*injuryDamageWeight + e.weather.WindSpeed*injuryWindWeight
	if !rng.Chance(e.rand, p) {
		return nil
	}
	ev := InjuryEvent{
		PlayerID:        playerID,
		Type:            injuryTypes[e.rand.Intn(len(injuryTypes))],
		Severity:        injurySeverities[e.rand.Intn(len(injurySeverities))],
		RecoveryMinutes: rng.Range(e.rand, recoveryMinMinutes, recoveryMaxMinutes),
		Time:            e.now(),
	}
	e.injuries.Append(ev.Time, ev)
	e.logger.Info("injury",
		"player", ev.PlayerID,
		"type", ev.Type,
		"severity", ev.Severity,
		"recoveryMinutes", ev.RecoveryMinutes,
	)
	return &ev
}

// ImpactMultipliers combines weather and field factors into the four
// gameplay multipliers. Each is the product of a wind factor and a damage
// factor, so it decreases monotonically as either grows.
func (e *Engine) ImpactMultipliers() Multipliers {
	windFactor := e.weather.WindSpeed / windSaturation
	if windFactor > 1 {
		windFactor = 1
	}
	damage := e.field.Damage

	return Multipliers{
		BallControl:      (1 - windFactor*windImpact.BallControl) * (1 - damage*damageImpact.BallControl),
		PassAccuracy:     (1 - windFactor*windImpact.PassAccuracy) * (1 - damage*damageImpact.PassAccuracy),
		ShootingAccuracy: (1 - windFactor*windImpact.ShootingAccuracy) * (1 - damage*damageImpact.ShootingAccuracy),
		Speed:            (1 - windFactor*windImpact.Speed) * (1 - damage*damageImpact.Speed),
	}
}
