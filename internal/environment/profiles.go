package environment

// WeatherType enumerates the simulated weather conditions.
type WeatherType string

const (
	WeatherClear     WeatherType = "clear"
	WeatherCloudy    WeatherType = "cloudy"
	WeatherRain      WeatherType = "rain"
	WeatherHeavyRain WeatherType = "heavy_rain"
	WeatherSnow      WeatherType = "snow"
	WeatherFog       WeatherType = "fog"
	WeatherWindy     WeatherType = "windy"
)

// WeatherTypes lists every weather type, in resample order.
var WeatherTypes = []WeatherType{
	WeatherClear,
	WeatherCloudy,
	WeatherRain,
	WeatherHeavyRain,
	WeatherSnow,
	WeatherFog,
	WeatherWindy,
}

// FieldCondition enumerates pitch surface conditions.
type FieldCondition string

const (
	FieldExcellent FieldCondition = "excellent"
	FieldGood      FieldCondition = "good"
	FieldWorn      FieldCondition = "worn"
	FieldMuddy     FieldCondition = "muddy"
	FieldFrozen    FieldCondition = "frozen"
)

// FieldConditions lists every field condition.
var FieldConditions = []FieldCondition{
	FieldExcellent,
	FieldGood,
	FieldWorn,
	FieldMuddy,
	FieldFrozen,
}

type weatherProfile struct {
	WindSpeed   float64 // m/s
	Temperature float64 // celsius
	Humidity    float64 // fraction
}

type fieldProfile struct {
	Wetness  float64
	Damage   float64
	BallGrip float64
}

// Static per-type profile tables, initialized once. Weather state is derived
// deterministically from these at creation and then drifts per tick.
var weatherProfiles = map[WeatherType]weatherProfile{
	WeatherClear:     {WindSpeed: 2, Temperature: 22, Humidity: 0.40},
	WeatherCloudy:    {WindSpeed: 4, Temperature: 18, Humidity: 0.55},
	WeatherRain:      {WindSpeed: 7, Temperature: 14, Humidity: 0.85},
	WeatherHeavyRain: {WindSpeed: 12, Temperature: 12, Humidity: 0.95},
	WeatherSnow:      {WindSpeed: 8, Temperature: -2, Humidity: 0.80},
	WeatherFog:       {WindSpeed: 1, Temperature: 10, Humidity: 0.98},
	WeatherWindy:     {WindSpeed: 16, Temperature: 16, Humidity: 0.50},
}

var fieldProfiles = map[FieldCondition]fieldProfile{
	FieldExcellent: {Wetness: 0.05, Damage: 0.00, BallGrip: 0.95},
	FieldGood:      {Wetness: 0.15, Damage: 0.10, BallGrip: 0.85},
	FieldWorn:      {Wetness: 0.25, Damage: 0.35, BallGrip: 0.70},
	FieldMuddy:     {Wetness: 0.70, Damage: 0.50, BallGrip: 0.50},
	FieldFrozen:    {Wetness: 0.10, Damage: 0.25, BallGrip: 0.40},
}

// InjuryType classifies an injury roll outcome.
type InjuryType string

var injuryTypes = []InjuryType{
	"muscle_strain",
	"hamstring",
	"ankle_sprain",
	"knee_ligament",
	"bruised_rib",
	"concussion",
}

// InjurySeverity is the tier of an injury.
type InjurySeverity string

const (
	InjuryMinor    InjurySeverity = "minor"
	InjuryModerate InjurySeverity = "moderate"
	InjurySevere   InjurySeverity = "severe"
)

var injurySeverities = []InjurySeverity{InjuryMinor, InjuryModerate, InjurySevere}
