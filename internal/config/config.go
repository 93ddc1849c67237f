// Package config loads simulation configuration from JSON with defaults for
// every key. Out-of-range values are clamped here, at load time, never at
// call time.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Referee mistake rate bounds.
const (
	defaultMistakeRate = 0.15
	maxMistakeRate     = 0.3
)

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./matchlogs")

	viper.SetDefault("simulation.tickRateHz", 60)
	viper.SetDefault("simulation.seed", 0)
	viper.SetDefault("simulation.halfLengthMin", 45)

	viper.SetDefault("pitch.width", 105.0)
	viper.SetDefault("pitch.height", 68.0)

	viper.SetDefault("referee.mistakeRate", defaultMistakeRate)

	viper.SetDefault("environment.weather", "clear")
	viper.SetDefault("environment.fieldCondition", "good")

	viper.SetDefault("events.motivationChance", 0.0015)
	viper.SetDefault("events.activeWindowMs", 60000)
	viper.SetDefault("events.maxAgeMs", 300000)

	viper.SetConfigName("matchcore.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetInt64 returns an int64 config value.
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetFloat returns a float config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// MistakeRate returns the configured referee mistake rate clamped to [0, 0.3].
func MistakeRate() float64 {
	rate := viper.GetFloat64("referee.mistakeRate")
	if rate < 0 {
		return 0
	}
	if rate > maxMistakeRate {
		return maxMistakeRate
	}
	return rate
}
