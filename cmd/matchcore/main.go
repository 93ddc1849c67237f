// Command matchcore runs a headless demo match against the decision core:
// it steps a seeded simulation, feeds synthetic fouls and set pieces through
// the modules, and reports the outcome at full time.
package main

import (
	"flag"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchlab/matchcore/internal/config"
	"github.com/pitchlab/matchcore/internal/environment"
	"github.com/pitchlab/matchcore/internal/logging"
	"github.com/pitchlab/matchcore/internal/match"
	"github.com/pitchlab/matchcore/internal/model/core"
	"github.com/pitchlab/matchcore/internal/pitch"
	"github.com/pitchlab/matchcore/internal/setpiece"
)

// One tick of the demo advances match time by one second.
const ticksPerMinute = 60

func main() {
	configDir := flag.String("config", ".", "directory containing matchcore.cfg.json")
	seed := flag.Int64("seed", 0, "simulation seed (0 = derive from clock)")
	ticks := flag.Uint64("ticks", 90*ticksPerMinute, "number of ticks to simulate")
	flag.Parse()

	console := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	if err := config.Load(*configDir); err != nil {
		// Defaults are registered before the file is read, so a missing
		// config file is not fatal for the demo runner.
		console.Warn().Err(err).Msg("running on default configuration")
	}

	if *seed == 0 {
		*seed = config.GetInt64("simulation.seed")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		console.Fatal().Err(err).Msg("creating logs directory")
	}
	logPath := logging.LogFilePath(logsDir, "matchcore", time.Now())
	logFile, err := os.Create(logPath)
	if err != nil {
		console.Fatal().Err(err).Msg("creating log file")
	}
	defer logFile.Close()

	mc, err := newDemoMatch(logFile, *seed)
	if err != nil {
		console.Fatal().Err(err).Msg("match setup failed")
	}
	console.Info().
		Int64("seed", *seed).
		Str("log", logPath).
		Msg("kick off")

	runDemo(mc, *ticks)
	report(console, mc)
}

func newDemoMatch(logFile *os.File, seed int64) (*match.Context, error) {
	manager := logging.NewManager()
	var ctxRef *match.Context
	manager.Setup(logFile, config.GetString("logLevel"), logging.TickAttrs(func() uint64 {
		if ctxRef == nil {
			return 0
		}
		return ctxRef.Tick()
	}))

	dims := pitch.Dimensions{
		Width:  config.GetFloat("pitch.width"),
		Height: config.GetFloat("pitch.height"),
	}
	mc, err := match.New(manager.Logger(), match.Config{
		Dims:             dims,
		Seed:             seed,
		MistakeRate:      config.MistakeRate(),
		Weather:          environment.WeatherType(config.GetString("environment.weather")),
		FieldCondition:   environment.FieldCondition(config.GetString("environment.fieldCondition")),
		MotivationChance: config.GetFloat("events.motivationChance"),
		HomeTactics:      match.Formation442(),
		AwayTactics:      match.Formation433(),
	})
	if err != nil {
		return nil, err
	}
	ctxRef = mc
	return mc, nil
}

// demoRoster assigns ids 1-11 to the home side and 12-22 to the away side.
func demoRoster() []core.PlayerRef {
	var roster []core.PlayerRef
	id := uint16(1)
	for _, side := range []core.TeamSide{core.SideHome, core.SideAway} {
		tactics := match.Formation442()
		if side == core.SideAway {
			tactics = match.Formation433()
		}
		for role := range tactics.Slots {
			roster = append(roster, core.PlayerRef{ID: id, Side: side, Role: role})
			id++
		}
	}
	return roster
}

var demoFoulTypes = []core.FoulType{
	core.FoulTackle,
	core.FoulPush,
	core.FoulObstruction,
	core.FoulHandball,
	core.FoulKick,
	core.FoulOffside,
}

func runDemo(mc *match.Context, ticks uint64) {
	dims := pitch.Dimensions{
		Width:  config.GetFloat("pitch.width"),
		Height: config.GetFloat("pitch.height"),
	}
	roster := demoRoster()
	score := core.Score{}
	start := time.Now()

	for tick := uint64(1); tick <= ticks; tick++ {
		minute := float64(tick) / ticksPerMinute

		// A deterministic wandering ball stands in for the engine's physics.
		ball := dims.Clamp(pitch.Position{
			X: dims.Width/2 + dims.Width*0.45*math.Sin(float64(tick)/97),
			Y: dims.Height/2 + dims.Height*0.4*math.Sin(float64(tick)/61),
		})
		possession := core.SideHome
		if math.Sin(float64(tick)/131) < 0 {
			possession = core.SideAway
		}

		// Scripted goals so the late-game momentum rules have a score
		// difference to react to.
		if tick == 23*ticksPerMinute {
			score.Home++
		}
		if tick == 71*ticksPerMinute {
			score.Home++
		}

		snap := core.Snapshot{
			Tick:       tick,
			Time:       start.Add(time.Duration(tick) * time.Second),
			ElapsedMin: minute,
			Ball:       ball,
			Possession: possession,
			Score:      score,
			Roster:     roster,
		}
		mc.Step(snap)

		// A synthetic foul every ten minutes exercises officiating and,
		// for penalties, the set-piece planner.
		if tick%(10*ticksPerMinute) == 0 {
			foulIdx := int(tick/(10*ticksPerMinute)) - 1
			actor := roster[foulIdx%len(roster)]
			foul := core.FoulEvent{
				Tick:     tick,
				Time:     snap.Time,
				Type:     demoFoulTypes[foulIdx%len(demoFoulTypes)],
				Position: ball,
				ActorID:  actor.ID,
				Side:     actor.Side,
			}
			decision := mc.HandleFoul(foul)
			if decision.Penalty {
				recordPenalty(mc, actor.Side.Opponent())
			}
		}
	}

	// Full-time housekeeping mirrors what the engine does between halves.
	mc.Dynamics().Cleanup(0)
}

func recordPenalty(mc *match.Context, team core.TeamSide) {
	planner := mc.SetPieces()
	cfg := planner.GeneratePenalty(team, setpiece.DifficultyNormal)
	defending := match.Formation442().Name
	if team == core.SideHome {
		defending = match.Formation433().Name
	}
	xg := planner.PredictSuccess(cfg, defending)
	planner.Record(setpiece.Result{
		Config:      cfg,
		Success:     xg > 0.5,
		PredictedXG: xg,
	})
}

func report(console zerolog.Logger, mc *match.Context) {
	weather := mc.Environment().Weather()
	field := mc.Environment().Field()
	mult := mc.Environment().ImpactMultipliers()
	stats := mc.SetPieces().Statistics()

	console.Info().
		Str("weather", string(weather.Type)).
		Float64("windSpeed", weather.WindSpeed).
		Str("field", string(field.Condition)).
		Float64("damage", field.Damage).
		Msg("full time conditions")
	console.Info().
		Float64("ballControl", mult.BallControl).
		Float64("passAccuracy", mult.PassAccuracy).
		Float64("shootingAccuracy", mult.ShootingAccuracy).
		Float64("speed", mult.Speed).
		Msg("environment multipliers")
	console.Info().
		Int("injuries", len(mc.Environment().Injuries())).
		Int("booked", len(mc.Referee().Ledger().Booked())).
		Float64("refereeAccuracy", mc.Referee().Accuracy()).
		Msg("discipline")
	for playType, ts := range stats.PerType {
		console.Info().
			Str("type", string(playType)).
			Int("plays", ts.Plays).
			Float64("successRate", ts.SuccessRate).
			Float64("avgXg", ts.AvgXG).
			Msg("set pieces")
	}
}
