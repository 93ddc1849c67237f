package match

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/pitchlab/matchcore/internal/match"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
