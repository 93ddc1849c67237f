package match

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// metrics holds the OTel instruments for one match context.
// Uses the global OTel meter (no-op if no SDK is configured).
type metrics struct {
	ticks    metric.Int64Counter
	fouls    metric.Int64Counter
	cards    metric.Int64Counter
	events   metric.Int64Counter
	injuries metric.Int64Counter
}

func newMetrics() (*metrics, error) {
	m := meter()
	var out metrics
	var err error

	out.ticks, err = m.Int64Counter(
		"match.ticks.processed",
		metric.WithDescription("Total simulation ticks stepped"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tick counter: %w", err)
	}

	out.fouls, err = m.Int64Counter(
		"match.fouls.processed",
		metric.WithDescription("Total foul events ruled on"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating foul counter: %w", err)
	}

	out.cards, err = m.Int64Counter(
		"match.cards.shown",
		metric.WithDescription("Total cards shown"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating card counter: %w", err)
	}

	out.events, err = m.Int64Counter(
		"match.events.triggered",
		metric.WithDescription("Total dynamic events triggered"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating event counter: %w", err)
	}

	out.injuries, err = m.Int64Counter(
		"match.injuries.rolled",
		metric.WithDescription("Total injuries triggered"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating injury counter: %w", err)
	}

	return &out, nil
}
