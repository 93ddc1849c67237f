package setpiece

// TypeStats aggregates outcomes for one play type.
type TypeStats struct {
	Plays       int     `json:"plays"`
	Successes   int     `json:"successes"`
	SuccessRate float64 `json:"successRate"`
	AvgXG       float64 `json:"avgXg"`
}

// Stats summarizes all recorded set pieces.
type Stats struct {
	PerType        map[PlayType]TypeStats `json:"perType"`
	AvgPredictedXG float64                `json:"avgPredictedXg"`
}

// Statistics aggregates the recorded results into per-type counts and
// success fractions plus the mean predicted xG across every play.
func (p *Planner) Statistics() Stats {
	perType := make(map[PlayType]TypeStats)
	var xgSum float64
	var xgSumByType = make(map[PlayType]float64)

	for _, r := range p.history {
		ts := perType[r.Config.Type]
		ts.Plays++
		if r.Success {
			ts.Successes++
		}
		xgSumByType[r.Config.Type] += r.PredictedXG
		xgSum += r.PredictedXG
		perType[r.Config.Type] = ts
	}

	for t, ts := range perType {
		ts.SuccessRate = float64(ts.Successes) / float64(ts.Plays)
		ts.AvgXG = xgSumByType[t] / float64(ts.Plays)
		perType[t] = ts
	}

	stats := Stats{PerType: perType}
	if len(p.history) > 0 {
		stats.AvgPredictedXG = xgSum / float64(len(p.history))
	}
	return stats
}
