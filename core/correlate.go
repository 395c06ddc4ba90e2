package core

import (
	"github.com/huangsam/flowstate/schema"
)

// Correlate buckets every timeline entry into one of the four behavioral
// patterns and derives the impact insights. The buckets partition the
// timeline exactly: each entry belongs to exactly one bucket based on
// (music>0, video>0). All four buckets are always present in the output,
// even with zero days, so downstream consumers stay schema-stable.
func Correlate(timeline schema.Timeline) (schema.Correlations, schema.Insights) {
	byPattern := make(map[schema.PatternName][]int, len(schema.PatternOrder))
	for _, p := range schema.PatternOrder {
		byPattern[p] = nil
	}

	var withMusic, withoutMusic, withVideo, withoutVideo []int

	for _, m := range timeline {
		byPattern[patternOf(m)] = append(byPattern[patternOf(m)], m.CommitCount)

		if m.MusicCount > 0 {
			withMusic = append(withMusic, m.CommitCount)
		} else {
			withoutMusic = append(withoutMusic, m.CommitCount)
		}
		if m.VideoCount > 0 {
			withVideo = append(withVideo, m.CommitCount)
		} else {
			withoutVideo = append(withoutVideo, m.CommitCount)
		}
	}

	correlations := make(schema.Correlations, len(schema.PatternOrder))
	for _, p := range schema.PatternOrder {
		commits := byPattern[p]
		correlations[p] = schema.PatternBucket{
			AvgCommits: schema.Round1(schema.Mean(commits)),
			Days:       len(commits),
		}
	}

	insights := schema.Insights{
		MusicImpact:  schema.SignedPercent(relativeImpact(schema.Mean(withMusic), schema.Mean(withoutMusic))),
		VideoImpact:  schema.SignedPercent(relativeImpact(schema.Mean(withVideo), schema.Mean(withoutVideo))),
		SynergyBoost: schema.SignedPercent(relativeImpact(correlations[schema.BothPattern].AvgCommits, correlations[schema.NeitherPattern].AvgCommits)),
		BestPattern:  BestPattern(correlations).Title(),
	}

	return correlations, insights
}

// patternOf classifies a daily metric by presence of music and video.
func patternOf(m schema.DailyMetric) schema.PatternName {
	hasMusic := m.MusicCount > 0
	hasVideo := m.VideoCount > 0
	switch {
	case hasMusic && hasVideo:
		return schema.BothPattern
	case hasMusic:
		return schema.MusicOnlyPattern
	case hasVideo:
		return schema.VideoOnlyPattern
	default:
		return schema.NeitherPattern
	}
}

// relativeImpact computes (value-baseline)/baseline*100 rounded to one
// decimal, guarding the baseline-zero case with 0 instead of dividing.
func relativeImpact(value, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return schema.Round1((value - baseline) / baseline * 100)
}

// BestPattern returns the pattern with the maximum average commits.
// Iteration follows the fixed enumeration order so ties resolve to the
// first-encountered pattern regardless of map ordering.
func BestPattern(correlations schema.Correlations) schema.PatternName {
	best := schema.PatternOrder[0]
	bestAvg := correlations[best].AvgCommits
	for _, p := range schema.PatternOrder[1:] {
		if correlations[p].AvgCommits > bestAvg {
			best = p
			bestAvg = correlations[p].AvgCommits
		}
	}
	return best
}

// BuildDataset runs one full aggregation pass: timeline, totals,
// correlations and insights, assembled into an immutable snapshot.
func BuildDataset(timeline schema.Timeline, totals schema.Totals) *schema.Dataset {
	correlations, insights := Correlate(timeline)
	return &schema.Dataset{
		Timeline:     timeline,
		Totals:       totals,
		Correlations: correlations,
		Insights:     insights,
	}
}
