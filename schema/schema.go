// Package schema has configs, models and global variables for all parts of flowstate.
package schema

// MediaEvent is a single normalized media-consumption record. Collaborators
// that produce these (watch-history parsing, CSV loading) are responsible for
// dropping records whose date fails strict YYYY-MM-DD validation; downstream
// code assumes the date is well-formed.
type MediaEvent struct {
	Date     string   // Calendar day in YYYY-MM-DD form
	Category Category // music or video
}

// CommitEvent is a single normalized code-commit record.
type CommitEvent struct {
	Date string // Calendar day in YYYY-MM-DD form
}

// DailyMetric holds the per-date aggregate counts for all three sources.
// A metric only exists for dates that saw at least one media or commit event,
// so MusicCount+VideoCount+CommitCount is always positive.
type DailyMetric struct {
	Date        string `json:"date"`
	MusicCount  int    `json:"music_count"`
	VideoCount  int    `json:"video_count"`
	CommitCount int    `json:"commit_count"`
}

// Timeline is an ordered sequence of per-date metrics. Dates are unique and
// sorted ascending; YYYY-MM-DD makes lexicographic order chronological.
type Timeline []DailyMetric

// PatternBucket holds the derived stats for one of the four behavioral
// patterns. AvgCommits is rounded to one decimal and is 0 for empty buckets.
type PatternBucket struct {
	AvgCommits float64 `json:"avg_commits"`
	Days       int     `json:"days"`
}

// Correlations maps each pattern name to its bucket. All four patterns are
// always present, even with zero days, so downstream consumers stay
// schema-stable.
type Correlations map[PatternName]PatternBucket

// Totals holds the whole-history counts for all three sources.
type Totals struct {
	TotalMusic   int `json:"total_music"`
	TotalVideos  int `json:"total_videos"`
	TotalCommits int `json:"total_commits"`
}

// Insights holds the derived impact metrics. The percentage fields carry an
// explicit sign ("+12.5%"). Insights are recomputed whenever the Timeline
// changes and are never stored apart from their source Timeline.
type Insights struct {
	MusicImpact  string `json:"music_impact"`
	VideoImpact  string `json:"video_impact"`
	SynergyBoost string `json:"synergy_boost"`
	BestPattern  string `json:"best_pattern"`
}

// Dataset is the immutable correlation snapshot produced by one aggregation
// run. The query layer loads it in full per call and never mutates it; a new
// snapshot replaces the old one only when the aggregation pipeline reruns.
type Dataset struct {
	Timeline     Timeline     `json:"timeline"`
	Totals       Totals       `json:"totals"`
	Correlations Correlations `json:"correlations"`
	Insights     Insights     `json:"insights"`
}
