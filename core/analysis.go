package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/schema"
)

// Query operation constraints.
const (
	minBestHoursEntries = 3 // timeline entries needed for the best-hours heuristic
	minFlowStateDays    = 5 // bucketed days needed for pattern analysis
	minPartitionDays    = 2 // per-partition days needed for the music impact comparison
	minTotalDaysHigh    = 10
	minTotalDaysMedium  = 5
)

// BestHour is one illustrative hour slot in the best-hours payload.
type BestHour struct {
	Hour       int     `json:"hour"`
	AvgCommits float64 `json:"avg_commits"`
	DayPattern string  `json:"day_pattern"`
}

// BestHoursResult is the best-hours payload.
type BestHoursResult struct {
	BestHours      []BestHour `json:"best_hours"`
	Recommendation string     `json:"recommendation"`
	DataNote       string     `json:"data_note"`
}

// FlowStateResult is the flow-state pattern payload.
type FlowStateResult struct {
	Pattern         schema.PatternName `json:"pattern"`
	AvgCommits      float64            `json:"avg_commits"`
	BoostPercentage string             `json:"boost_percentage"`
	Recommendation  string             `json:"recommendation"`
	BaselineAvg     float64            `json:"baseline_avg"`
	DaysAnalyzed    int                `json:"days_analyzed"`
	TotalPatterns   int                `json:"total_patterns"`
}

// ProductivityResult is the per-date productivity payload.
type ProductivityResult struct {
	Date              string  `json:"date"`
	MusicCount        int     `json:"music_count"`
	VideoCount        int     `json:"video_count"`
	CommitCount       int     `json:"commit_count"`
	ProductivityScore float64 `json:"productivity_score"`
	ProductivityLevel string  `json:"productivity_level"`
	CalculationNote   string  `json:"calculation_note"`
}

// MusicImpactContext carries the statistical context behind a music impact
// comparison.
type MusicImpactContext struct {
	TotalDaysAnalyzed    int                    `json:"total_days_analyzed"`
	MusicUsagePercentage string                 `json:"music_usage_percentage"`
	Confidence           schema.ConfidenceLevel `json:"confidence"`
}

// MusicImpactResult is the music impact payload.
type MusicImpactResult struct {
	MusicBoostPercentage   string             `json:"music_boost_percentage"`
	DaysWithMusic          int                `json:"days_with_music"`
	DaysWithoutMusic       int                `json:"days_without_music"`
	AvgCommitsWithMusic    float64            `json:"avg_commits_with_music"`
	AvgCommitsWithoutMusic float64            `json:"avg_commits_without_music"`
	Recommendation         string             `json:"recommendation"`
	AnalysisContext        MusicImpactContext `json:"analysis_context"`
}

// BestHours infers productive hours from weekday versus weekend commit
// averages. The underlying records carry no hourly field, so the hour slots
// are illustrative projections of the daily averages, and the payload says
// so in its data note.
func BestHours(dataset *schema.Dataset) (*BestHoursResult, error) {
	timeline := dataset.Timeline
	if len(timeline) < minBestHoursEntries {
		return nil, insufficientEntriesError(len(timeline), minBestHoursEntries, "analysis")
	}

	var weekdayCommits, weekendCommits []int
	for _, m := range timeline {
		if m.CommitCount == 0 {
			continue
		}
		parsed, err := time.Parse(time.DateOnly, m.Date)
		if err != nil {
			continue
		}
		switch parsed.Weekday() {
		case time.Saturday, time.Sunday:
			weekendCommits = append(weekendCommits, m.CommitCount)
		default:
			weekdayCommits = append(weekdayCommits, m.CommitCount)
		}
	}

	avgWeekday := schema.Mean(weekdayCommits)
	avgWeekend := schema.Mean(weekendCommits)

	var hours []BestHour
	var recommendation string
	if avgWeekday > avgWeekend {
		hours = []BestHour{
			{Hour: 20, AvgCommits: schema.Round1(avgWeekday * 0.4), DayPattern: "weekday"},
			{Hour: 21, AvgCommits: schema.Round1(avgWeekday * 0.6), DayPattern: "weekday"},
			{Hour: 22, AvgCommits: schema.Round1(avgWeekday * 0.5), DayPattern: "weekday"},
		}
		recommendation = fmt.Sprintf("Peak productivity on weekday evenings (8-10 PM). Average %.1f commits on productive weekdays.", avgWeekday)
	} else {
		hours = []BestHour{
			{Hour: 14, AvgCommits: schema.Round1(avgWeekend * 0.4), DayPattern: "weekend"},
			{Hour: 16, AvgCommits: schema.Round1(avgWeekend * 0.6), DayPattern: "weekend"},
			{Hour: 20, AvgCommits: schema.Round1(avgWeekend * 0.5), DayPattern: "weekend"},
		}
		recommendation = fmt.Sprintf("Peak productivity on weekends with flexible hours. Average %.1f commits on productive weekends.", avgWeekend)
	}

	allZero := true
	for _, h := range hours {
		if h.AvgCommits != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		hours = []BestHour{
			{Hour: 20, AvgCommits: 5.0, DayPattern: "any"},
			{Hour: 21, AvgCommits: 7.5, DayPattern: "any"},
			{Hour: 22, AvgCommits: 6.0, DayPattern: "any"},
		}
		recommendation = "Based on general developer patterns: evening hours (8-10 PM) tend to be most productive. Collect more data for personalized insights."
	}

	return &BestHoursResult{
		BestHours:      hours,
		Recommendation: recommendation,
		DataNote:       "Insights derived from day-of-week patterns. For precise hourly analysis, hourly commit data would be needed.",
	}, nil
}

// FlowStatePattern returns the bucket with the highest average commits and
// its boost over the neither baseline.
func FlowStatePattern(dataset *schema.Dataset) (*FlowStateResult, error) {
	correlations := dataset.Correlations

	totalDays := 0
	for _, bucket := range correlations {
		totalDays += bucket.Days
	}
	if totalDays < minFlowStateDays {
		return nil, contract.NewQueryError(
			contract.ErrInsufficientData,
			"Insufficient data for meaningful analysis",
			fmt.Sprintf("Collect more data by running the correlation pipeline over several days (current: %d days, need: %d+)", totalDays, minFlowStateDays),
		)
	}

	var best schema.PatternName
	bestAvg := -1.0
	activePatterns := 0
	for _, name := range schema.PatternOrder {
		bucket := correlations[name]
		if bucket.Days == 0 {
			continue
		}
		activePatterns++
		if bucket.AvgCommits > bestAvg {
			bestAvg = bucket.AvgCommits
			best = name
		}
	}
	if best == "" {
		return nil, contract.NewQueryError(
			contract.ErrNoValidPatterns,
			"No valid patterns found in correlation data",
			"Ensure correlation data contains valid entries with commit counts",
		)
	}

	baseline := correlations[schema.NeitherPattern].AvgCommits
	var boost string
	if baseline > 0 {
		boost = schema.SignedPercent((bestAvg - baseline) / baseline * 100)
	} else {
		boost = fmt.Sprintf("+%.1f commits/day (baseline: 0)", bestAvg)
	}

	return &FlowStateResult{
		Pattern:         best,
		AvgCommits:      bestAvg,
		BoostPercentage: boost,
		Recommendation:  patternRecommendation(best),
		BaselineAvg:     baseline,
		DaysAnalyzed:    correlations[best].Days,
		TotalPatterns:   activePatterns,
	}, nil
}

// patternRecommendation maps a pattern to its canned guidance.
func patternRecommendation(pattern schema.PatternName) string {
	switch pattern {
	case schema.BothPattern:
		return "Use both music and videos for optimal productivity. The synergy between audio and visual content creates the best flow state."
	case schema.MusicOnlyPattern:
		return "Focus on music without videos for maximum productivity. Audio helps maintain focus without visual distractions."
	case schema.VideoOnlyPattern:
		return "Use videos without music for best results. Visual content provides the right stimulation for your coding sessions."
	case schema.NeitherPattern:
		return "Your productivity is highest without music or videos. A distraction-free environment works best for your flow state."
	default:
		return fmt.Sprintf("Use the '%s' pattern for optimal productivity", pattern)
	}
}

// AnalyzeProductivity scores a single day by its weighted event counts.
// Commits carry triple weight since they are the primary productivity signal.
func AnalyzeProductivity(dataset *schema.Dataset, date string) (*ProductivityResult, error) {
	if !schema.ValidDate(date) {
		return nil, contract.NewQueryError(
			contract.ErrInvalidDateFormat,
			"Invalid date format. Use YYYY-MM-DD",
			fmt.Sprintf("Provided: '%s', Expected format: 'YYYY-MM-DD', Example: '2024-01-15'", date),
		)
	}

	timeline := dataset.Timeline
	var match *schema.DailyMetric
	for i := range timeline {
		if timeline[i].Date == date {
			match = &timeline[i]
			break
		}
	}
	if match == nil {
		return nil, contract.NewQueryError(
			contract.ErrDateNotFound,
			fmt.Sprintf("No data available for %s", date),
			fmt.Sprintf("Try a different date within the available range. %s", availableDateRange(timeline)),
		)
	}

	score := schema.Round2(float64(match.CommitCount*3+match.MusicCount+match.VideoCount) / 5)

	return &ProductivityResult{
		Date:              date,
		MusicCount:        match.MusicCount,
		VideoCount:        match.VideoCount,
		CommitCount:       match.CommitCount,
		ProductivityScore: score,
		ProductivityLevel: contract.GetPlainLevel(score),
		CalculationNote:   "Score = (commits×3 + music×1 + videos×1) ÷ 5",
	}, nil
}

// availableDateRange describes the timeline's date span for error hints.
func availableDateRange(timeline schema.Timeline) string {
	if len(timeline) == 0 {
		return "No timeline data available"
	}
	dates := make([]string, len(timeline))
	for i, m := range timeline {
		dates[i] = m.Date
	}
	sort.Strings(dates)
	return fmt.Sprintf("Available dates: %s to %s", dates[0], dates[len(dates)-1])
}

// MusicImpact compares average commits on days with music against days
// without. Both partitions need at least two days for the comparison to
// mean anything.
func MusicImpact(dataset *schema.Dataset) (*MusicImpactResult, error) {
	var withMusic, withoutMusic []int
	for _, m := range dataset.Timeline {
		if m.MusicCount > 0 {
			withMusic = append(withMusic, m.CommitCount)
		} else {
			withoutMusic = append(withoutMusic, m.CommitCount)
		}
	}

	if len(withMusic) < minPartitionDays || len(withoutMusic) < minPartitionDays {
		return nil, contract.NewQueryError(
			contract.ErrInsufficientData,
			"Insufficient data for meaningful analysis",
			fmt.Sprintf("More data collection needed for meaningful analysis. Need at least %d days in each category. Current: %d days with music, %d days without music",
				minPartitionDays, len(withMusic), len(withoutMusic)),
		)
	}

	avgWith := schema.Mean(withMusic)
	avgWithout := schema.Mean(withoutMusic)

	var boostPercentage float64
	var boost string
	switch {
	case avgWithout > 0:
		boostPercentage = (avgWith - avgWithout) / avgWithout * 100
		boost = schema.SignedPercent(boostPercentage)
	case avgWith > 0:
		boost = fmt.Sprintf("+%.1f commits/day (baseline: 0)", avgWith)
	default:
		boost = "0% (no commits in either category)"
	}

	var recommendation string
	switch {
	case avgWith == 0 && avgWithout == 0:
		recommendation = "No commits recorded in either category. Focus on increasing overall coding activity."
	case boostPercentage > 50:
		recommendation = "Music significantly boosts productivity! Consider listening to music while coding for optimal performance."
	case boostPercentage > 20:
		recommendation = "Music has a moderate positive impact on productivity. Try incorporating background music into your coding sessions."
	case boostPercentage > 0:
		recommendation = "Music has a slight positive impact on productivity. Music may help maintain focus during longer coding sessions."
	case boostPercentage > -20:
		recommendation = "Music has minimal impact on productivity. Your coding performance is similar with or without music."
	default:
		recommendation = "Music appears to reduce productivity. Consider coding in a quiet environment for better focus."
	}

	totalDays := len(withMusic) + len(withoutMusic)
	confidence := schema.LowConfidence
	switch {
	case totalDays >= minTotalDaysHigh:
		confidence = schema.HighConfidence
	case totalDays >= minTotalDaysMedium:
		confidence = schema.MediumConfidence
	}

	return &MusicImpactResult{
		MusicBoostPercentage:   boost,
		DaysWithMusic:          len(withMusic),
		DaysWithoutMusic:       len(withoutMusic),
		AvgCommitsWithMusic:    schema.Round2(avgWith),
		AvgCommitsWithoutMusic: schema.Round2(avgWithout),
		Recommendation:         recommendation,
		AnalysisContext: MusicImpactContext{
			TotalDaysAnalyzed:    totalDays,
			MusicUsagePercentage: fmt.Sprintf("%.1f%%", float64(len(withMusic))/float64(totalDays)*100),
			Confidence:           confidence,
		},
	}, nil
}

// PredictCommits validates the planned inputs and delegates to the
// predictive model.
func PredictCommits(dataset *schema.Dataset, musicHours, videoMinutes float64) (*PredictionResult, error) {
	if musicHours < 0 || videoMinutes < 0 {
		return nil, contract.NewQueryError(
			contract.ErrNegativeParameters,
			"Parameters must be non-negative numbers",
			fmt.Sprintf("Provided values: music_hours=%v, video_minutes=%v. Valid ranges: music_hours >= 0, video_minutes >= 0", musicHours, videoMinutes),
		)
	}
	return Predict(dataset, musicHours, videoMinutes)
}

// insufficientEntriesError is the shared too-few-timeline-entries failure.
func insufficientEntriesError(have, need int, noun string) *contract.QueryError {
	return contract.NewQueryError(
		contract.ErrInsufficientData,
		fmt.Sprintf("Insufficient data for meaningful %s", noun),
		fmt.Sprintf("Collect more data by running the correlation pipeline over several days (current: %d data points, need: %d+)", have, need),
	)
}
