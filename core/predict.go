package core

import (
	"fmt"
	"math"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/schema"
)

// Predictive model constants.
const (
	minPredictionEntries = 3 // minimum timeline entries for any prediction

	fallbackMusicCoefficient = 0.5 // used when history has no music sessions
	fallbackVideoCoefficient = 0.1 // used when history has no videos

	assumedDailyMusicHours   = 2.0  // assumed music exposure behind a music_only day
	assumedDailyVideoMinutes = 60.0 // assumed video exposure behind a video_only day
	avgVideoLengthMinutes    = 10.0 // converts planned minutes to a video count
)

// Confidence thresholds.
const (
	highSimilarity   = 0.8
	mediumSimilarity = 0.6
	highMinEntries   = 10
	mediumMinEntries = 5
)

// PredictionContext carries the coefficients and historical averages behind
// a prediction, for transparency.
type PredictionContext struct {
	MusicCoefficient     float64 `json:"music_coefficient"`
	VideoCoefficient     float64 `json:"video_coefficient"`
	HistoricalDataPoints int     `json:"historical_data_points"`
	AvgHistoricalMusic   float64 `json:"avg_historical_music"`
	AvgHistoricalVideos  float64 `json:"avg_historical_videos"`
}

// PredictionInput echoes the validated request parameters.
type PredictionInput struct {
	MusicHours      float64 `json:"music_hours"`
	VideoMinutes    float64 `json:"video_minutes"`
	ParametersValid bool    `json:"parameters_valid"`
}

// PredictionResult is the commit prediction payload.
type PredictionResult struct {
	PredictedCommits  float64                `json:"predicted_commits"`
	ConfidenceLevel   schema.ConfidenceLevel `json:"confidence_level"`
	FactorsConsidered []string               `json:"factors_considered"`
	PredictionContext PredictionContext      `json:"prediction_context"`
	InputValidation   PredictionInput        `json:"input_validation"`
}

// Predict estimates the commit count for a day with the planned music hours
// and video minutes, using a fixed-form linear model recomputed from the
// dataset on every call. Inputs are assumed non-negative; the query layer
// validates them before delegating here.
func Predict(dataset *schema.Dataset, musicHours, videoMinutes float64) (*PredictionResult, error) {
	timeline := dataset.Timeline
	if len(timeline) < minPredictionEntries {
		return nil, contract.NewQueryError(
			contract.ErrInsufficientData,
			"Insufficient data for meaningful prediction",
			fmt.Sprintf("Collect more data by running the correlation pipeline over several days (current: %d data points, need: %d+)", len(timeline), minPredictionEntries),
		)
	}

	musicCoefficient, videoCoefficient := deriveCoefficients(dataset)

	// 1 planned music hour counts as 1 historical music session; planned
	// video minutes convert at the assumed average video length.
	videos := videoMinutes / avgVideoLengthMinutes

	baseline := dataset.Correlations[schema.NeitherPattern].AvgCommits
	predicted := schema.Round1(musicHours*musicCoefficient + videos*videoCoefficient + baseline)

	avgMusicSessions, avgVideoMinutes := historicalDailyAverages(timeline)
	confidence := confidenceLevel(musicHours, videoMinutes, avgMusicSessions, avgVideoMinutes, len(timeline))

	factors := []string{"historical_music_impact", "video_consumption_patterns", "base_productivity", "correlation_analysis"}
	if len(timeline) >= highMinEntries {
		factors = append(factors, "sufficient_historical_data")
	}

	return &PredictionResult{
		PredictedCommits:  predicted,
		ConfidenceLevel:   confidence,
		FactorsConsidered: factors,
		PredictionContext: PredictionContext{
			MusicCoefficient:     round3(musicCoefficient),
			VideoCoefficient:     round3(videoCoefficient),
			HistoricalDataPoints: len(timeline),
			AvgHistoricalMusic:   schema.Round1(avgMusicSessions),
			AvgHistoricalVideos:  schema.Round1(avgVideoMinutes),
		},
		InputValidation: PredictionInput{
			MusicHours:      musicHours,
			VideoMinutes:    videoMinutes,
			ParametersValid: true,
		},
	}, nil
}

// deriveCoefficients computes commits-per-session and commits-per-video from
// the totals, then refines each upward (never downward) from the correlation
// buckets when the corresponding pattern outperforms the baseline.
func deriveCoefficients(dataset *schema.Dataset) (float64, float64) {
	totals := dataset.Totals

	musicCoefficient := fallbackMusicCoefficient
	if totals.TotalMusic > 0 {
		musicCoefficient = float64(totals.TotalCommits) / float64(totals.TotalMusic)
	}
	videoCoefficient := fallbackVideoCoefficient
	if totals.TotalVideos > 0 {
		videoCoefficient = float64(totals.TotalCommits) / float64(totals.TotalVideos)
	}

	neitherAvg := dataset.Correlations[schema.NeitherPattern].AvgCommits
	if musicOnlyAvg := dataset.Correlations[schema.MusicOnlyPattern].AvgCommits; musicOnlyAvg > neitherAvg {
		musicCoefficient = max(musicCoefficient, (musicOnlyAvg-neitherAvg)/assumedDailyMusicHours)
	}
	if videoOnlyAvg := dataset.Correlations[schema.VideoOnlyPattern].AvgCommits; videoOnlyAvg > neitherAvg {
		videoCoefficient = max(videoCoefficient, (videoOnlyAvg-neitherAvg)/assumedDailyVideoMinutes)
	}

	return musicCoefficient, videoCoefficient
}

// historicalDailyAverages returns the mean daily music sessions and the mean
// daily video minutes (video count at the assumed average length).
func historicalDailyAverages(timeline schema.Timeline) (float64, float64) {
	musicCounts := make([]int, len(timeline))
	videoCounts := make([]int, len(timeline))
	for i, m := range timeline {
		musicCounts[i] = m.MusicCount
		videoCounts[i] = m.VideoCount
	}
	return schema.Mean(musicCounts), schema.Mean(videoCounts) * avgVideoLengthMinutes
}

// confidenceLevel rates how closely the requested inputs resemble the
// historical daily averages, gated by how much history exists.
func confidenceLevel(musicHours, videoMinutes, avgMusic, avgVideoMinutes float64, entries int) schema.ConfidenceLevel {
	musicSimilarity := similarity(musicHours, avgMusic)
	videoSimilarity := similarity(videoMinutes, avgVideoMinutes)
	score := (musicSimilarity + videoSimilarity) / 2

	switch {
	case score > highSimilarity && entries >= highMinEntries:
		return schema.HighConfidence
	case score > mediumSimilarity && entries >= mediumMinEntries:
		return schema.MediumConfidence
	default:
		return schema.LowConfidence
	}
}

// similarity is 1 - |requested-historical| / max(requested+historical, 1),
// always in [0, 1].
func similarity(requested, historical float64) float64 {
	diff := requested - historical
	if diff < 0 {
		diff = -diff
	}
	return 1 - diff/max(requested+historical, 1)
}

// round3 rounds a coefficient to three decimals for display.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
