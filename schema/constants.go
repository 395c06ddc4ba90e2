package schema

// Custom string types for type safety.
type (
	// Category represents the classification of a media event.
	Category string

	// PatternName represents one of the four behavioral patterns.
	PatternName string

	// ConfidenceLevel represents the qualitative rating of a prediction.
	ConfidenceLevel string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatasetBackend represents the backend for dataset snapshots.
	DatasetBackend string
)

// All media categories supported.
const (
	MusicCategory Category = "music"
	VideoCategory Category = "video" // default when no keyword matches
)

// All behavioral patterns supported.
const (
	MusicOnlyPattern PatternName = "music_only"
	VideoOnlyPattern PatternName = "video_only"
	BothPattern      PatternName = "both"
	NeitherPattern   PatternName = "neither"
)

// PatternOrder is the fixed enumeration order for pattern selection.
// Tie-breaks in best-pattern computations depend on this exact order, so it
// must never be reordered.
var PatternOrder = []PatternName{MusicOnlyPattern, VideoOnlyPattern, BothPattern, NeitherPattern}

// All confidence levels supported.
const (
	HighConfidence   ConfidenceLevel = "high"
	MediumConfidence ConfidenceLevel = "medium"
	LowConfidence    ConfidenceLevel = "low"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// All dataset backends supported.
const (
	JSONBackend       DatasetBackend = "json" // default
	SQLiteBackend     DatasetBackend = "sqlite"
	MySQLBackend      DatasetBackend = "mysql"
	PostgreSQLBackend DatasetBackend = "postgresql"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// ValidDatasetBackends lists all valid dataset backends.
var ValidDatasetBackends = map[DatasetBackend]struct{}{
	JSONBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}
