// Package core has core logic for aggregation, correlation, prediction and
// the query operations built on top of them.
package core

import (
	"strings"

	"github.com/huangsam/flowstate/schema"
)

// DefaultMusicKeywords is the fixed vocabulary of music-indicative terms.
// Presence of any keyword anywhere in a lower-cased title classifies it as
// music. The list is a quality-of-fit heuristic, not ground truth; false
// positives are expected and accepted.
var DefaultMusicKeywords = []string{
	// Direct music terms
	"music", "song", "beats", "lofi", "lo-fi", "synthwave", "playlist", "mix", "audio",
	"album", "track", "instrumental", "acoustic", "live music", "soundtrack", "ost",

	// Music video indicators
	"official music video", "official video", "music video", "mv", "lyrics",
	"lyric video", "official audio", "full album", "ep", "single",

	// Genres
	"jazz", "classical", "hip hop", "rap", "edm", "electronic", "rock", "pop",
	"indie", "folk", "country", "r&b", "soul", "funk", "reggae", "blues",
	"metal", "punk", "alternative", "ambient", "chill", "downtempo",

	// Study/focus music
	"study music", "background music", "focus music", "relaxing", "meditation",
	"1 hour", "8 hour", "10 hours", "sleep music", "calm", "peaceful",

	// Music-related terms
	"remix", "cover", "acoustic version", "live performance", "concert",
	"studio session", "unplugged", "karaoke", "piano version", "guitar",
	"bass", "drums", "vocal", "singing", "singer", "artist", "band",

	// Common music video patterns
	"ft.", "feat.", "featuring", "vs.", "x ", " x ", "collab", "duet",
}

// Categorizer classifies media titles into music or video by keyword
// matching. The keyword table is injected at construction so tests can
// substitute a smaller vocabulary.
type Categorizer struct {
	keywords []string
}

// NewCategorizer creates a categorizer with the given keyword table.
func NewCategorizer(keywords []string) *Categorizer {
	return &Categorizer{keywords: keywords}
}

// NewDefaultCategorizer creates a categorizer with the standard vocabulary.
func NewDefaultCategorizer() *Categorizer {
	return NewCategorizer(DefaultMusicKeywords)
}

// Categorize returns MusicCategory if any keyword occurs in the lower-cased
// title, else VideoCategory. Matching is a logical OR with no ordering
// dependency among keywords. Empty titles classify as video since no keyword
// can match.
func (c *Categorizer) Categorize(title string) schema.Category {
	lower := strings.ToLower(title)
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			return schema.MusicCategory
		}
	}
	return schema.VideoCategory
}
