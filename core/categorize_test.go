package core

import (
	"testing"

	"github.com/huangsam/flowstate/schema"
	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	c := NewDefaultCategorizer()

	tests := []struct {
		name  string
		title string
		want  schema.Category
	}{
		{"direct music term", "Lofi Hip Hop Radio", schema.MusicCategory},
		{"official music video", "Artist - Track (Official Music Video)", schema.MusicCategory},
		{"genre keyword", "Best Jazz Compilation", schema.MusicCategory},
		{"duration marker", "1 Hour of Rain Sounds", schema.MusicCategory},
		{"collaboration marker", "Singer ft. Someone Else", schema.MusicCategory},
		{"case insensitive", "RELAXING PIANO MUSIC", schema.MusicCategory},
		{"plain video", "How to season a cast iron skillet", schema.VideoCategory},
		{"tech talk", "Designing Data-Intensive Applications talk", schema.VideoCategory},
		{"empty title", "", schema.VideoCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.title))
		})
	}
}

func TestCategorizeInjectedKeywords(t *testing.T) {
	c := NewCategorizer([]string{"polka"})

	assert.Equal(t, schema.MusicCategory, c.Categorize("Ultimate Polka Hits"))
	// Default vocabulary must not leak into a custom categorizer.
	assert.Equal(t, schema.VideoCategory, c.Categorize("Lofi Hip Hop Radio"))
}

func TestCategorizeIsDeterministic(t *testing.T) {
	c := NewDefaultCategorizer()
	title := "chill beats to relax/study to"
	first := c.Categorize(title)
	for range 5 {
		assert.Equal(t, first, c.Categorize(title))
	}
}
