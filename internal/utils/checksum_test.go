package utils

import (
	"strings"
	"testing"

	"github.com/nightlight-app/storysync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStory() *models.Story {
	return &models.Story{
		ID:          "story-001",
		Title:       "The Sleepy Bear",
		Category:    "animals",
		Description: "A bear gets ready for winter",
		Version:     3,
		Pages: []models.StoryPage{
			{ID: "p1", PageNumber: 1, Text: "Once upon a time"},
			{ID: "p2", PageNumber: 2, Text: "The bear yawned"},
		},
	}
}

func TestStoryChecksum_Deterministic(t *testing.T) {
	story := sampleStory()

	first := StoryChecksum(story)
	second := StoryChecksum(story)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded SHA-256
}

func TestStoryChecksum_PageOrderIndependent(t *testing.T) {
	ordered := sampleStory()

	shuffled := sampleStory()
	shuffled.Pages[0], shuffled.Pages[1] = shuffled.Pages[1], shuffled.Pages[0]

	assert.Equal(t, StoryChecksum(ordered), StoryChecksum(shuffled))
}

func TestStoryChecksum_ChangesWithContent(t *testing.T) {
	base := StoryChecksum(sampleStory())

	tests := []struct {
		name   string
		mutate func(s *models.Story)
	}{
		{"title change", func(s *models.Story) { s.Title = "The Awake Bear" }},
		{"category change", func(s *models.Story) { s.Category = "bedtime" }},
		{"description change", func(s *models.Story) { s.Description = "changed" }},
		{"version bump", func(s *models.Story) { s.Version = 4 }},
		{"page text change", func(s *models.Story) { s.Pages[1].Text = "The bear slept" }},
		{"page added", func(s *models.Story) {
			s.Pages = append(s.Pages, models.StoryPage{ID: "p3", PageNumber: 3, Text: "The end"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			story := sampleStory()
			tt.mutate(story)
			assert.NotEqual(t, base, StoryChecksum(story))
		})
	}
}

func TestStoryChecksum_IgnoresAssetPaths(t *testing.T) {
	// Asset binaries are versioned by the asset counter, not the story
	// checksum, so moving an asset must not change the story fingerprint.
	base := sampleStory()
	moved := sampleStory()
	moved.Pages[0].ImagePath = "images/story-001/p1.png"
	moved.Pages[0].AudioPath = "audio/story-001/p1.mp3"

	assert.Equal(t, StoryChecksum(base), StoryChecksum(moved))
}

func TestDataChecksum(t *testing.T) {
	// Precomputed SHA-256 of "hello".
	const want = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

	assert.Equal(t, want, DataChecksum([]byte("hello")))
}

func TestStreamChecksum_MatchesDataChecksum(t *testing.T) {
	payload := []byte("some asset payload bytes")

	got, err := StreamChecksum(strings.NewReader(string(payload)))
	require.NoError(t, err)
	assert.Equal(t, DataChecksum(payload), got)
}
