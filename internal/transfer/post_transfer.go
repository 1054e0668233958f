package transfer

import "github.com/maheshrc27/latedash/internal/models"

// PostCreation is the request body for POST /posts. Targets carry the
// same platformSpecificData shape the API echoes back on reads.
type PostCreation struct {
	Content      string                `json:"content"`
	ScheduledFor string                `json:"scheduledFor,omitempty"`
	Timezone     string                `json:"timezone,omitempty"`
	MediaItems   []models.MediaItem    `json:"mediaItems,omitempty"`
	Platforms    []models.PostPlatform `json:"platforms"`
}

type PostList struct {
	Posts []models.Post `json:"posts"`
}
