package models

type Post struct {
	ID           string         `json:"_id"`
	Content      string         `json:"content"`
	MediaItems   []MediaItem    `json:"mediaItems,omitempty"`
	ScheduledFor string         `json:"scheduledFor,omitempty"`
	Timezone     string         `json:"timezone,omitempty"`
	CreatedAt    string         `json:"createdAt"`
	Platforms    []PostPlatform `json:"platforms"`
}

type MediaItem struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// PostPlatform is one per-platform delivery record of a post. The remote
// API attaches free-form platform data (subreddit, post type, ...) under
// platformSpecificData.
type PostPlatform struct {
	Platform             string         `json:"platform"`
	AccountID            string         `json:"accountId,omitempty"`
	Status               string         `json:"status,omitempty"`
	PlatformSpecificData map[string]any `json:"platformSpecificData,omitempty"`
}

const (
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
	PostStatusDraft     = "draft"
)
