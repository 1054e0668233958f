package models

type RedditItem struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Subreddit     string  `json:"subreddit"`
	Score         int     `json:"score"`
	NumComments   int     `json:"numComments"`
	CreatedUtc    float64 `json:"createdUtc"`
	Selftext      string  `json:"selftext"`
	URL           string  `json:"url"`
	Permalink     string  `json:"permalink"`
	LinkFlairText string  `json:"linkFlairText,omitempty"`
}
