package transfer

// DashboardSummary aggregates the counters the dashboard landing page
// shows. Fields for data that failed to load stay zero and the failure
// message is appended to Errors.
type DashboardSummary struct {
	ProfileCount   int            `json:"profileCount"`
	AccountCount   int            `json:"accountCount"`
	PlatformCounts map[string]int `json:"platformCounts"`
	TotalPosts     int            `json:"totalPosts"`
	ScheduledPosts int            `json:"scheduledPosts"`
	UploadsUsed    int            `json:"uploadsUsed"`
	UploadsLimit   int            `json:"uploadsLimit"`
	Errors         []string       `json:"errors,omitempty"`
}
