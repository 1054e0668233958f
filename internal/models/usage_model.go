package models

type UsageStats struct {
	Uploads  UploadUsage  `json:"uploads"`
	Profiles ProfileUsage `json:"profiles"`
	APICalls *APIUsage    `json:"apiCalls,omitempty"`
}

type UploadUsage struct {
	Current       int    `json:"current"`
	Limit         int    `json:"limit"`
	BillingPeriod string `json:"billingPeriod"`
	LastReset     string `json:"lastReset,omitempty"`
}

type ProfileUsage struct {
	Current int `json:"current"`
	Limit   int `json:"limit"`
}

type APIUsage struct {
	Today int `json:"today"`
	Month int `json:"month"`
	Total int `json:"total"`
}
