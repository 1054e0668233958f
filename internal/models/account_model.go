package models

type Account struct {
	ID          string `json:"_id"`
	Platform    string `json:"platform"`
	Username    string `json:"username"`
	IsActive    bool   `json:"isActive"`
	ConnectedAt string `json:"connectedAt"`
	LastUsed    string `json:"lastUsed"`
}

const (
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformLinkedin  = "linkedin"
	PlatformReddit    = "reddit"
	PlatformDiscord   = "discord"
	PlatformTelegram  = "telegram"
)
