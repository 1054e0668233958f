package transfer

import "github.com/maheshrc27/latedash/internal/models"

type ProfileCreation struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	IsDefault   bool   `json:"isDefault,omitempty"`
}

type ProfileList struct {
	Profiles []models.Profile `json:"profiles"`
}
