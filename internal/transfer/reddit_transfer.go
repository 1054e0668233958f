package transfer

import "github.com/maheshrc27/latedash/internal/models"

type RedditList struct {
	Items []models.RedditItem `json:"items"`
}
