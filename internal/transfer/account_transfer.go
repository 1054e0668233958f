package transfer

import "github.com/maheshrc27/latedash/internal/models"

type AccountList struct {
	Accounts []models.Account `json:"accounts"`
}
