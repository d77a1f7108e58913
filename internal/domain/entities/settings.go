package entities

import "time"

// Settings is the single business-profile record behind the configuration
// page. There is exactly one item; reads of a missing item fall back to
// DefaultSettings.
//
// Storage model (DynamoDB):
//   - PK: id (constant "settings")

type Settings struct {
	BusinessName      string `json:"business_name"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	CurrencyCode      string `json:"currency_code"`
	LowStockThreshold int    `json:"low_stock_threshold"`

	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultSettings() Settings {
	return Settings{
		CurrencyCode:      "USD",
		LowStockThreshold: 5,
	}
}
