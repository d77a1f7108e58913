package response

import (
	"time"

	"stitchworks/internal/domain/entities"
)

type SettingsResponse struct {
	BusinessName      string    `json:"business_name"`
	Phone             string    `json:"phone,omitempty"`
	Address           string    `json:"address,omitempty"`
	CurrencyCode      string    `json:"currency_code"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromSettings(s entities.Settings) SettingsResponse {
	return SettingsResponse{
		BusinessName:      s.BusinessName,
		Phone:             s.Phone,
		Address:           s.Address,
		CurrencyCode:      s.CurrencyCode,
		LowStockThreshold: s.LowStockThreshold,
		UpdatedAt:         s.UpdatedAt,
	}
}
