package request

// SettingsRequest replaces the configuration record wholesale.
type SettingsRequest struct {
	BusinessName      string `json:"business_name" binding:"required"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	CurrencyCode      string `json:"currency_code" binding:"required"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}
