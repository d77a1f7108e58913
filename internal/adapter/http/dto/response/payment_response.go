package response

import (
	"encoding/json"
	"time"

	"stitchworks/internal/domain/entities"
)

type AdvancePaymentResponse struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
}

func FromAdvancePayment(p entities.AdvancePayment) AdvancePaymentResponse {
	return AdvancePaymentResponse{
		ID:              p.ID,
		OrderID:         p.OrderID,
		Date:            p.Date,
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayloadRaw,
	}
}
