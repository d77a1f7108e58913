package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"stitchworks/internal/domain/entities"
	"stitchworks/internal/usecase/interfaces"
)

var (
	ErrAdvancePaymentNotFound = errors.New("advance payment not found")
	ErrInvalidPaymentOrderID  = errors.New("invalid order id for payment")
	ErrInvalidProviderPayload = errors.New("invalid payment provider payload")
	ErrNoAdvanceOnOrder       = errors.New("order carries no advance to collect")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
)

// IAdvancePaymentUseCase collects an order's advance through the external
// payment provider and stores the receipt.
//
// The gateway is optional service-wide: when it is not wired, collection
// fails with ErrGatewayNotConfigured but every other order operation keeps
// working.

type IAdvancePaymentUseCase interface {
	CollectAdvance(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.AdvancePayment, error)
	GetByID(ctx context.Context, id string) (entities.AdvancePayment, error)
	LatestByOrderID(ctx context.Context, orderID string) (entities.AdvancePayment, error)
}

type AdvancePaymentUseCase struct {
	repo      interfaces.IAdvancePaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IAdvancePaymentUseCase = (*AdvancePaymentUseCase)(nil)

func NewAdvancePaymentUseCase(repo interfaces.IAdvancePaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *AdvancePaymentUseCase {
	return &AdvancePaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

func (u *AdvancePaymentUseCase) CollectAdvance(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.AdvancePayment, error) {
	log.Printf("[payment][usecase] collect-advance start order_id=%q payload_len=%d", orderID, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.AdvancePayment{}, ErrInvalidPaymentOrderID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload order_id=%s", orderID)
			return entities.AdvancePayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.AdvancePayment{}, ErrGatewayNotConfigured
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.AdvancePayment{}, err
	}
	if order.ID == "" {
		return entities.AdvancePayment{}, ErrOrderNotFound
	}
	if !order.Advance.IsPositive() {
		return entities.AdvancePayment{}, ErrNoAdvanceOnOrder
	}
	log.Printf("[payment][usecase] order loaded order_id=%s number=%s advance=%s", orderID, order.Number, order.Advance)

	// The provider reconciles through external_reference; the amount charged
	// is always the advance recorded on the order, never the caller's value.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = orderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Advance for order %s", order.Number)
		}
		reqMap["transaction_amount"], _ = order.Advance.Float64()
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external gateway order_id=%s", orderID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		mockResp := map[string]any{}
		_ = json.Unmarshal(providerPayload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.AdvancePayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Printf("[payment][usecase] gateway failed order_id=%s err=%v", orderID, err)
			return entities.AdvancePayment{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}

	p := entities.AdvancePayment{
		ID:                 providerPaymentID,
		OrderID:            orderID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] receipt create failed order_id=%s payment_id=%s err=%v", orderID, p.ID, err)
		return entities.AdvancePayment{}, err
	}
	log.Printf("[payment][usecase] collect-advance success order_id=%s payment_id=%s", orderID, created.ID)
	return created, nil
}

func (u *AdvancePaymentUseCase) GetByID(ctx context.Context, id string) (entities.AdvancePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AdvancePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AdvancePayment{}, err
	}
	if p.ID == "" {
		return entities.AdvancePayment{}, ErrAdvancePaymentNotFound
	}
	return p, nil
}

func (u *AdvancePaymentUseCase) LatestByOrderID(ctx context.Context, orderID string) (entities.AdvancePayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.AdvancePayment{}, ErrInvalidPaymentOrderID
	}

	payments, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.AdvancePayment{}, err
	}
	if len(payments) == 0 {
		return entities.AdvancePayment{}, ErrAdvancePaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
