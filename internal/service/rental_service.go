package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

type contractStore interface {
	ListActive(ctx context.Context) ([]model.Contract, error)
	Exists(ctx context.Context, contractID string) (bool, error)
}

type paymentStore interface {
	Create(ctx context.Context, p model.Payment) error
}

// RentalService covers the contract/payment surface of the marketplace.
type RentalService struct {
	contracts contractStore
	payments  paymentStore
}

func NewRentalService(contracts contractStore, payments paymentStore) *RentalService {
	return &RentalService{contracts: contracts, payments: payments}
}

// Contracts lists contracts for active properties. Clients treat an empty
// result as a 404, not an empty array.
func (s *RentalService) Contracts(ctx context.Context) ([]model.Contract, error) {
	contracts, err := s.contracts.ListActive(ctx)
	if err != nil {
		return nil, internalError("list contracts", err)
	}
	if len(contracts) == 0 {
		return nil, apierror.New("NOT_FOUND", "no contracts found", "", http.StatusNotFound)
	}
	return contracts, nil
}

func (s *RentalService) CreatePayment(ctx context.Context, req model.CreatePaymentRequest) (string, error) {
	if strings.TrimSpace(req.ContractID) == "" || strings.TrimSpace(req.PaymentMethod) == "" || req.Amount == 0 {
		return "", apierror.New("MISSING_FIELDS", "contractId, paymentMethod and amount are required", "", http.StatusBadRequest)
	}

	exists, err := s.contracts.Exists(ctx, req.ContractID)
	if err != nil {
		return "", internalError("create payment: contract lookup", err)
	}
	if !exists {
		return "", apierror.New("NOT_FOUND", "contract not found", "", http.StatusNotFound)
	}

	paymentID := uuid.NewString()
	payment := model.Payment{
		PaymentID:     paymentID,
		ContractID:    req.ContractID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return "", internalError("create payment", err)
	}

	return paymentID, nil
}
