package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/internal/service"
)

func TestRentalHandler_Contracts(t *testing.T) {
	t.Run("lists contracts", func(t *testing.T) {
		contracts := newFakeContractStore()
		contracts.contracts = []model.Contract{
			{ContractFile: "/files/c1.pdf", Title: "Loft centro", StartDate: time.Now()},
		}

		h := NewRentalHandler(service.NewRentalService(contracts, &fakePaymentStore{}))
		req := httptest.NewRequest("GET", "/api/contracts", nil)
		rec := httptest.NewRecorder()
		h.Contracts(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []model.Contract
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Loft centro", got[0].Title)
	})

	t.Run("empty list is a 404", func(t *testing.T) {
		h := NewRentalHandler(service.NewRentalService(newFakeContractStore(), &fakePaymentStore{}))
		req := httptest.NewRequest("GET", "/api/contracts", nil)
		rec := httptest.NewRecorder()
		h.Contracts(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})
}

func TestRentalHandler_CreatePayment(t *testing.T) {
	contracts := newFakeContractStore()
	contracts.existing["contract-1"] = true
	payments := &fakePaymentStore{}
	h := NewRentalHandler(service.NewRentalService(contracts, payments))

	t.Run("success", func(t *testing.T) {
		rec := postJSON(t, h.CreatePayment, "/api/payments", map[string]any{
			"contractId":    "contract-1",
			"paymentMethod": "card",
			"amount":        8500,
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var body model.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.PaymentID)
		assert.Equal(t, body.PaymentID, payments.created.PaymentID)
		assert.Equal(t, 8500.0, payments.created.Amount)
	})

	t.Run("unknown contract", func(t *testing.T) {
		rec := postJSON(t, h.CreatePayment, "/api/payments", map[string]any{
			"contractId":    "ghost",
			"paymentMethod": "card",
			"amount":        100,
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
