package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/internal/service"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

type RentalHandler struct {
	service *service.RentalService
}

func NewRentalHandler(service *service.RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

func (h *RentalHandler) Contracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.service.Contracts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contracts)
}

func (h *RentalHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	paymentID, err := h.service.CreatePayment(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{
		Message:   "payment created successfully",
		PaymentID: paymentID,
	})
}
