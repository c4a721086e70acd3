package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/internal/service"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

type FAQHandler struct {
	service *service.FAQService
}

func NewFAQHandler(service *service.FAQService) *FAQHandler {
	return &FAQHandler{service: service}
}

func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	faqID, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{
		Message: "question created successfully",
		FAQID:   faqID,
	})
}

func (h *FAQHandler) Answer(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.AnswerFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if err := h.service.Answer(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Message: "answer updated successfully",
		FAQID:   payload.FAQID,
	})
}
