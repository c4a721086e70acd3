package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

type faqStore interface {
	Create(ctx context.Context, faq model.FAQ) error
	Exists(ctx context.Context, faqID string) (bool, error)
	SetAnswer(ctx context.Context, faqID string, answer string) error
}

type FAQService struct {
	store faqStore
}

func NewFAQService(store faqStore) *FAQService {
	return &FAQService{store: store}
}

func (s *FAQService) Create(ctx context.Context, req model.CreateFAQRequest) (string, error) {
	if strings.TrimSpace(req.TenantID) == "" || strings.TrimSpace(req.PropertyID) == "" ||
		strings.TrimSpace(req.Question) == "" {
		return "", apierror.New("MISSING_FIELDS", "tenantId, propertyId and question are required", "", http.StatusBadRequest)
	}

	faqID := uuid.NewString()
	faq := model.FAQ{
		FAQID:      faqID,
		TenantID:   req.TenantID,
		PropertyID: req.PropertyID,
		Question:   req.Question,
	}

	if err := s.store.Create(ctx, faq); err != nil {
		return "", internalError("create faq", err)
	}

	return faqID, nil
}

func (s *FAQService) Answer(ctx context.Context, req model.AnswerFAQRequest) error {
	if strings.TrimSpace(req.FAQID) == "" || strings.TrimSpace(req.Answer) == "" {
		return apierror.New("MISSING_FIELDS", "faqId and answer are required", "", http.StatusBadRequest)
	}

	exists, err := s.store.Exists(ctx, req.FAQID)
	if err != nil {
		return internalError("answer faq: lookup", err)
	}
	if !exists {
		return apierror.New("NOT_FOUND", "faq not found", "", http.StatusNotFound)
	}

	if err := s.store.SetAnswer(ctx, req.FAQID, req.Answer); err != nil {
		if errors.Is(err, model.ErrFAQNotFound) {
			return apierror.New("NOT_FOUND", "faq not found", "", http.StatusNotFound)
		}
		return internalError("answer faq", err)
	}

	return nil
}
