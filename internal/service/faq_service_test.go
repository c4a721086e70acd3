package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ares-Judda/Wang-Api/internal/model"
)

func TestFAQService_Create(t *testing.T) {
	t.Run("stores the question with a generated id", func(t *testing.T) {
		store := new(mockFAQStore)

		var faq model.FAQ
		store.On("Create", mock.Anything, mock.AnythingOfType("model.FAQ")).
			Run(func(args mock.Arguments) { faq = args.Get(1).(model.FAQ) }).
			Return(nil)

		svc := NewFAQService(store)
		faqID, err := svc.Create(context.Background(), model.CreateFAQRequest{
			TenantID:   "tenant-1",
			PropertyID: "prop-1",
			Question:   "Se aceptan mascotas?",
		})

		require.NoError(t, err)
		assert.Equal(t, faqID, faq.FAQID)
		assert.Equal(t, "tenant-1", faq.TenantID)
		assert.Empty(t, faq.Answer)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewFAQService(new(mockFAQStore))
		_, err := svc.Create(context.Background(), model.CreateFAQRequest{Question: "hola?"})
		code, _ := apiStatus(t, err)
		assert.Equal(t, "MISSING_FIELDS", code)
	})
}

func TestFAQService_Answer(t *testing.T) {
	t.Run("answers an existing question", func(t *testing.T) {
		store := new(mockFAQStore)
		store.On("Exists", mock.Anything, "faq-1").Return(true, nil)
		store.On("SetAnswer", mock.Anything, "faq-1", "Si, hasta dos.").Return(nil)

		svc := NewFAQService(store)
		err := svc.Answer(context.Background(), model.AnswerFAQRequest{FAQID: "faq-1", Answer: "Si, hasta dos."})
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("unknown faq", func(t *testing.T) {
		store := new(mockFAQStore)
		store.On("Exists", mock.Anything, "ghost").Return(false, nil)

		svc := NewFAQService(store)
		err := svc.Answer(context.Background(), model.AnswerFAQRequest{FAQID: "ghost", Answer: "x"})

		code, status := apiStatus(t, err)
		assert.Equal(t, "NOT_FOUND", code)
		assert.Equal(t, http.StatusNotFound, status)
		store.AssertNotCalled(t, "SetAnswer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewFAQService(new(mockFAQStore))
		err := svc.Answer(context.Background(), model.AnswerFAQRequest{FAQID: "faq-1"})
		code, _ := apiStatus(t, err)
		assert.Equal(t, "MISSING_FIELDS", code)
	})
}
