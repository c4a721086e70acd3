//go:build integration

package integration

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerOwner creates an account and returns the profile's user id, which
// properties reference as their owner.
func registerOwner(t *testing.T, serverURL string, email string, username string) string {
	t.Helper()

	registerResp := postJSON(t, serverURL+"/api/auth/register", registerPayload(email, username))
	require.Equal(t, http.StatusCreated, registerResp.StatusCode)

	loginResp := postJSON(t, serverURL+"/api/auth/login", map[string]string{
		"email":    email,
		"password": "s3cret123",
	})
	require.Equal(t, http.StatusOK, loginResp.StatusCode)

	var pair struct {
		AccessToken string `json:"accessToken"`
	}
	decodeJSON(t, loginResp, &pair)

	req, err := http.NewRequest(http.MethodGet, serverURL+"/api/users/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

	profileResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = profileResp.Body.Close() })
	require.Equal(t, http.StatusOK, profileResp.StatusCode)

	var profile struct {
		UserID string `json:"userId"`
	}
	decodeJSON(t, profileResp, &profile)
	require.NotEmpty(t, profile.UserID)
	return profile.UserID
}

func TestPropertyLifecycle(t *testing.T) {
	server := newServer(t)
	ownerID := registerOwner(t, server.URL, "owner@example.com", "propowner")

	createResp := postJSON(t, server.URL+"/api/properties", map[string]any{
		"title":       "Loft centro",
		"categoryId":  2,
		"address":     "Av. Juarez 10",
		"latitude":    19.43,
		"longitude":   -99.13,
		"price":       8500,
		"description": "Loft amueblado",
		"ownerId":     ownerID,
	})
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	var created struct {
		PropertyID string `json:"propertyId"`
	}
	decodeJSON(t, createResp, &created)
	require.NotEmpty(t, created.PropertyID)

	listResp, err := http.Get(server.URL + "/api/properties")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listResp.Body.Close() })
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var properties []struct {
		PropertyID string `json:"propertyId"`
		Title      string `json:"title"`
	}
	decodeJSON(t, listResp, &properties)
	require.Len(t, properties, 1)
	assert.Equal(t, "Loft centro", properties[0].Title)

	detailsResp, err := http.Get(server.URL + "/api/properties/details?title=" + url.QueryEscape("Loft centro"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = detailsResp.Body.Close() })
	require.Equal(t, http.StatusOK, detailsResp.StatusCode)

	var details struct {
		PropertyID string `json:"propertyId"`
		OwnerName  string `json:"ownerName"`
	}
	decodeJSON(t, detailsResp, &details)
	assert.Equal(t, created.PropertyID, details.PropertyID)
	assert.Equal(t, "Ana Torres", details.OwnerName)
}

func TestPropertyUpdateByCurrentTitle(t *testing.T) {
	server := newServer(t)
	ownerID := registerOwner(t, server.URL, "owner2@example.com", "propowner2")

	createResp := postJSON(t, server.URL+"/api/properties", map[string]any{
		"title":       "Casa jardin",
		"categoryId":  1,
		"address":     "Calle Roble 5",
		"latitude":    19.50,
		"longitude":   -99.20,
		"price":       12000,
		"description": "Casa con jardin",
		"ownerId":     ownerID,
	})
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/properties",
		jsonBody(t, map[string]any{"currentTitle": "Casa jardin", "price": 13000}))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	updateResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = updateResp.Body.Close() })
	require.Equal(t, http.StatusOK, updateResp.StatusCode)

	detailsResp, err := http.Get(server.URL + "/api/properties/details?title=" + url.QueryEscape("Casa jardin"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = detailsResp.Body.Close() })
	require.Equal(t, http.StatusOK, detailsResp.StatusCode)

	var details struct {
		Price float64 `json:"price"`
	}
	decodeJSON(t, detailsResp, &details)
	assert.Equal(t, 13000.0, details.Price)
}

func TestFAQFlow(t *testing.T) {
	server := newServer(t)
	ownerID := registerOwner(t, server.URL, "faqowner@example.com", "faqowner")
	tenantID := registerOwner(t, server.URL, "tenant@example.com", "faqtenant")

	createResp := postJSON(t, server.URL+"/api/properties", map[string]any{
		"title":       "Depto sur",
		"categoryId":  3,
		"address":     "Sur 12",
		"latitude":    19.30,
		"longitude":   -99.10,
		"price":       6000,
		"description": "Departamento al sur",
		"ownerId":     ownerID,
	})
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	var property struct {
		PropertyID string `json:"propertyId"`
	}
	decodeJSON(t, createResp, &property)

	faqResp := postJSON(t, server.URL+"/api/faqs", map[string]string{
		"tenantId":   tenantID,
		"propertyId": property.PropertyID,
		"question":   "Se aceptan mascotas?",
	})
	require.Equal(t, http.StatusCreated, faqResp.StatusCode)

	var faq struct {
		FAQID string `json:"faqId"`
	}
	decodeJSON(t, faqResp, &faq)
	require.NotEmpty(t, faq.FAQID)

	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/faqs/answer",
		jsonBody(t, map[string]string{"faqId": faq.FAQID, "answer": "Si, hasta dos."}))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	answerResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = answerResp.Body.Close() })
	assert.Equal(t, http.StatusOK, answerResp.StatusCode)
}

func TestContractsEmptyIs404(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/api/contracts")
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPaymentUnknownContractIs404(t *testing.T) {
	server := newServer(t)

	resp := postJSON(t, server.URL+"/api/payments", map[string]any{
		"contractId":    "00000000-0000-0000-0000-000000000000",
		"paymentMethod": "card",
		"amount":        100,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
