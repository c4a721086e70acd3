//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ares-Judda/Wang-Api/internal/config"
	"github.com/Ares-Judda/Wang-Api/internal/database"
	"github.com/Ares-Judda/Wang-Api/internal/handler"
	"github.com/Ares-Judda/Wang-Api/internal/middleware"
	"github.com/Ares-Judda/Wang-Api/internal/repository"
	"github.com/Ares-Judda/Wang-Api/internal/router"
	"github.com/Ares-Judda/Wang-Api/internal/service"
	"github.com/Ares-Judda/Wang-Api/internal/storage"
)

const (
	testAccessSecret  = "integration-access-secret"
	testRefreshSecret = "integration-refresh-secret"
)

// newServer boots the full stack against TEST_DATABASE_URL and truncates
// all tables so every test starts from an empty database.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	db, err := database.New(ctx, databaseURL, 5, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))

	_, err = db.Pool.Exec(ctx, `TRUNCATE payments, contracts, appointments, faqs, reviews, property_images, properties, users, accounts CASCADE`)
	require.NoError(t, err)

	uploads, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)

	identityRepo := repository.NewIdentityRepository(db.Pool)
	propertyRepo := repository.NewPropertyRepository(db.Pool)
	faqRepo := repository.NewFAQRepository(db.Pool)
	contractRepo := repository.NewContractRepository(db.Pool)
	paymentRepo := repository.NewPaymentRepository(db.Pool)

	authService, err := service.NewAuthService(identityRepo, testAccessSecret, testRefreshSecret, 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)
	userService := service.NewUserService(identityRepo)
	propertyService := service.NewPropertyService(propertyRepo)
	faqService := service.NewFAQService(faqRepo)
	rentalService := service.NewRentalService(contractRepo, paymentRepo)

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		DatabaseURL:      databaseURL,
		JWTAccessSecret:  testAccessSecret,
		JWTRefreshSecret: testRefreshSecret,
		JWTAccessTTL:     15 * time.Minute,
		JWTRefreshTTL:    24 * time.Hour,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
		UploadRoot:       uploads.Root(),
		MaxUploadSize:    10 * 1024 * 1024,
	}

	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(authService, uploads, cfg.MaxUploadSize),
		User:     handler.NewUserHandler(userService),
		Property: handler.NewPropertyHandler(propertyService, uploads, cfg.MaxUploadSize),
		FAQ:      handler.NewFAQHandler(faqService),
		Rental:   handler.NewRentalHandler(rentalService),
		Docs:     handler.NewDocsHandler(""),
	}

	authMiddleware := middleware.NewAuthMiddleware(authService)
	server := httptest.NewServer(router.New(cfg, authMiddleware, handlers, uploads.Root(), db.Health))
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func jsonBody(t *testing.T, payload any) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerPayload(email string, username string) map[string]string {
	return map[string]string{
		"email":    email,
		"password": "s3cret123",
		"name":     "Ana",
		"lastname": "Torres",
		"userName": username,
		"phone":    "5551234",
	}
}
