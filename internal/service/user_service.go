package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

type userStore interface {
	FindAccountByEmail(ctx context.Context, email string) (model.Account, error)
	UpdatePassword(ctx context.Context, accountID string, passwordHash string) error
	FindProfileByAccount(ctx context.Context, accountID string) (model.Profile, error)
	ListUsers(ctx context.Context) ([]model.UserListing, error)
}

type UserService struct {
	store userStore
}

func NewUserService(store userStore) *UserService {
	return &UserService{store: store}
}

// ChangePassword verifies the current password before hashing and storing
// the new one. Wrong current password and unknown email are the same error.
func (s *UserService) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		return apierror.New("MISSING_FIELDS", "missing required fields", "", http.StatusBadRequest)
	}

	account, err := s.store.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return apierror.New("INVALID_CREDENTIALS", "invalid credentials", "", http.StatusBadRequest)
		}
		return internalError("change password: find account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apierror.New("INVALID_CREDENTIALS", "invalid credentials", "", http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return internalError("change password: hash", err)
	}

	if err := s.store.UpdatePassword(ctx, account.AccountID, string(hash)); err != nil {
		return internalError("change password: update", err)
	}

	return nil
}

func (s *UserService) List(ctx context.Context) ([]model.UserListing, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, internalError("list users", err)
	}
	return users, nil
}

// Profile returns the profile of the authenticated account.
func (s *UserService) Profile(ctx context.Context, accountID string) (model.Profile, error) {
	profile, err := s.store.FindProfileByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return model.Profile{}, apierror.New("NOT_FOUND", "profile not found", "", http.StatusNotFound)
		}
		return model.Profile{}, internalError("find profile", err)
	}
	return profile, nil
}

func internalError(op string, err error) error {
	slog.Error(op, "error", err.Error())
	return apierror.New("INTERNAL_ERROR", "internal server error", "", http.StatusInternalServerError)
}
