package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

// bcryptCost matches the work factor the stored hashes were created with.
const bcryptCost = 10

type identityStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	FindActiveAccountByEmail(ctx context.Context, email string) (model.Account, error)
	CreateIdentity(ctx context.Context, account model.Account, profile model.Profile) error
}

// AuthService owns the registration, login and token-refresh workflows.
// Tokens are stateless: possession of a valid signature is the whole proof,
// nothing is persisted per session.
type AuthService struct {
	store         identityStore
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(store identityStore, accessSecret string, refreshSecret string, accessTTL time.Duration, refreshTTL time.Duration) (*AuthService, error) {
	if strings.TrimSpace(accessSecret) == "" || strings.TrimSpace(refreshSecret) == "" {
		return nil, errors.New("both token secrets are required")
	}

	return &AuthService{
		store:         store,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// Register runs the uniqueness checks, hashes the password and creates the
// account and profile atomically. No tokens are issued; the caller logs in
// separately. The returned id is the new account's.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Lastname = strings.TrimSpace(req.Lastname)
	req.Username = strings.TrimSpace(req.Username)

	if req.Email == "" || req.Password == "" || req.Name == "" || req.Lastname == "" || req.Username == "" {
		return "", apierror.New("MISSING_FIELDS", "missing required fields", "", http.StatusBadRequest)
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "user"
	}

	taken, err := s.store.EmailExists(ctx, req.Email)
	if err != nil {
		return "", internalError("register: email check", err)
	}
	if taken {
		return "", apierror.New("EMAIL_TAKEN", "email already registered", "", http.StatusBadRequest)
	}

	taken, err = s.store.UsernameExists(ctx, req.Username)
	if err != nil {
		return "", internalError("register: username check", err)
	}
	if taken {
		return "", apierror.New("USERNAME_TAKEN", "username already in use", "", http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return "", internalError("register: hash password", err)
	}

	accountID := uuid.NewString()
	userID := uuid.NewString()

	account := model.Account{
		AccountID:    accountID,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	profile := model.Profile{
		UserID:          userID,
		AccountID:       accountID,
		Username:        req.Username,
		FullName:        req.Name + " " + req.Lastname,
		Phone:           strings.TrimSpace(req.Phone),
		Address:         strings.TrimSpace(req.Address),
		ProfileImageURL: req.ProfileImageURL,
	}

	if err := s.store.CreateIdentity(ctx, account, profile); err != nil {
		// A unique violation here means a concurrent registration won the
		// window between the existence checks and the insert. The accepted
		// contract is an internal error, not EMAIL_TAKEN.
		return "", internalError("register: create identity", err)
	}

	return accountID, nil
}

// Login verifies credentials against the active account and issues a token
// pair. Unknown email, deactivated account and wrong password are all the
// same failure so callers cannot probe for account existence.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.TokenPair, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.TokenPair{}, apierror.New("MISSING_FIELDS", "missing required fields", "", http.StatusBadRequest)
	}

	account, err := s.store.FindActiveAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return model.TokenPair{}, apierror.New("INVALID_CREDENTIALS", "invalid credentials", "", http.StatusBadRequest)
		}
		return model.TokenPair{}, internalError("login: find account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return model.TokenPair{}, apierror.New("INVALID_CREDENTIALS", "invalid credentials", "", http.StatusBadRequest)
	}

	return s.issueTokenPair(model.AuthClaims{AccountID: account.AccountID, Role: account.Role})
}

// Refresh mints a new pair from a valid refresh token. The claims are taken
// from the token as-is, without consulting the store, and the presented
// token stays valid until its own expiry.
func (s *AuthService) Refresh(refreshToken string) (model.TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return model.TokenPair{}, apierror.New("MISSING_TOKEN", "refresh token required", "", http.StatusUnauthorized)
	}

	claims, err := s.parseToken(refreshToken, s.refreshSecret)
	if err != nil {
		return model.TokenPair{}, apierror.New("INVALID_TOKEN", "invalid token", "", http.StatusForbidden)
	}

	return s.issueTokenPair(*claims)
}

// ValidateAccess backs the auth middleware: it checks a token against the
// access secret and returns its claims.
func (s *AuthService) ValidateAccess(tokenString string) (*model.AuthClaims, error) {
	claims, err := s.parseToken(tokenString, s.accessSecret)
	if err != nil {
		return nil, apierror.New("INVALID_TOKEN", "invalid token", "", http.StatusUnauthorized)
	}
	return claims, nil
}

func (s *AuthService) issueTokenPair(claims model.AuthClaims) (model.TokenPair, error) {
	now := time.Now().UTC()

	access, err := signToken(claims, s.accessSecret, now, s.accessTTL)
	if err != nil {
		return model.TokenPair{}, internalError("sign access token", err)
	}

	refresh, err := signToken(claims, s.refreshSecret, now, s.refreshTTL)
	if err != nil {
		return model.TokenPair{}, internalError("sign refresh token", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func signToken(claims model.AuthClaims, secret []byte, now time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   claims.AccountID,
		"role": claims.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

func (s *AuthService) parseToken(tokenString string, secret []byte) (*model.AuthClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	claims := &model.AuthClaims{}
	claims.AccountID, _ = claimsMap["id"].(string)
	claims.Role, _ = claimsMap["role"].(string)
	if claims.AccountID == "" {
		return nil, model.ErrInvalidToken
	}

	return claims, nil
}
