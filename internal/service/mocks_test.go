package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ares-Judda/Wang-Api/internal/model"
)

// Hand-rolled testify mocks for the store interfaces the services consume.

type mockIdentityStore struct {
	mock.Mock
}

func (m *mockIdentityStore) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdentityStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdentityStore) FindActiveAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *mockIdentityStore) CreateIdentity(ctx context.Context, account model.Account, profile model.Profile) error {
	args := m.Called(ctx, account, profile)
	return args.Error(0)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *mockUserStore) UpdatePassword(ctx context.Context, accountID string, passwordHash string) error {
	args := m.Called(ctx, accountID, passwordHash)
	return args.Error(0)
}

func (m *mockUserStore) FindProfileByAccount(ctx context.Context, accountID string) (model.Profile, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *mockUserStore) ListUsers(ctx context.Context) ([]model.UserListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserListing), args.Error(1)
}

type mockPropertyStore struct {
	mock.Mock
}

func (m *mockPropertyStore) ListActive(ctx context.Context) ([]model.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Property), args.Error(1)
}

func (m *mockPropertyStore) Create(ctx context.Context, p model.Property, images []model.PropertyImage) error {
	args := m.Called(ctx, p, images)
	return args.Error(0)
}

func (m *mockPropertyStore) FindIDByTitle(ctx context.Context, title string) (string, error) {
	args := m.Called(ctx, title)
	return args.String(0), args.Error(1)
}

func (m *mockPropertyStore) Update(ctx context.Context, propertyID string, title *string, price *float64, description *string) error {
	args := m.Called(ctx, propertyID, title, price, description)
	return args.Error(0)
}

func (m *mockPropertyStore) AddImages(ctx context.Context, images []model.PropertyImage) error {
	args := m.Called(ctx, images)
	return args.Error(0)
}

func (m *mockPropertyStore) Details(ctx context.Context, title string) (model.PropertyDetails, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(model.PropertyDetails), args.Error(1)
}

type mockFAQStore struct {
	mock.Mock
}

func (m *mockFAQStore) Create(ctx context.Context, faq model.FAQ) error {
	args := m.Called(ctx, faq)
	return args.Error(0)
}

func (m *mockFAQStore) Exists(ctx context.Context, faqID string) (bool, error) {
	args := m.Called(ctx, faqID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFAQStore) SetAnswer(ctx context.Context, faqID string, answer string) error {
	args := m.Called(ctx, faqID, answer)
	return args.Error(0)
}

type mockContractStore struct {
	mock.Mock
}

func (m *mockContractStore) ListActive(ctx context.Context) ([]model.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contract), args.Error(1)
}

func (m *mockContractStore) Exists(ctx context.Context, contractID string) (bool, error) {
	args := m.Called(ctx, contractID)
	return args.Bool(0), args.Error(1)
}

type mockPaymentStore struct {
	mock.Mock
}

func (m *mockPaymentStore) Create(ctx context.Context, p model.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
