package handler

import (
	"context"

	"github.com/Ares-Judda/Wang-Api/internal/model"
)

// In-memory store fakes. Handler tests run real services on top of them so
// a request travels the same path it would in production, minus Postgres.

type fakeIdentityStore struct {
	accounts  map[string]model.Account
	usernames map[string]bool
	profiles  map[string]model.Profile

	createdAccount model.Account
	createdProfile model.Profile
	createErr      error
}

func newFakeIdentityStore() *fakeIdentityStore {
	return &fakeIdentityStore{
		accounts:  map[string]model.Account{},
		usernames: map[string]bool{},
		profiles:  map[string]model.Profile{},
	}
}

func (f *fakeIdentityStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.accounts[email]
	return ok, nil
}

func (f *fakeIdentityStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	return f.usernames[username], nil
}

func (f *fakeIdentityStore) FindActiveAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	account, ok := f.accounts[email]
	if !ok || !account.IsActive {
		return model.Account{}, model.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeIdentityStore) CreateIdentity(ctx context.Context, account model.Account, profile model.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdAccount = account
	f.createdProfile = profile
	f.accounts[account.Email] = account
	f.usernames[profile.Username] = true
	f.profiles[account.AccountID] = profile
	return nil
}

type fakeUserStore struct {
	accounts map[string]model.Account
	profiles map[string]model.Profile
	users    []model.UserListing

	updatedAccountID string
	updatedHash      string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		accounts: map[string]model.Account{},
		profiles: map[string]model.Profile{},
	}
}

func (f *fakeUserStore) FindAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return model.Account{}, model.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, accountID string, passwordHash string) error {
	f.updatedAccountID = accountID
	f.updatedHash = passwordHash
	return nil
}

func (f *fakeUserStore) FindProfileByAccount(ctx context.Context, accountID string) (model.Profile, error) {
	profile, ok := f.profiles[accountID]
	if !ok {
		return model.Profile{}, model.ErrAccountNotFound
	}
	return profile, nil
}

func (f *fakeUserStore) ListUsers(ctx context.Context) ([]model.UserListing, error) {
	return f.users, nil
}

type fakePropertyStore struct {
	properties []model.Property
	idsByTitle map[string]string
	details    map[string]model.PropertyDetails

	created       model.Property
	createdImages []model.PropertyImage
	updatedID     string
	updatedTitle  *string
	updatedPrice  *float64
	updatedDesc   *string
	addedImages   []model.PropertyImage
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{
		idsByTitle: map[string]string{},
		details:    map[string]model.PropertyDetails{},
	}
}

func (f *fakePropertyStore) ListActive(ctx context.Context) ([]model.Property, error) {
	return f.properties, nil
}

func (f *fakePropertyStore) Create(ctx context.Context, p model.Property, images []model.PropertyImage) error {
	f.created = p
	f.createdImages = images
	return nil
}

func (f *fakePropertyStore) FindIDByTitle(ctx context.Context, title string) (string, error) {
	id, ok := f.idsByTitle[title]
	if !ok {
		return "", model.ErrPropertyNotFound
	}
	return id, nil
}

func (f *fakePropertyStore) Update(ctx context.Context, propertyID string, title *string, price *float64, description *string) error {
	f.updatedID = propertyID
	f.updatedTitle = title
	f.updatedPrice = price
	f.updatedDesc = description
	return nil
}

func (f *fakePropertyStore) AddImages(ctx context.Context, images []model.PropertyImage) error {
	f.addedImages = images
	return nil
}

func (f *fakePropertyStore) Details(ctx context.Context, title string) (model.PropertyDetails, error) {
	details, ok := f.details[title]
	if !ok {
		return model.PropertyDetails{}, model.ErrPropertyNotFound
	}
	return details, nil
}

type fakeFAQStore struct {
	created  model.FAQ
	existing map[string]bool
	answered map[string]string
}

func newFakeFAQStore() *fakeFAQStore {
	return &fakeFAQStore{existing: map[string]bool{}, answered: map[string]string{}}
}

func (f *fakeFAQStore) Create(ctx context.Context, faq model.FAQ) error {
	f.created = faq
	f.existing[faq.FAQID] = true
	return nil
}

func (f *fakeFAQStore) Exists(ctx context.Context, faqID string) (bool, error) {
	return f.existing[faqID], nil
}

func (f *fakeFAQStore) SetAnswer(ctx context.Context, faqID string, answer string) error {
	if !f.existing[faqID] {
		return model.ErrFAQNotFound
	}
	f.answered[faqID] = answer
	return nil
}

type fakeContractStore struct {
	contracts []model.Contract
	existing  map[string]bool
}

func newFakeContractStore() *fakeContractStore {
	return &fakeContractStore{existing: map[string]bool{}}
}

func (f *fakeContractStore) ListActive(ctx context.Context) ([]model.Contract, error) {
	return f.contracts, nil
}

func (f *fakeContractStore) Exists(ctx context.Context, contractID string) (bool, error) {
	return f.existing[contractID], nil
}

type fakePaymentStore struct {
	created model.Payment
}

func (f *fakePaymentStore) Create(ctx context.Context, p model.Payment) error {
	f.created = p
	return nil
}
