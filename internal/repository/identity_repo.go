package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ares-Judda/Wang-Api/internal/model"
)

// uniqueViolation is the Postgres error code raised when an INSERT loses the
// check-then-insert race on accounts.email or users.username.
const uniqueViolation = "23505"

type IdentityRepository struct {
	pool *pgxpool.Pool
}

func NewIdentityRepository(pool *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{pool: pool}
}

func (r *IdentityRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

func (r *IdentityRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		strings.TrimSpace(username)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}

// FindActiveAccountByEmail returns the account only when it is active;
// deactivated accounts are indistinguishable from absent ones.
func (r *IdentityRepository) FindActiveAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT account_id, email, password_hash, role, is_active, created_at
		 FROM accounts WHERE email = $1 AND is_active = TRUE`, email).
		Scan(&a.AccountID, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive, &a.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find active account by email: %w", err)
	}
	return a, nil
}

// CreateIdentity inserts the account row and its profile row inside one
// transaction; either both commit or neither does. A unique-constraint loss
// surfaces as model.ErrDuplicateKey.
func (r *IdentityRepository) CreateIdentity(ctx context.Context, account model.Account, profile model.Profile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin registration tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := createAccount(ctx, tx, account); err != nil {
		return err
	}

	if err := createProfile(ctx, tx, profile); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit registration tx: %w", err)
	}
	return nil
}

func createAccount(ctx context.Context, tx pgx.Tx, a model.Account) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO accounts (account_id, email, password_hash, role, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.AccountID, a.Email, a.PasswordHash, a.Role, a.IsActive, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create account: %w", model.ErrDuplicateKey)
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func createProfile(ctx context.Context, tx pgx.Tx, p model.Profile) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO users (user_id, account_id, username, full_name, phone, address, profile_image_url)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))`,
		p.UserID, p.AccountID, p.Username, p.FullName, p.Phone, p.Address, p.ProfileImageURL)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create profile: %w", model.ErrDuplicateKey)
		}
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *IdentityRepository) FindAccountByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT account_id, email, password_hash, role, is_active, created_at
		 FROM accounts WHERE email = $1`, email).
		Scan(&a.AccountID, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive, &a.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find account by email: %w", err)
	}
	return a, nil
}

func (r *IdentityRepository) UpdatePassword(ctx context.Context, accountID string, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET password_hash = $2 WHERE account_id = $1`,
		accountID, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}

func (r *IdentityRepository) FindProfileByAccount(ctx context.Context, accountID string) (model.Profile, error) {
	var p model.Profile
	var phone, address, imageURL *string
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, account_id, username, full_name, phone, address, profile_image_url
		 FROM users WHERE account_id = $1`, accountID).
		Scan(&p.UserID, &p.AccountID, &p.Username, &p.FullName, &phone, &address, &imageURL)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Profile{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("find profile by account: %w", err)
	}

	p.Phone = deref(phone)
	p.Address = deref(address)
	p.ProfileImageURL = deref(imageURL)
	return p, nil
}

func (r *IdentityRepository) ListUsers(ctx context.Context) ([]model.UserListing, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.user_id, a.email, u.username, u.full_name, a.role, u.profile_image_url
		 FROM users u
		 JOIN accounts a ON a.account_id = u.account_id
		 WHERE a.is_active = TRUE
		 ORDER BY u.username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.UserListing, 0)
	for rows.Next() {
		var u model.UserListing
		var imageURL *string
		if err := rows.Scan(&u.UserID, &u.Email, &u.Username, &u.FullName, &u.Role, &imageURL); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.ProfileImageURL = deref(imageURL)
		users = append(users, u)
	}
	return users, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
