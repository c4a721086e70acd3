package model

import "time"

// Account is the login identity. PasswordHash holds the bcrypt hash, never
// the plaintext. Only active accounts may authenticate.
type Account struct {
	AccountID    string    `json:"accountId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is the human-facing record attached to exactly one Account.
// Username is the uniqueness key checked at registration; FullName is
// display-only.
type Profile struct {
	UserID          string `json:"userId"`
	AccountID       string `json:"accountId"`
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// AuthClaims is the signed token payload: {id, role}.
type AuthClaims struct {
	AccountID string `json:"id"`
	Role      string `json:"role"`
}

// TokenPair is transient; neither token is persisted server-side.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserListing is the public projection returned by the user listing.
type UserListing struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	Role            string `json:"role"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}
