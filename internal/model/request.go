package model

// RegisterRequest arrives as a multipart form (the optional profile image
// travels in the "imagen" part); fields mirror the form keys.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Username string `json:"userName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	// Set by the handler after the upload store saved the image, never
	// by the client directly.
	ProfileImageURL string `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type CreatePropertyRequest struct {
	Title       string  `json:"title"`
	CategoryID  int     `json:"categoryId"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	OwnerID     string  `json:"ownerId"`

	ImageURLs []string `json:"-"`
}

// UpdatePropertyRequest is a partial update addressed by the property's
// current title. Nil pointer means "leave unchanged".
type UpdatePropertyRequest struct {
	CurrentTitle string   `json:"currentTitle"`
	Title        *string  `json:"title"`
	Price        *float64 `json:"price"`
	Description  *string  `json:"description"`

	ImageURLs []string `json:"-"`
}

type CreateFAQRequest struct {
	TenantID   string `json:"tenantId"`
	PropertyID string `json:"propertyId"`
	Question   string `json:"question"`
}

type AnswerFAQRequest struct {
	FAQID  string `json:"faqId"`
	Answer string `json:"answer"`
}

type CreatePaymentRequest struct {
	ContractID    string  `json:"contractId"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
}
