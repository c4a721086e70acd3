package model

import "time"

type FAQ struct {
	FAQID      string    `json:"faqId"`
	TenantID   string    `json:"tenantId"`
	PropertyID string    `json:"propertyId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer,omitempty"`
	DateAsked  time.Time `json:"dateAsked"`
}

// Contract rows are listed joined with the property they belong to.
type Contract struct {
	ContractFile string    `json:"contractFile"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Title        string    `json:"title"`
}

type Payment struct {
	PaymentID     string    `json:"paymentId"`
	ContractID    string    `json:"contractId"`
	PaymentMethod string    `json:"paymentMethod"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
}
