package model

// ErrorResponse wraps every failure body: {"error": {"code", "message"}}.
type ErrorResponse struct {
	Error *APIErrorBody `json:"error"`
}

type APIErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the original API's success shape for create endpoints.
type MessageResponse struct {
	Message    string `json:"message"`
	PropertyID string `json:"propertyId,omitempty"`
	FAQID      string `json:"faqId,omitempty"`
	PaymentID  string `json:"paymentId,omitempty"`
	AccountID  string `json:"accountId,omitempty"`
}
