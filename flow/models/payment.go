package models

// PaymentRequest is a logical order-creation request as accepted from API
// callers. Fields are passed through to the gateway as-is; absent fields are
// never transmitted.
type PaymentRequest struct {
	CommerceOrder   string `json:"commerceOrder"`
	Subject         string `json:"subject"`
	Currency        string `json:"currency"`
	Amount          int64  `json:"amount"`
	Email           string `json:"email"`
	URLConfirmation string `json:"urlConfirmation"`
	URLReturn       string `json:"urlReturn"`
	Optional        string `json:"optional,omitempty"`
	Timeout         *int   `json:"timeout,omitempty"`
	MerchantID      string `json:"merchantId,omitempty"`
	PaymentCurrency string `json:"paymentCurrency,omitempty"`
}

// CreateOrderResult is returned after a successful order creation.
// PaymentLink is the gateway's payment page URL with the order token appended.
type CreateOrderResult struct {
	PaymentLink string `json:"paymentLink"`
	FlowOrder   int64  `json:"flowOrder"`
}

// PaymentStatus is the gateway's view of an order. The relay treats it as
// pass-through data; no field is interpreted beyond display.
type PaymentStatus struct {
	FlowOrder     int64  `json:"flowOrder"`
	CommerceOrder string `json:"commerceOrder"`
	RequestDate   string `json:"requestDate"`
	Status        int    `json:"status"`
	Subject       string `json:"subject"`
	Currency      string `json:"currency"`
	Amount        string `json:"amount"`
	Payer         string `json:"payer"`
}
