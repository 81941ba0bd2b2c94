package models

import "encoding/json"

// Order statuses.
const (
	OrderStatusPaid = "paid"
)

// Order is the immutable record archived at settlement.
type Order struct {
	Reference   string          `json:"reference"`
	Items       []CartItem      `json:"items"`
	Total       float64         `json:"total"`
	Status      string          `json:"status"`
	Date        string          `json:"date"`
	Transaction json.RawMessage `json:"transaction"`
}

// CheckoutState is a step of the checkout flow.
type CheckoutState string

const (
	CheckoutIdle            CheckoutState = "idle"
	CheckoutAwaitingEmail   CheckoutState = "awaiting_email"
	CheckoutAwaitingPayment CheckoutState = "awaiting_payment"
	CheckoutSettled         CheckoutState = "settled"
)

// CheckoutSession is the persisted checkout progress of one session.
// Items and Total are the cart as it was priced for the payment widget;
// the settled order is built from them.
type CheckoutSession struct {
	State     CheckoutState   `json:"state"`
	Email     string          `json:"email,omitempty"`
	Reference string          `json:"reference,omitempty"`
	Payment   *PaymentRequest `json:"payment,omitempty"`
	Items     []CartItem      `json:"items,omitempty"`
	Total     float64         `json:"total,omitempty"`
}

// PaymentCartLine is one entry of the cart summary sent to the widget.
type PaymentCartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// PaymentCustomField mirrors the widget's metadata.custom_fields entries.
type PaymentCustomField struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

// PaymentMetadata carries the cart summary.
type PaymentMetadata struct {
	CustomFields []PaymentCustomField `json:"custom_fields"`
}

// PaymentRequest is everything the embedded payment widget is set up with.
type PaymentRequest struct {
	Key       string          `json:"key"`
	Email     string          `json:"email"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Reference string          `json:"ref"`
	Metadata  PaymentMetadata `json:"metadata"`
}

// CheckoutEmailRequest is the email step of checkout.
type CheckoutEmailRequest struct {
	Email string `json:"email"`
}

// PaymentCallbackRequest is the widget's success callback.
type PaymentCallbackRequest struct {
	Reference string          `json:"reference" binding:"required"`
	Response  json.RawMessage `json:"response"`
}

// CheckoutResponse reports the flow's state after a transition.
type CheckoutResponse struct {
	State   CheckoutState   `json:"state"`
	Email   string          `json:"email,omitempty"`
	Payment *PaymentRequest `json:"payment,omitempty"`
	Order   *Order          `json:"order,omitempty"`
}
