package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the outcome of the mock payment evaluation. It is a
// closed set: approved, declined or error.
type PaymentStatus string

const (
	PaymentApproved PaymentStatus = "approved"
	PaymentDeclined PaymentStatus = "declined"
	PaymentError    PaymentStatus = "error"
)

// IsValid reports whether s is one of the three known payment outcomes.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentApproved, PaymentDeclined, PaymentError:
		return true
	}
	return false
}

// ProductSnapshot is the product selection frozen onto an order at
// creation time.
type ProductSnapshot struct {
	ProductID string            `json:"productId"`
	Name      string            `json:"name"`
	Price     float64           `json:"price"`
	Variants  map[string]string `json:"variants"`
	Quantity  int               `json:"quantity"`
}

// CustomerSnapshot is the customer contact and shipping information
// frozen onto an order at creation time.
type CustomerSnapshot struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// PaymentRecord holds the raw payment fields submitted at checkout plus
// the status assigned by the evaluator. Status is set exactly once and
// never changes afterwards.
type PaymentRecord struct {
	CardNumber string        `json:"cardNumber"`
	ExpiryDate string        `json:"expiryDate"`
	CVV        string        `json:"cvv"`
	Status     PaymentStatus `json:"status"`
}

// Order represents a persisted customer order. OrderNumber is the
// business identifier; ID is internal to the store.
type Order struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	OrderNumber string           `json:"orderNumber" db:"order_number"`
	Product     ProductSnapshot  `json:"product" db:"product"`
	Customer    CustomerSnapshot `json:"customer" db:"customer"`
	Payment     PaymentRecord    `json:"payment" db:"payment"`
	Total       float64          `json:"total" db:"total"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
}
