// Package payment implements the storefront's mock payment gateway.
package payment

import "shoestore/internal/model"

// Evaluate classifies a card number by its first character only:
// 1 approves, 2 declines, 3 simulates a gateway error. Every other
// leading character, including an empty card number, approves. The
// permissive default is intentional and relied upon by the checkout
// flow.
func Evaluate(cardNumber string) model.PaymentStatus {
	if cardNumber == "" {
		return model.PaymentApproved
	}
	switch cardNumber[0] {
	case '1':
		return model.PaymentApproved
	case '2':
		return model.PaymentDeclined
	case '3':
		return model.PaymentError
	default:
		return model.PaymentApproved
	}
}
