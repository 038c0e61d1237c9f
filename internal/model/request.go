package model

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// OrderRequest is the checkout payload shared between the storefront
// client and the API. Validation happens at the edge (the HTTP handler)
// before the checkout service sees the request; the service itself
// persists whatever it is given.
type OrderRequest struct {
	Product  ProductSelection `json:"product"`
	Customer CustomerDetails  `json:"customer"`
	Payment  PaymentDetails   `json:"payment"`
	Total    float64          `json:"total"`
}

// ProductSelection is the configured product being purchased. Price and
// total are supplied by the caller and trusted as-is.
type ProductSelection struct {
	ProductID string            `json:"productId"`
	Name      string            `json:"name"`
	Price     float64           `json:"price"`
	Variants  map[string]string `json:"variants"`
	Quantity  int               `json:"quantity"`
}

// CustomerDetails holds contact and shipping fields.
type CustomerDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// PaymentDetails holds the raw card fields submitted at checkout.
type PaymentDetails struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// FieldErrors maps a payload field to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return strings.Join(parts, "; ")
}

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^\d{10}$`)
	zipRe      = regexp.MustCompile(`^\d{5}$`)
	cardRe     = regexp.MustCompile(`^\d{16}$`)
	expiryRe   = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe      = regexp.MustCompile(`^\d{3}$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// Validate applies the storefront's format rules and returns a
// field-level error map, or nil when the payload is well formed.
func (r *OrderRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(r.Customer.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if !emailRe.MatchString(r.Customer.Email) {
		errs["email"] = "Invalid email format"
	}
	if !phoneRe.MatchString(nonDigitRe.ReplaceAllString(r.Customer.Phone, "")) {
		errs["phone"] = "Phone must be 10 digits"
	}
	if strings.TrimSpace(r.Customer.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(r.Customer.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(r.Customer.State) == "" {
		errs["state"] = "State is required"
	}
	if !zipRe.MatchString(r.Customer.ZipCode) {
		errs["zipCode"] = "Zip code must be 5 digits"
	}

	if !cardRe.MatchString(strings.ReplaceAll(r.Payment.CardNumber, " ", "")) {
		errs["cardNumber"] = "Card number must be 16 digits"
	}
	if !expiryRe.MatchString(r.Payment.ExpiryDate) {
		errs["expiryDate"] = "Format must be MM/YY"
	} else if expired(r.Payment.ExpiryDate, time.Now()) {
		errs["expiryDate"] = "Card has expired"
	}
	if !cvvRe.MatchString(r.Payment.CVV) {
		errs["cvv"] = "CVV must be 3 digits"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// expired reports whether an MM/YY expiry is in the past. The expiry
// resolves to the first instant of its month, so a card expiring in the
// current month is already considered expired.
func expired(expiry string, now time.Time) bool {
	parts := strings.SplitN(expiry, "/", 2)
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])
	end := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return end.Before(now)
}

// Snapshot freezes the request's product selection into the embedded
// form stored on an order.
func (p ProductSelection) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		Variants:  p.Variants,
		Quantity:  p.Quantity,
	}
}

// Snapshot freezes the request's customer fields into the embedded form
// stored on an order.
func (c CustomerDetails) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		City:     c.City,
		State:    c.State,
		ZipCode:  c.ZipCode,
	}
}
