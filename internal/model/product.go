package model

import "time"

// VariantGroup is a named axis of product configuration, e.g. "Size",
// with its selectable options in catalogue order.
type VariantGroup struct {
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// Product represents a shoe in the catalogue.
type Product struct {
	ID          string         `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description string         `json:"description" db:"description"`
	Price       float64        `json:"price" db:"price"`
	Image       string         `json:"image" db:"image"`
	Variants    []VariantGroup `json:"variants" db:"variants"`
	Inventory   int            `json:"inventory" db:"inventory"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}
