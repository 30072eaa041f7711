package entities

import "errors"

// SizeVariant is a product size with its own price and stock count.
// Stock is tracked per (productId, size) pair.
type SizeVariant struct {
	Size  string
	Price float64
	Stock int
}

type Product struct {
	ProductID   string
	Name        string
	Category    string
	Description string
	Image       string
	Sizes       []SizeVariant
}

var ErrProductSizeNotFound = errors.New("product size not found")
