package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidItem is returned when an item fails validation.
	ErrInvalidItem = errors.New("invalid inventory item")
	// ErrItemNotFound is returned when no item exists for the identifier.
	ErrItemNotFound = errors.New("inventory item not found")
)

// Item represents a stocked product in the warehouse.
type Item struct {
	// ID is the unique identifier assigned by storage.
	ID int64 `json:"id"`
	// ItemName is the product name.
	ItemName string `json:"itemName"`
	// Quantity is the number of units on hand.
	Quantity int `json:"quantity"`
	// Category groups the item (e.g., Medication, Supplies).
	Category string `json:"category"`
}

// NewItem creates a new Item and validates it.
func NewItem(name string, quantity int, category string) (*Item, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrInvalidItem)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidItem)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidItem)
	}

	return &Item{
		ItemName: name,
		Quantity: quantity,
		Category: category,
	}, nil
}
