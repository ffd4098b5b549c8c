package ports

import (
	"context"

	"meditrack/internal/features/inventory/domain"
)

// ItemRepository defines the secondary port for inventory storage.
type ItemRepository interface {
	// List retrieves items, optionally filtered by a case-insensitive
	// substring match on name or category.
	List(ctx context.Context, search string) ([]domain.Item, error)

	// Create inserts a new item and returns it with its assigned ID.
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)

	// Update rewrites an existing item's fields. Returns
	// domain.ErrItemNotFound if no such item exists.
	Update(ctx context.Context, item *domain.Item) error

	// Delete removes an item. Returns domain.ErrItemNotFound if no such
	// item exists.
	Delete(ctx context.Context, id int64) error
}
