package adapters

import (
	"context"
	"database/sql"
	"fmt"

	"meditrack/internal/features/inventory/domain"
)

// SQLiteItemRepository implements ports.ItemRepository over the console database.
type SQLiteItemRepository struct {
	db *sql.DB
}

// NewSQLiteItemRepository creates a new SQLiteItemRepository.
func NewSQLiteItemRepository(db *sql.DB) *SQLiteItemRepository {
	return &SQLiteItemRepository{db: db}
}

// List retrieves items, optionally filtered by name or category substring.
func (r *SQLiteItemRepository) List(ctx context.Context, search string) ([]domain.Item, error) {
	query := `SELECT id, item_name, quantity, category FROM inventory ORDER BY item_name`
	args := []any{}

	if search != "" {
		query = `SELECT id, item_name, quantity, category FROM inventory
			 WHERE item_name LIKE ? COLLATE NOCASE OR category LIKE ? COLLATE NOCASE
			 ORDER BY item_name`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Quantity, &item.Category); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	return items, nil
}

// Create inserts a new item and returns it with its assigned ID.
func (r *SQLiteItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO inventory (item_name, quantity, category) VALUES (?, ?, ?)`,
		item.ItemName, item.Quantity, item.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to insert inventory item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted item ID: %w", err)
	}

	created := *item
	created.ID = id
	return &created, nil
}

// Update rewrites an existing item's fields.
func (r *SQLiteItemRepository) Update(ctx context.Context, item *domain.Item) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE inventory SET item_name = ?, quantity = ?, category = ? WHERE id = ?`,
		item.ItemName, item.Quantity, item.Category, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update inventory item %d: %w", item.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check inventory update: %w", err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete removes an item.
func (r *SQLiteItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check inventory delete: %w", err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
