package service

import (
	"context"
	"errors"
	"fmt"

	"meditrack/internal/features/inventory/domain"
	"meditrack/internal/features/inventory/ports"
)

// InventoryService handles the business logic for warehouse stock.
type InventoryService struct {
	repo ports.ItemRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo ports.ItemRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// List retrieves items, optionally filtered by a search term.
func (s *InventoryService) List(ctx context.Context, search string) ([]domain.Item, error) {
	items, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// Add validates and stores a new item, returning it with its assigned ID.
func (s *InventoryService) Add(ctx context.Context, name string, quantity int, category string) (*domain.Item, error) {
	item, err := domain.NewItem(name, quantity, category)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to add inventory item: %w", err)
	}
	return created, nil
}

// Update validates and rewrites an existing item.
func (s *InventoryService) Update(ctx context.Context, id int64, name string, quantity int, category string) (*domain.Item, error) {
	item, err := domain.NewItem(name, quantity, category)
	if err != nil {
		return nil, err
	}
	item.ID = id

	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update inventory item %d: %w", id, err)
	}
	return item, nil
}

// Remove deletes an item.
func (s *InventoryService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete inventory item %d: %w", id, err)
	}
	return nil
}
