package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meditrack/internal/core/cache"
	"meditrack/internal/core/logger"
	"meditrack/internal/features/tracking/domain"
	"meditrack/internal/features/tracking/ports"

	"go.uber.org/zap"
)

const trackingCachePrefix = "tracking:view:"

// TrackingService answers tracking queries and applies status transitions.
// Resolved views are kept in the cache for a short TTL; the history is
// append-only, so a cached view can only ever be stale by one transition,
// and appends invalidate it.
type TrackingService struct {
	repo     ports.ShipmentRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewTrackingService creates a new TrackingService. A nil cache disables
// view caching.
func NewTrackingService(repo ports.ShipmentRepository, c cache.Cache, cacheTTL time.Duration) *TrackingService {
	return &TrackingService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// Resolve returns the tracking view for an order.
func (s *TrackingService) Resolve(ctx context.Context, orderID string) (*domain.TrackingView, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order ID is required", domain.ErrInvalidArgument)
	}

	if view := s.cachedView(ctx, orderID); view != nil {
		return view, nil
	}

	shipment, err := s.repo.GetShipment(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shipment %s: %w", orderID, err)
	}
	if shipment == nil {
		return nil, domain.ErrOrderNotFound
	}

	events, err := s.repo.ListEvents(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracking history for %s: %w", orderID, err)
	}

	view, err := domain.Resolve(shipment, events)
	if err != nil {
		return nil, err
	}

	s.storeView(ctx, orderID, view)

	return view, nil
}

// AppendEvent validates and applies a status transition for an order,
// returning the recorded event.
func (s *TrackingService) AppendEvent(ctx context.Context, orderID string, next domain.TrackingEvent) (*domain.TrackingEvent, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order ID is required", domain.ErrInvalidArgument)
	}
	if next.Location == "" {
		return nil, fmt.Errorf("%w: event location is required", domain.ErrInvalidArgument)
	}

	shipment, err := s.repo.GetShipment(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shipment %s: %w", orderID, err)
	}
	if shipment == nil {
		return nil, domain.ErrOrderNotFound
	}

	events, err := s.repo.ListEvents(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracking history for %s: %w", orderID, err)
	}

	event, applied, err := domain.AppendEvent(shipment, events, next)
	if err != nil {
		return nil, err
	}
	if !applied {
		return &event, nil
	}

	if err := s.repo.AppendEvent(ctx, orderID, event, shipment.CurrentStatus); err != nil {
		return nil, fmt.Errorf("failed to record transition for %s: %w", orderID, err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, trackingCachePrefix+orderID); err != nil {
			logger.Get().Warn("Failed to invalidate tracking cache",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
	}

	return &event, nil
}

// cachedView returns the cached view for an order, or nil on any miss or
// cache failure. Cache problems never fail a lookup.
func (s *TrackingService) cachedView(ctx context.Context, orderID string) *domain.TrackingView {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, trackingCachePrefix+orderID)
	if err != nil || data == nil {
		return nil
	}

	var view domain.TrackingView
	if err := json.Unmarshal(data, &view); err != nil {
		logger.Get().Warn("Discarding corrupt tracking cache entry",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return nil
	}
	return &view
}

func (s *TrackingService) storeView(ctx context.Context, orderID string, view *domain.TrackingView) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, trackingCachePrefix+orderID, data, s.cacheTTL); err != nil {
		logger.Get().Warn("Failed to cache tracking view",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}
}
