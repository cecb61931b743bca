package service

import (
	"context"

	"bridal-backend/internal/booking"
	"bridal-backend/internal/cache"
	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"
)

type itemService struct {
	itemRepo repository.ItemRepository
	snapshot *cache.Snapshot
}

func NewItemService(itemRepo repository.ItemRepository, snapshot *cache.Snapshot) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		snapshot: snapshot,
	}
}

func (s *itemService) CreateItem(ctx context.Context, item *domain.Item) error {
	if item.Status == "" {
		item.Status = domain.ItemStatusDraft
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return err
	}
	s.snapshot.UpsertItem(*item)
	return nil
}

func (s *itemService) GetItem(ctx context.Context, id int32) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *itemService) UpdateItem(ctx context.Context, item *domain.Item) error {
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return err
	}
	s.snapshot.UpsertItem(*item)
	return nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int32) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.snapshot.RemoveItem(id)
	return nil
}

func (s *itemService) ListItems(ctx context.Context, query string, page, pageSize int32) ([]domain.Item, int32, error) {
	return s.itemRepo.List(ctx, query, page, pageSize)
}

func (s *itemService) AvailableItems(ctx context.Context, weddingDate string, bufferBefore, bufferAfter, availability int, query string, excludeReservationID int32) ([]domain.Item, error) {
	items := publishedItems(s.snapshot.Items())
	reservations := s.snapshot.Reservations()

	window, ok := booking.DeriveWindow(weddingDate, bufferBefore, bufferAfter, availability)
	if !ok {
		// No usable window yet, the whole published catalog qualifies.
		return booking.FilterItems(items, query), nil
	}

	available := booking.AvailableItems(items, reservations, window.PickupDate, window.AvailabilityDate, excludeReservationID)
	return booking.FilterItems(available, query), nil
}

func publishedItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.Status == domain.ItemStatusPublished {
			out = append(out, it)
		}
	}
	return out
}
