package cache

import (
	"context"
	"sync"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"
)

// Snapshot is the in-memory entity cache behind the availability and
// quote paths: one keyed copy of every catalog entity, loaded at
// startup and mutated only after a repository write succeeded. Reads
// return copied slices, so callers can treat them as immutable
// snapshots safe to recompute against at any frequency.
type Snapshot struct {
	mu           sync.RWMutex
	items        map[int32]domain.Item
	reservations map[int32]domain.Reservation
	customers    map[int32]domain.Customer
	payments     map[int32]domain.Payment
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		items:        make(map[int32]domain.Item),
		reservations: make(map[int32]domain.Reservation),
		customers:    make(map[int32]domain.Customer),
		payments:     make(map[int32]domain.Payment),
	}
}

// Load replaces the cache contents with the current database state.
func (s *Snapshot) Load(ctx context.Context, store repository.Store) error {
	items, err := store.ListAllItems(ctx)
	if err != nil {
		return err
	}
	reservations, err := store.ListAllReservations(ctx)
	if err != nil {
		return err
	}
	customers, err := store.ListAllCustomers(ctx)
	if err != nil {
		return err
	}
	payments, err := store.ListAllPayments(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int32]domain.Item, len(items))
	for _, it := range items {
		s.items[it.ID] = it
	}
	s.reservations = make(map[int32]domain.Reservation, len(reservations))
	for _, r := range reservations {
		s.reservations[r.ID] = r
	}
	s.customers = make(map[int32]domain.Customer, len(customers))
	for _, c := range customers {
		s.customers[c.ID] = c
	}
	s.payments = make(map[int32]domain.Payment, len(payments))
	for _, p := range payments {
		s.payments[p.ID] = p
	}
	return nil
}

func (s *Snapshot) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	return out
}

func (s *Snapshot) Reservations() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, r)
	}
	return out
}

func (s *Snapshot) Customers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	return out
}

// PaymentsForReservation returns the payments attached to one
// reservation, for status derivation.
func (s *Snapshot) PaymentsForReservation(reservationID int32) []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Payment
	for _, p := range s.payments {
		if p.ReservationID == reservationID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Snapshot) UpsertItem(it domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[it.ID] = it
}

func (s *Snapshot) RemoveItem(id int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

func (s *Snapshot) UpsertReservation(r domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID] = r
}

func (s *Snapshot) RemoveReservation(id int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reservations, id)
}

func (s *Snapshot) UpsertCustomer(c domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

func (s *Snapshot) RemoveCustomer(id int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.customers, id)
}

func (s *Snapshot) UpsertPayment(p domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.ID] = p
}

func (s *Snapshot) RemovePayment(id int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.payments, id)
}
