package booking

import (
	"testing"

	"bridal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func reservationFor(id int32, itemIDs []int32, pickup, availability string) domain.Reservation {
	return domain.Reservation{
		ID:               id,
		Type:             domain.ReservationTypeFinal,
		ItemIDs:          itemIDs,
		PickupDate:       pickup,
		AvailabilityDate: availability,
	}
}

func TestFreeQuantity(t *testing.T) {
	dress := domain.Item{ID: 1, Name: "Aurora", Quantity: 2}

	t.Run("No reservations leaves full quantity", func(t *testing.T) {
		free := FreeQuantity(dress, nil, "2024-06-10", "2024-06-20", 0)
		assert.Equal(t, int32(2), free)
	})

	t.Run("Two overlapping reservations exhaust quantity", func(t *testing.T) {
		reservations := []domain.Reservation{
			reservationFor(10, []int32{1}, "2024-06-08", "2024-06-12"),
			reservationFor(11, []int32{1}, "2024-06-18", "2024-06-25"),
		}
		free := FreeQuantity(dress, reservations, "2024-06-10", "2024-06-20", 0)
		assert.Equal(t, int32(0), free)
	})

	t.Run("One overlapping reservation leaves one unit", func(t *testing.T) {
		reservations := []domain.Reservation{
			reservationFor(10, []int32{1}, "2024-06-08", "2024-06-12"),
		}
		free := FreeQuantity(dress, reservations, "2024-06-10", "2024-06-20", 0)
		assert.Equal(t, int32(1), free)
	})

	t.Run("Non-overlapping reservation does not count", func(t *testing.T) {
		reservations := []domain.Reservation{
			reservationFor(10, []int32{1}, "2024-07-01", "2024-07-05"),
		}
		free := FreeQuantity(dress, reservations, "2024-06-10", "2024-06-20", 0)
		assert.Equal(t, int32(2), free)
	})

	t.Run("Reservation for another item does not count", func(t *testing.T) {
		reservations := []domain.Reservation{
			reservationFor(10, []int32{99}, "2024-06-08", "2024-06-12"),
		}
		free := FreeQuantity(dress, reservations, "2024-06-10", "2024-06-20", 0)
		assert.Equal(t, int32(2), free)
	})

	t.Run("Touching boundary counts as overlap", func(t *testing.T) {
		// Existing window starts exactly where the proposed one ends.
		reservations := []domain.Reservation{
			reservationFor(10, []int32{1}, "2024-06-20", "2024-06-25"),
		}
		free := FreeQuantity(dress, reservations, "2024-06-10", "2024-06-20", 0)
		assert.Equal(t, int32(1), free)
	})

	t.Run("Proposed window enclosing the reservation counts", func(t *testing.T) {
		reservations := []domain.Reservation{
			reservationFor(10, []int32{1}, "2024-06-12", "2024-06-14"),
		}
		free := FreeQuantity(dress, reservations, "2024-06-10", "2024-06-20", 0)
		assert.Equal(t, int32(1), free)
	})

	t.Run("Edited reservation is excluded from its own conflicts", func(t *testing.T) {
		reservations := []domain.Reservation{
			reservationFor(10, []int32{1}, "2024-06-08", "2024-06-12"),
		}
		free := FreeQuantity(dress, reservations, "2024-06-10", "2024-06-20", 10)
		assert.Equal(t, int32(2), free)
	})

	t.Run("Invalid window degrades to full quantity", func(t *testing.T) {
		reservations := []domain.Reservation{
			reservationFor(10, []int32{1}, "2024-06-08", "2024-06-12"),
		}
		free := FreeQuantity(dress, reservations, "", "", 0)
		assert.Equal(t, int32(2), free)
	})

	t.Run("Reservation with unparseable dates is skipped", func(t *testing.T) {
		reservations := []domain.Reservation{
			reservationFor(10, []int32{1}, "", ""),
		}
		free := FreeQuantity(dress, reservations, "2024-06-10", "2024-06-20", 0)
		assert.Equal(t, int32(2), free)
	})
}

func TestAvailableItems(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Name: "Aurora", Quantity: 1},
		{ID: 2, Name: "Celeste", Quantity: 2},
		{ID: 3, Name: "Sold out", Quantity: 0},
	}
	reservations := []domain.Reservation{
		reservationFor(10, []int32{1, 2}, "2024-06-08", "2024-06-12"),
	}

	t.Run("Excludes exhausted and zero-quantity items", func(t *testing.T) {
		available := AvailableItems(items, reservations, "2024-06-10", "2024-06-20", 0)
		ids := make([]int32, 0, len(available))
		for _, it := range available {
			ids = append(ids, it.ID)
		}
		// Aurora's single unit is taken, Celeste keeps one of two,
		// the zero-quantity item never appears.
		assert.Equal(t, []int32{2}, ids)
	})

	t.Run("Invalid window returns everything with stock", func(t *testing.T) {
		available := AvailableItems(items, reservations, "", "", 0)
		assert.Len(t, available, 2)
	})
}

func TestFilterItems(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Name: "Aurora Lace", SubCategory: "Mermaid"},
		{ID: 2, Name: "Celeste", SubCategory: "A-Line"},
	}

	t.Run("Empty query matches everything", func(t *testing.T) {
		assert.Len(t, FilterItems(items, ""), 2)
	})

	t.Run("Matches name case-insensitively", func(t *testing.T) {
		matched := FilterItems(items, "aurora")
		assert.Len(t, matched, 1)
		assert.Equal(t, int32(1), matched[0].ID)
	})

	t.Run("Matches sub-category", func(t *testing.T) {
		matched := FilterItems(items, "a-line")
		assert.Len(t, matched, 1)
		assert.Equal(t, int32(2), matched[0].ID)
	})

	t.Run("No match", func(t *testing.T) {
		assert.Empty(t, FilterItems(items, "ballgown"))
	})
}
