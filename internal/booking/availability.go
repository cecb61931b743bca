package booking

import (
	"strings"
	"time"

	"bridal-backend/internal/domain"
)

// FreeQuantity returns how many units of an item remain free for the
// proposed [start, end] window: the item's owned quantity minus the
// number of existing reservations that include the item and whose own
// [pickupDate, availabilityDate] window overlaps the proposed one.
//
// excludeID drops the reservation currently being edited so it does not
// count against itself; pass 0 when creating.
//
// When the proposed window is invalid (empty or unparseable dates) no
// reservation conflicts and the full owned quantity is free.
func FreeQuantity(item domain.Item, reservations []domain.Reservation, start, end string, excludeID int32) int32 {
	ws, okStart := ParseDate(start)
	we, okEnd := ParseDate(end)
	if !okStart || !okEnd {
		return item.Quantity
	}

	var conflicts int32
	for _, res := range reservations {
		if excludeID != 0 && res.ID == excludeID {
			continue
		}
		if !reservationHasItem(res, item.ID) {
			continue
		}
		rs, okRS := ParseDate(res.PickupDate)
		re, okRE := ParseDate(res.AvailabilityDate)
		if !okRS || !okRE {
			continue
		}
		if overlaps(ws, we, rs, re) {
			conflicts++
		}
	}
	return item.Quantity - conflicts
}

// AvailableItems filters the catalog down to items with free stock for
// the proposed window. Ordering of the input is preserved.
func AvailableItems(items []domain.Item, reservations []domain.Reservation, start, end string, excludeID int32) []domain.Item {
	available := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if FreeQuantity(item, reservations, start, end, excludeID) > 0 {
			available = append(available, item)
		}
	}
	return available
}

// FilterItems applies a case-insensitive text search on name and
// sub-category. It is an orthogonal step applied after availability
// filtering; an empty query matches everything.
func FilterItems(items []domain.Item, query string) []domain.Item {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	matched := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.SubCategory), q) {
			matched = append(matched, item)
		}
	}
	return matched
}

// overlaps reports whether [aStart, aEnd] and [bStart, bEnd] intersect,
// boundaries inclusive: windows that merely touch at a single day still
// conflict.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

func reservationHasItem(res domain.Reservation, itemID int32) bool {
	for _, id := range res.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}
