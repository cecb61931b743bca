package booking

import (
	"time"

	"bridal-backend/internal/domain"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd string into a time.Time. The second
// return value is false for empty or unparseable input; callers are
// expected to degrade gracefully rather than fail (forms submit empty
// dates before a wedding date is chosen).
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a time.Time back to yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Window holds the derived dates for a Final reservation. The
// availability date, not the return date, closes the stock-exclusion
// period.
type Window struct {
	PickupDate       string `json:"pickupDate"`
	ReturnDate       string `json:"returnDate"`
	AvailabilityDate string `json:"availabilityDate"`
}

// DeriveWindow computes the pickup/return/availability dates for a Final
// reservation from the wedding date and its buffer offsets:
//
//	pickup       = wedding − bufferBefore days
//	return       = wedding + bufferAfter days
//	availability = wedding + bufferAfter + availability days
//
// Negative offsets shift the dates the other way; no validation rejects
// them. Returns a zero Window and false when the wedding date cannot be
// parsed.
func DeriveWindow(weddingDate string, bufferBefore, bufferAfter, availability int) (Window, bool) {
	wd, ok := ParseDate(weddingDate)
	if !ok {
		return Window{}, false
	}
	return Window{
		PickupDate:       FormatDate(wd.AddDate(0, 0, -bufferBefore)),
		ReturnDate:       FormatDate(wd.AddDate(0, 0, bufferAfter)),
		AvailabilityDate: FormatDate(wd.AddDate(0, 0, availability+bufferAfter)),
	}, true
}

// NormalizeBuffers forces all buffer offsets to zero for Fitting
// reservations, which have no buffer concept. Final reservations keep
// their offsets untouched.
func NormalizeBuffers(typ domain.ReservationType, bufferBefore, bufferAfter, availability int) (int, int, int) {
	if typ == domain.ReservationTypeFitting {
		return 0, 0, 0
	}
	return bufferBefore, bufferAfter, availability
}

// CombineDateTime joins a yyyy-mm-dd date with an HH:MM clock by plain
// concatenation, the way the submission payload expects it. Either part
// may be empty.
func CombineDateTime(date, clock string) string {
	if date == "" {
		return ""
	}
	if clock == "" {
		clock = "00:00"
	}
	return date + "T" + clock
}
