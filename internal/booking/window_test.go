package booking

import (
	"testing"

	"bridal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		d, ok := ParseDate("2024-06-15")
		assert.True(t, ok)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, 6, int(d.Month()))
		assert.Equal(t, 15, d.Day())
	})

	t.Run("Empty string", func(t *testing.T) {
		_, ok := ParseDate("")
		assert.False(t, ok)
	})

	t.Run("Unparseable", func(t *testing.T) {
		_, ok := ParseDate("06/15/2024")
		assert.False(t, ok)
	})
}

func TestDeriveWindow(t *testing.T) {
	t.Run("Basic derivation", func(t *testing.T) {
		w, ok := DeriveWindow("2024-06-15", 5, 3, 2)
		assert.True(t, ok)
		assert.Equal(t, "2024-06-10", w.PickupDate)
		assert.Equal(t, "2024-06-18", w.ReturnDate)
		assert.Equal(t, "2024-06-20", w.AvailabilityDate)
	})

	t.Run("Zero offsets collapse onto the wedding date", func(t *testing.T) {
		w, ok := DeriveWindow("2024-06-15", 0, 0, 0)
		assert.True(t, ok)
		assert.Equal(t, "2024-06-15", w.PickupDate)
		assert.Equal(t, "2024-06-15", w.ReturnDate)
		assert.Equal(t, "2024-06-15", w.AvailabilityDate)
	})

	t.Run("Crosses month boundary", func(t *testing.T) {
		w, ok := DeriveWindow("2024-03-01", 3, 2, 5)
		assert.True(t, ok)
		assert.Equal(t, "2024-02-27", w.PickupDate) // leap year
		assert.Equal(t, "2024-03-03", w.ReturnDate)
		assert.Equal(t, "2024-03-08", w.AvailabilityDate)
	})

	t.Run("Negative buffers shift backward, accepted arithmetically", func(t *testing.T) {
		w, ok := DeriveWindow("2024-06-15", -2, -1, 0)
		assert.True(t, ok)
		assert.Equal(t, "2024-06-17", w.PickupDate)
		assert.Equal(t, "2024-06-14", w.ReturnDate)
		assert.Equal(t, "2024-06-14", w.AvailabilityDate)
	})

	t.Run("Invalid wedding date degrades to zero window", func(t *testing.T) {
		w, ok := DeriveWindow("", 5, 3, 2)
		assert.False(t, ok)
		assert.Equal(t, Window{}, w)
	})
}

func TestNormalizeBuffers(t *testing.T) {
	t.Run("Fitting forces all offsets to zero", func(t *testing.T) {
		before, after, avail := NormalizeBuffers(domain.ReservationTypeFitting, 5, 3, 2)
		assert.Equal(t, 0, before)
		assert.Equal(t, 0, after)
		assert.Equal(t, 0, avail)
	})

	t.Run("Final keeps offsets", func(t *testing.T) {
		before, after, avail := NormalizeBuffers(domain.ReservationTypeFinal, 5, 3, 2)
		assert.Equal(t, 5, before)
		assert.Equal(t, 3, after)
		assert.Equal(t, 2, avail)
	})
}

func TestCombineDateTime(t *testing.T) {
	t.Run("Date plus clock", func(t *testing.T) {
		assert.Equal(t, "2024-06-10T14:30", CombineDateTime("2024-06-10", "14:30"))
	})

	t.Run("Missing clock defaults to midnight", func(t *testing.T) {
		assert.Equal(t, "2024-06-10T00:00", CombineDateTime("2024-06-10", ""))
	})

	t.Run("Missing date yields empty", func(t *testing.T) {
		assert.Equal(t, "", CombineDateTime("", "14:30"))
	})
}
