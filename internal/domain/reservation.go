package domain

type ReservationType string

const (
	ReservationTypeFinal   ReservationType = "Final"
	ReservationTypeFitting ReservationType = "Fitting"
)

type ReservationStatus string

const (
	ReservationStatusDraft     ReservationStatus = "Draft"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

type Reservation struct {
	ID       int32             `json:"id"`
	ClientID int32             `json:"clientId"`
	Type     ReservationType   `json:"type"`
	Status   ReservationStatus `json:"status"`
	ItemIDs  []int32           `json:"itemIds"`

	// Buffer configuration (day offsets around the wedding date).
	// All zero for Fitting reservations.
	WeddingDate  string `json:"weddingDate"` // yyyy-mm-dd
	BufferBefore int    `json:"bufferBefore"`
	BufferAfter  int    `json:"bufferAfter"`
	Availability int    `json:"availability"`

	// Derived dates for Final reservations. The availability date bounds
	// the stock-exclusion window, not the return date.
	PickupDate       string `json:"pickupDate"`
	ReturnDate       string `json:"returnDate"`
	AvailabilityDate string `json:"availabilityDate"`

	// Time-of-day fields are kept as independent HH:MM strings and only
	// combined with the dates at submission time.
	PickupTime       string `json:"pickupTime"`
	ReturnTime       string `json:"returnTime"`
	AvailabilityTime string `json:"availabilityTime"`

	// Fitting-type reservations carry a single user-entered date instead.
	FittingDate string `json:"fittingDate"`
	FittingTime string `json:"fittingTime"`

	// Financial inputs.
	AdditionalCost            float64  `json:"additionalCost"`
	TravelCost                float64  `json:"travelCost"`
	Discount                  float64  `json:"discount"`
	SecurityDepositPercentage float64  `json:"securityDepositPercentage"`
	AdvancePercentage         float64  `json:"advancePercentage"`
	SecurityDepositAmount     *float64 `json:"securityDepositAmount,omitempty"`
	AdvanceAmount             *float64 `json:"advanceAmount,omitempty"`

	// Financial snapshot, recomputed on every create/update.
	ItemsTotal      float64 `json:"itemsTotal"`
	Subtotal        float64 `json:"subtotal"`
	SecurityDeposit float64 `json:"securityDeposit"`
	Advance         float64 `json:"advance"`
	Total           float64 `json:"total"`

	Notes     string `json:"notes"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
