package domain

type ItemStatus string

const (
	ItemStatusDraft     ItemStatus = "Draft"
	ItemStatusPublished ItemStatus = "Published"
)

type Item struct {
	ID           int32      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	RentalCost   float64    `json:"rentalCost"` // MAD, per booking
	Quantity     int32      `json:"quantity"`   // total units owned, never negative
	CategoryID   int32      `json:"categoryId"`
	SubCategory  string     `json:"subCategory"`
	Size         string     `json:"size"`
	Color        string     `json:"color"`
	Status       ItemStatus `json:"status"`
	PrimaryPhoto string     `json:"primaryPhoto"`
	CreatedOn    string     `json:"created_on"`
	UpdatedOn    string     `json:"updated_on"`
}

type Category struct {
	ID            int32    `json:"id"`
	Name          string   `json:"name"`
	SubCategories []string `json:"subCategories"`
	CreatedOn     string   `json:"created_on"`
	UpdatedOn     string   `json:"updated_on"`
}
