package domain

type Customer struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IDNumber     string `json:"idNumber"`
	WeddingDate  string `json:"weddingDate"` // yyyy-mm-dd, reference date for buffer derivation
	WeddingTime  string `json:"weddingTime"`
	WeddingCity  string `json:"weddingCity"`
	WeddingVenue string `json:"weddingVenue"`
	Notes        string `json:"notes"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}
