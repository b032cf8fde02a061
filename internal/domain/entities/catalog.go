package entities

// Service is a purchasable filing service from the catalog.
type Service struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
}

// Account is a registered customer.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
