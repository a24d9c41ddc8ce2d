package entity

// Category agrupa productos del catálogo.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nom"`
	Description string    `json:"description,omitempty"`
	Products    []Product `json:"produits,omitempty"`
}
