package entity

// Review es un avis de producto (note 1..5).
type Review struct {
	ID      int64    `json:"id"`
	Product *Product `json:"produit,omitempty"`
	User    *User    `json:"utilisateur,omitempty"`
	Rating  int      `json:"note"`
	Comment string   `json:"commentaire,omitempty"`
	Date    string   `json:"dateCreation,omitempty"`
}
