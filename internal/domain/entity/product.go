package entity

// Product representa un producto del catálogo. Los tags JSON siguen los
// nombres franceses de las entidades del backend.
type Product struct {
	ID             int64     `json:"id"`
	Name           string    `json:"nom"`
	Price          Amount    `json:"prix"`
	OriginalPrice  Amount    `json:"prixOriginal,omitempty"`
	Stock          int       `json:"stock"`
	ImagePath      string    `json:"imagePath,omitempty"`
	Description    string    `json:"description,omitempty"`
	Brand          string    `json:"marque,omitempty"`
	Ingredients    string    `json:"ingredients,omitempty"`
	ExpirationDate string    `json:"dateExpiration,omitempty"`
	LowStockLevel  int       `json:"seuilStockBas,omitempty"`
	Category       *Category `json:"categorie,omitempty"`
	Reviews        []Review  `json:"avis,omitempty"`
}

// InStock indica si queda existencia vendible.
func (p Product) InStock() bool {
	return p.Stock > 0
}
