package entity

import "github.com/shopspring/decimal"

// Promotion aplica un porcentaje de reducción a un producto entre dos fechas.
type Promotion struct {
	ID        int64   `json:"id"`
	Product   Product `json:"produit"`
	Reduction float64 `json:"reductionPourcentage"`
	StartDate string  `json:"dateDebut"`
	EndDate   string  `json:"dateFin"`
}

// DiscountedPrice devuelve prix × (1 − reduction/100), normalizado a decimal.
func (p Promotion) DiscountedPrice() decimal.Decimal {
	factor := decimal.NewFromInt(100).
		Sub(decimal.NewFromFloat(p.Reduction)).
		Div(decimal.NewFromInt(100))
	return p.Product.Price.Decimal.Mul(factor)
}
