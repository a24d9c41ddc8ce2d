package entity

// Stock es la existencia de un producto con su umbral de alerta.
type Stock struct {
	ID       int64   `json:"id"`
	Product  Product `json:"produit"`
	Quantity int     `json:"quantite"`
	LowLevel int     `json:"seuilBas"`
}

// StockHistory es una entrada del historique de movimientos de stock.
type StockHistory struct {
	ID       int64   `json:"id"`
	Product  Product `json:"produit"`
	Action   string  `json:"action"`
	Quantity int     `json:"quantity"`
	Date     string  `json:"date"`
}
