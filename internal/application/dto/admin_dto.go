package dto

// ProductForm parte JSON "produit" del multipart de create/update de producto.
type ProductForm struct {
	Name           string  `json:"nom"`
	Price          float64 `json:"prix"`
	OriginalPrice  float64 `json:"prixOriginal,omitempty"`
	Stock          int     `json:"stock"`
	Description    string  `json:"description,omitempty"`
	Brand          string  `json:"marque,omitempty"`
	Ingredients    string  `json:"ingredients,omitempty"`
	ExpirationDate string  `json:"dateExpiration,omitempty"`
	LowStockLevel  int     `json:"seuilStockBas,omitempty"`
	CategoryID     int64   `json:"categorieId,omitempty"`
}

// CategoryForm cuerpo de create/update de categoría.
type CategoryForm struct {
	Name        string `json:"nom"`
	Description string `json:"description,omitempty"`
}

// PromotionForm cuerpo de POST /admin/promotions. Las fechas van en ISO-8601
// sin zona (LocalDateTime del backend).
type PromotionForm struct {
	ProductID int64   `json:"productId"`
	Reduction float64 `json:"reductionPourcentage"`
	StartDate string  `json:"dateDebut"`
	EndDate   string  `json:"dateFin"`
}

// UserForm cuerpo de PUT /admin/users/{id} (también usado por el propio
// usuario para actualizar su perfil).
type UserForm struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Country   string `json:"country,omitempty"`
}

// StockUpdateRequest cuerpo de PUT /admin/stocks/{productId}.
type StockUpdateRequest struct {
	Quantity   int  `json:"quantity"`
	IsAddition bool `json:"isAddition"`
}

// OrderStatusRequest cuerpo de PUT /admin/orders/{id}/status.
type OrderStatusRequest struct {
	Status string `json:"status"`
}
