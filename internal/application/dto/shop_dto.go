package dto

// AddToCartRequest cuerpo de POST /client/cart/add.
type AddToCartRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// UpdateCartItemRequest cuerpo de PUT /client/cart/update/{itemId}.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// AddFavoriteRequest cuerpo de POST /client/favorites/add.
type AddFavoriteRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
}

// ReviewRequest cuerpo de POST /client/reviews (note 1..5).
type ReviewRequest struct {
	ProductID int64  `json:"productId"`
	Rating    int    `json:"note"`
	Comment   string `json:"commentaire"`
	UserID    int64  `json:"userId"`
}

// ContactRequest cuerpo de POST /client/contact.
type ContactRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
