package entity

// Cart es el panier del usuario. El backend lo devuelve entero en cada
// lectura; el cliente nunca fusiona items localmente.
type Cart struct {
	ID    int64      `json:"id"`
	Items []CartItem `json:"items"`
}

// CartItem es una línea del panier; Quantity nunca debe superar el stock del
// producto (el backend es la autoridad, el cliente solo lo valida en la UI).
type CartItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"produit"`
	Quantity int     `json:"quantite"`
}

// Favorite asocia un producto a la lista de favoritos del usuario.
// Un producto aparece como máximo una vez.
type Favorite struct {
	ID      int64   `json:"id"`
	Product Product `json:"produit"`
}
