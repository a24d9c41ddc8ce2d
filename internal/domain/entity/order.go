package entity

// Estados de una commande, tal como los define el backend.
const (
	OrderPending    = "EN_ATTENTE"
	OrderProcessing = "EN_COURS_DE_TRAITEMENT"
	OrderShipped    = "EXPEDIE"
	OrderDelivered  = "LIVRE"
	OrderCancelled  = "ANNULE"
)

// Order es una commande. Total lo calcula el servidor; el cliente solo lo
// refleja (salvo el patch optimista inmediato antes de un refetch).
type Order struct {
	ID     int64       `json:"id"`
	Date   string      `json:"dateCommande"`
	Total  Amount      `json:"total"`
	Status string      `json:"statut"`
	Lines  []OrderLine `json:"lignesCommande"`
	User   *User       `json:"utilisateur,omitempty"`
}

// OrderLine es una ligne de commande.
type OrderLine struct {
	ID       int64   `json:"id"`
	Product  Product `json:"produit"`
	Quantity int     `json:"quantite"`
}
