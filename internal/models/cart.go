package models

// CartItem est une ligne du panier persistant : une ligne par (user, produit),
// la quantité porte la multiplicité, jamais le nombre de lignes.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
