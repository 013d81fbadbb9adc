package cart

import "mycart_back_end/internal/models"

// Line est une ligne du panier prête à afficher : produit du catalogue,
// valeurs d'affichage résolues (override sinon catalogue) et sous-total.
type Line struct {
	Product      models.Product `json:"product"`
	Quantity     int            `json:"quantity"`
	DisplayName  string         `json:"display_name"`
	DisplayPrice int64          `json:"display_price"`
	DisplayImg   string         `json:"display_img"`
	Subtotal     int64          `json:"subtotal"`
}

// Lookup résout un id produit vers le catalogue.
type Lookup func(productID string) (models.Product, bool)

// FromItems convertit les lignes du panier persistant en groupes, en
// appliquant les overrides tenus en session (jamais persistés sur la ligne).
func FromItems(items []models.CartItem, overrides map[string]Override) []Grouped {
	groups := make([]Grouped, 0, len(items))
	for _, it := range items {
		groups = append(groups, Grouped{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Override:  overrides[it.ProductID],
		})
	}
	return groups
}

// Lines calcule les lignes d'affichage et le total du panier.
// Prix affiché = prix de l'override s'il existe, sinon prix catalogue courant ;
// sous-total = prix affiché × quantité ; total = somme des sous-totaux.
// Les ids produits inconnus (produits supprimés) sont écartés en silence.
func Lines(groups []Grouped, lookup Lookup) ([]Line, int64) {
	lines := make([]Line, 0, len(groups))
	var total int64

	for _, g := range groups {
		p, ok := lookup(g.ProductID)
		if !ok {
			continue
		}

		line := Line{
			Product:      p,
			Quantity:     g.Quantity,
			DisplayName:  p.Name,
			DisplayPrice: p.Price,
			DisplayImg:   p.ImageURL,
		}
		if g.Override.Name != "" {
			line.DisplayName = g.Override.Name
		}
		if g.Override.Price != nil {
			line.DisplayPrice = *g.Override.Price
		}
		if g.Override.Img != "" {
			line.DisplayImg = g.Override.Img
		}
		line.Subtotal = line.DisplayPrice * int64(g.Quantity)

		total += line.Subtotal
		lines = append(lines, line)
	}

	return lines, total
}
