package cart

// Entry est une entrée du panier anonyme tenu en session : un id produit plus
// d'éventuels overrides d'affichage (name/price/img) passés en query params
// au moment de l'ajout. Les doublons sont permis — le nombre d'occurrences
// d'un même produit vaut quantité.
type Entry struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Price     *int64 `json:"price,omitempty"`
	Img       string `json:"img,omitempty"`
}

// Override regroupe les valeurs d'affichage fournies par le client. Elles
// priment sur le catalogue pour l'affichage et, au checkout, pour le prix.
type Override struct {
	Name  string `json:"name,omitempty"`
	Price *int64 `json:"price,omitempty"`
	Img   string `json:"img,omitempty"`
}

// IsZero indique qu'aucun override n'a été fourni.
func (o Override) IsZero() bool {
	return o.Name == "" && o.Price == nil && o.Img == ""
}

func (e Entry) override() Override {
	return Override{Name: e.Name, Price: e.Price, Img: e.Img}
}

// Grouped est le panier anonyme regroupé par produit : les occurrences
// deviennent quantité, l'override de la dernière entrée vue remplace
// entièrement le précédent — un ajout sans override efface donc l'override
// et l'affichage revient au catalogue.
type Grouped struct {
	ProductID string
	Quantity  int
	Override  Override
}

// Group regroupe les entrées par id produit dans l'ordre de première
// apparition.
func Group(entries []Entry) []Grouped {
	index := make(map[string]int)
	var groups []Grouped

	for _, e := range entries {
		if e.ProductID == "" {
			continue
		}
		if i, ok := index[e.ProductID]; ok {
			groups[i].Quantity++
			groups[i].Override = e.override()
			continue
		}
		index[e.ProductID] = len(groups)
		groups = append(groups, Grouped{
			ProductID: e.ProductID,
			Quantity:  1,
			Override:  e.override(),
		})
	}

	return groups
}

// RemoveFirst supprime la première entrée portant cet id produit — une seule
// unité, les doublons suivants restent. Retourne false si rien n'a été retiré.
func RemoveFirst(entries []Entry, productID string) ([]Entry, bool) {
	for i, e := range entries {
		if e.ProductID == productID {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}
