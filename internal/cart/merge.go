package cart

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// PersistentCart est la partie du store dont la fusion a besoin : créer la
// ligne (user, produit) si absente, sinon incrémenter sa quantité de 1.
type PersistentCart interface {
	Upsert(ctx context.Context, userID, productID string) error
}

// Merge reverse le panier anonyme dans le panier persistant de l'utilisateur
// après connexion : chaque entrée vaut +1 sur la ligne correspondante. Les
// ids malformés sont ignorés individuellement, et aucune erreur du store ne
// remonte — la fusion ne doit jamais empêcher le login d'aboutir. Retourne
// le nombre d'entrées effectivement fusionnées.
func Merge(ctx context.Context, store PersistentCart, userID string, entries []Entry) int {
	merged := 0
	for _, e := range entries {
		if _, err := uuid.Parse(e.ProductID); err != nil {
			// id malformé : on saute l'entrée, pas la fusion
			continue
		}
		if err := store.Upsert(ctx, userID, e.ProductID); err != nil {
			log.Printf("⚠️ Fusion panier: échec sur le produit %s: %v", e.ProductID, err)
			continue
		}
		merged++
	}
	return merged
}
