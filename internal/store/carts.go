package store

import (
	"context"

	"github.com/gocql/gocql"

	"mycart_back_end/internal/database"
	"mycart_back_end/internal/models"
)

// CartStore expose le panier persistant (une ligne par (user, produit)).
// La valeur vide satisfait cart.PersistentCart pour la fusion au login.
type CartStore struct{}

// addQuantity retourne la quantité à écrire après un ajout : 1 pour une
// ligne absente, sinon une unité de plus.
func addQuantity(current int, found bool) int {
	if !found {
		return 1
	}
	return current + 1
}

// removeStep décide du sort d'une ligne au retrait d'une unité.
type removeStep int

const (
	removeNotFound  removeStep = iota // la ligne n'existe pas
	removeDecrement                   // réécrire avec une unité de moins
	removeDelete                      // quantité 1 : supprimer la ligne
)

func removeQuantity(current int, found bool) (int, removeStep) {
	if !found {
		return 0, removeNotFound
	}
	if current > 1 {
		return current - 1, removeDecrement
	}
	return 0, removeDelete
}

// Items retourne les lignes du panier de l'utilisateur.
func (CartStore) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	userUUID, err := gocql.ParseUUID(userID)
	if err != nil {
		return nil, err
	}

	iter := session.Query(
		"SELECT product_id, quantity FROM cart_items WHERE user_id = ?", userUUID).
		WithContext(ctx).Iter()

	var items []models.CartItem
	var productUUID gocql.UUID
	var quantity int
	for iter.Scan(&productUUID, &quantity) {
		items = append(items, models.CartItem{ProductID: productUUID.String(), Quantity: quantity})
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert crée la ligne (user, produit) à quantité 1, ou l'incrémente de 1 si
// elle existe déjà. La clé primaire (user_id, product_id) garantit qu'un
// produit n'occupe jamais plus d'une ligne.
func (CartStore) Upsert(ctx context.Context, userID, productID string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	userUUID, err := gocql.ParseUUID(userID)
	if err != nil {
		return err
	}
	productUUID, err := gocql.ParseUUID(productID)
	if err != nil {
		return err
	}

	var quantity int
	err = session.Query(
		"SELECT quantity FROM cart_items WHERE user_id = ? AND product_id = ?",
		userUUID, productUUID).WithContext(ctx).Scan(&quantity)
	found := err == nil
	if err != nil && err != gocql.ErrNotFound {
		return err
	}

	return session.Query(
		"INSERT INTO cart_items (user_id, product_id, quantity) VALUES (?, ?, ?)",
		userUUID, productUUID, addQuantity(quantity, found)).WithContext(ctx).Exec()
}

// Remove retire une unité : décrémente la quantité, ou supprime la ligne
// quand elle vaut déjà 1. gocql.ErrNotFound si le produit n'est pas dans le
// panier.
func (CartStore) Remove(ctx context.Context, userID, productID string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	userUUID, err := gocql.ParseUUID(userID)
	if err != nil {
		return err
	}
	productUUID, err := gocql.ParseUUID(productID)
	if err != nil {
		return gocql.ErrNotFound
	}

	var quantity int
	err = session.Query(
		"SELECT quantity FROM cart_items WHERE user_id = ? AND product_id = ?",
		userUUID, productUUID).WithContext(ctx).Scan(&quantity)
	if err != nil && err != gocql.ErrNotFound {
		return err
	}

	remaining, step := removeQuantity(quantity, err == nil)
	switch step {
	case removeDecrement:
		return session.Query(
			"INSERT INTO cart_items (user_id, product_id, quantity) VALUES (?, ?, ?)",
			userUUID, productUUID, remaining).WithContext(ctx).Exec()
	case removeDelete:
		return session.Query(
			"DELETE FROM cart_items WHERE user_id = ? AND product_id = ?",
			userUUID, productUUID).WithContext(ctx).Exec()
	default:
		return gocql.ErrNotFound
	}
}
