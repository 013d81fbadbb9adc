package store

import (
	"github.com/gocql/gocql"

	"mycart_back_end/internal/database"
	"mycart_back_end/internal/models"
)

// InsertOrder écrit la commande, sa ligne, la vue orders_by_user (historique
// par utilisateur, plus récent d'abord) et l'index inverse
// order_items_by_product (blocage de suppression du produit).
func InsertOrder(o models.Order, item models.OrderItem) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	productUUID, err := gocql.ParseUUID(item.ProductID)
	if err != nil {
		return err
	}

	var userUUID *gocql.UUID
	if o.UserID != nil {
		parsed, err := gocql.ParseUUID(*o.UserID)
		if err != nil {
			return err
		}
		userUUID = &parsed
	}

	if err := session.Query(
		`INSERT INTO orders (order_id, user_id, name, address, pincode, total, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.OrderID, userUUID, o.Name, o.Address, o.Pincode, o.Total, o.CreatedAt).Exec(); err != nil {
		return err
	}

	if err := session.Query(
		`INSERT INTO order_items (order_id, product_id, quantity, price)
		 VALUES (?, ?, ?, ?)`,
		o.OrderID, productUUID, item.Quantity, item.Price).Exec(); err != nil {
		return err
	}

	if err := session.Query(
		"INSERT INTO order_items_by_product (product_id, order_id) VALUES (?, ?)",
		productUUID, o.OrderID).Exec(); err != nil {
		return err
	}

	if userUUID != nil {
		return session.Query(
			"INSERT INTO orders_by_user (user_id, created_at, order_id) VALUES (?, ?, ?)",
			*userUUID, o.CreatedAt, o.OrderID).Exec()
	}
	return nil
}

func orderItems(session *gocql.Session, orderID string) ([]models.OrderItem, error) {
	iter := session.Query(
		"SELECT product_id, quantity, price FROM order_items WHERE order_id = ?", orderID).Iter()

	var items []models.OrderItem
	var productUUID gocql.UUID
	var it models.OrderItem
	for iter.Scan(&productUUID, &it.Quantity, &it.Price) {
		it.ProductID = productUUID.String()
		// enrichit avec le nom actuel du catalogue ; le prix, lui, reste figé
		if p, err := GetProduct(it.ProductID); err == nil {
			it.ProductName = p.Name
		}
		items = append(items, it)
		it = models.OrderItem{}
	}
	return items, iter.Close()
}

func GetOrder(orderID string) (models.Order, error) {
	var o models.Order

	session, err := database.GetOrdersSession()
	if err != nil {
		return o, err
	}

	var userUUID *gocql.UUID
	err = session.Query(
		`SELECT order_id, user_id, name, address, pincode, total, created_at
		 FROM orders WHERE order_id = ?`, orderID).
		Scan(&o.OrderID, &userUUID, &o.Name, &o.Address, &o.Pincode, &o.Total, &o.CreatedAt)
	if err != nil {
		return o, err
	}
	if userUUID != nil {
		s := userUUID.String()
		o.UserID = &s
	}

	o.Items, err = orderItems(session, orderID)
	return o, err
}

// OrdersByUser retourne les commandes de l'utilisateur, plus récentes d'abord.
func OrdersByUser(userID string) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	userUUID, err := gocql.ParseUUID(userID)
	if err != nil {
		return nil, err
	}

	iter := session.Query(
		"SELECT order_id FROM orders_by_user WHERE user_id = ?", userUUID).Iter()

	var orderIDs []string
	var orderID string
	for iter.Scan(&orderID) {
		orderIDs = append(orderIDs, orderID)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(orderIDs))
	for _, id := range orderIDs {
		o, err := GetOrder(id)
		if err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// HasOrderItemsForProduct indique si au moins une ligne de commande référence
// ce produit.
func HasOrderItemsForProduct(productID string) (bool, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return false, err
	}

	productUUID, err := gocql.ParseUUID(productID)
	if err != nil {
		return false, err
	}

	var orderID string
	err = session.Query(
		"SELECT order_id FROM order_items_by_product WHERE product_id = ? LIMIT 1",
		productUUID).Scan(&orderID)
	if err == gocql.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
