package store

import (
	"errors"
	"time"

	"github.com/gocql/gocql"

	"mycart_back_end/internal/database"
	"mycart_back_end/internal/models"
)

// ErrProductReferenced : le produit apparaît dans des lignes de commande
// historiques, sa suppression est refusée (les prix figés y pointent encore).
var ErrProductReferenced = errors.New("produit référencé par des commandes")

func ListProducts() ([]models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(
		`SELECT product_id, name, price, old_price, image_url, description, created_at
		 FROM products`).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Price, &p.OldPrice, &p.ImageURL, &p.Description, &p.CreatedAt) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

func GetProduct(id string) (models.Product, error) {
	var p models.Product

	productUUID, err := gocql.ParseUUID(id)
	if err != nil {
		return p, err
	}

	session, err := database.GetProductsSession()
	if err != nil {
		return p, err
	}

	err = session.Query(
		`SELECT product_id, name, price, old_price, image_url, description, created_at
		 FROM products WHERE product_id = ?`, productUUID).
		Scan(&p.ID, &p.Name, &p.Price, &p.OldPrice, &p.ImageURL, &p.Description, &p.CreatedAt)
	return p, err
}

// InsertProduct crée un produit (chemin admin/seed uniquement — le storefront
// ne modifie jamais le catalogue).
func InsertProduct(p *models.Product) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return err
	}

	if p.ID == (gocql.UUID{}) {
		p.ID = gocql.TimeUUID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	return session.Query(
		`INSERT INTO products (product_id, name, price, old_price, image_url, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.OldPrice, p.ImageURL, p.Description, p.CreatedAt).Exec()
}

// DeleteProduct supprime un produit du catalogue, sauf si des lignes de
// commande le référencent encore.
// UpdateProductImage remplace l'URL d'image d'un produit existant.
func UpdateProductImage(id, imageURL string) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return err
	}

	productUUID, err := gocql.ParseUUID(id)
	if err != nil {
		return err
	}

	return session.Query(
		"UPDATE products SET image_url = ? WHERE product_id = ?",
		imageURL, productUUID).Exec()
}

func DeleteProduct(id string) error {
	productUUID, err := gocql.ParseUUID(id)
	if err != nil {
		return err
	}

	referenced, err := HasOrderItemsForProduct(id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrProductReferenced
	}

	session, err := database.GetProductsSession()
	if err != nil {
		return err
	}
	return session.Query("DELETE FROM products WHERE product_id = ?", productUUID).Exec()
}
