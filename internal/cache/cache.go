package cache

import (
	"context"
	"encoding/json"
	"time"

	"mycart_back_end/internal/database"
	"mycart_back_end/internal/models"
)

const (
	ProductCacheTTL = 10 * time.Minute

	productsAllKey = "products:all"
)

// CachedProducts retourne la liste complète du catalogue depuis Redis, si
// elle y est.
func CachedProducts(ctx context.Context) ([]models.Product, bool) {
	data, err := database.Redis.Get(ctx, productsAllKey).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var products []models.Product
	if json.Unmarshal([]byte(data), &products) != nil {
		return nil, false
	}
	return products, true
}

// StoreProducts met la liste du catalogue en cache.
func StoreProducts(ctx context.Context, products []models.Product) {
	jsonData, _ := json.Marshal(products)
	database.Redis.Set(ctx, productsAllKey, jsonData, ProductCacheTTL)
}

// InvalidateProducts invalide le cache du catalogue (création/suppression
// via le chemin admin/seed).
func InvalidateProducts(ctx context.Context) {
	database.Redis.Del(ctx, productsAllKey)
}
