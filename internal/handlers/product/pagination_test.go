package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycart_back_end/internal/models"
)

func sampleProducts(n int) []models.Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{
			Name:      "Produit",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return products
}

func TestPaginate(t *testing.T) {
	products := sampleProducts(14)

	page, cur, num := paginate(products, 1, mobilesPerPage)
	assert.Len(t, page, 6)
	assert.Equal(t, 1, cur)
	assert.Equal(t, 3, num)

	page, cur, _ = paginate(products, 3, mobilesPerPage)
	assert.Len(t, page, 2, "dernière page incomplète")
	assert.Equal(t, 3, cur)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	products := sampleProducts(7)

	_, cur, num := paginate(products, 0, mobilesPerPage)
	assert.Equal(t, 1, cur)
	assert.Equal(t, 2, num)

	page, cur, _ := paginate(products, 99, mobilesPerPage)
	assert.Equal(t, 2, cur)
	assert.Len(t, page, 1)
}

func TestPaginateEmptyCatalog(t *testing.T) {
	page, cur, num := paginate(nil, 1, mobilesPerPage)
	assert.Empty(t, page)
	assert.Equal(t, 1, cur)
	assert.Equal(t, 1, num)
}

func TestSortNewest(t *testing.T) {
	products := sampleProducts(3)
	sortNewest(products)

	require.Len(t, products, 3)
	assert.True(t, products[0].CreatedAt.After(products[1].CreatedAt))
	assert.True(t, products[1].CreatedAt.After(products[2].CreatedAt))
}
