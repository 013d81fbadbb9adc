package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycart_back_end/internal/models"
)

func TestMatchNameCaseInsensitive(t *testing.T) {
	products := []models.Product{
		{Name: "Galaxy S24"},
		{Name: "iPhone 15"},
	}

	p, ok := matchName(products, "galaxy")
	require.True(t, ok)
	assert.Equal(t, "Galaxy S24", p.Name)

	p, ok = matchName(products, "IPHONE")
	require.True(t, ok)
	assert.Equal(t, "iPhone 15", p.Name)
}

func TestMatchNameFirstMatchWins(t *testing.T) {
	products := []models.Product{
		{Name: "Galaxy S24"},
		{Name: "Galaxy S24 Ultra"},
	}

	p, ok := matchName(products, "s24")
	require.True(t, ok)
	assert.Equal(t, "Galaxy S24", p.Name)
}

func TestMatchNameNoMatch(t *testing.T) {
	products := []models.Product{
		{Name: "Galaxy S24"},
	}

	_, ok := matchName(products, "pixel")
	assert.False(t, ok)
}
