package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCart rejoue les transitions de CartStore sur une map, sans Scylla.
type memoryCart map[string]int

func (m memoryCart) add(productID string) {
	current, found := m[productID]
	m[productID] = addQuantity(current, found)
}

func (m memoryCart) remove(productID string) removeStep {
	current, found := m[productID]
	remaining, step := removeQuantity(current, found)
	switch step {
	case removeDecrement:
		m[productID] = remaining
	case removeDelete:
		delete(m, productID)
	}
	return step
}

func TestAddQuantity(t *testing.T) {
	assert.Equal(t, 1, addQuantity(0, false), "ligne absente: quantité 1")
	assert.Equal(t, 2, addQuantity(1, true))
	assert.Equal(t, 6, addQuantity(5, true))
}

func TestRemoveQuantity(t *testing.T) {
	remaining, step := removeQuantity(3, true)
	assert.Equal(t, removeDecrement, step)
	assert.Equal(t, 2, remaining)

	// quantité 1 : la ligne disparaît, pas de ligne à quantité 0
	_, step = removeQuantity(1, true)
	assert.Equal(t, removeDelete, step)

	_, step = removeQuantity(0, false)
	assert.Equal(t, removeNotFound, step)
}

func TestCartQuantityIsAddsMinusRemoves(t *testing.T) {
	cart := memoryCart{}

	for i := 0; i < 5; i++ {
		cart.add("p1")
	}
	for i := 0; i < 2; i++ {
		require.NotEqual(t, removeNotFound, cart.remove("p1"))
	}

	assert.Equal(t, 3, cart["p1"], "quantité finale = ajouts - retraits")
}

func TestCartRemoveLastUnitDeletesRow(t *testing.T) {
	cart := memoryCart{}
	cart.add("p1")

	assert.Equal(t, removeDelete, cart.remove("p1"))
	_, exists := cart["p1"]
	assert.False(t, exists)

	// retrait d'un produit jamais ajouté
	assert.Equal(t, removeNotFound, cart.remove("p1"))
	assert.Equal(t, removeNotFound, cart.remove("jamais-ajouté"))
}
