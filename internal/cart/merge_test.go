package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersistentCart struct {
	quantities map[string]int
	failOn     map[string]bool
}

func newFakePersistentCart() *fakePersistentCart {
	return &fakePersistentCart{
		quantities: make(map[string]int),
		failOn:     make(map[string]bool),
	}
}

func (f *fakePersistentCart) Upsert(_ context.Context, _, productID string) error {
	if f.failOn[productID] {
		return errors.New("scylla indisponible")
	}
	f.quantities[productID]++
	return nil
}

const (
	mergeID1 = "11111111-1111-1111-1111-111111111111"
	mergeID2 = "22222222-2222-2222-2222-222222222222"
)

func TestMergeAddsOnePerEntry(t *testing.T) {
	store := newFakePersistentCart()
	entries := []Entry{
		{ProductID: mergeID1},
		{ProductID: mergeID1},
		{ProductID: mergeID2},
	}

	merged := Merge(context.Background(), store, "user-1", entries)

	assert.Equal(t, 3, merged)
	assert.Equal(t, 2, store.quantities[mergeID1], "produit en double = quantité 2")
	assert.Equal(t, 1, store.quantities[mergeID2])
}

func TestMergeSkipsMalformedIDs(t *testing.T) {
	store := newFakePersistentCart()
	entries := []Entry{
		{ProductID: "pas-un-uuid"},
		{ProductID: mergeID1},
	}

	merged := Merge(context.Background(), store, "user-1", entries)

	assert.Equal(t, 1, merged)
	require.Len(t, store.quantities, 1)
	assert.Equal(t, 1, store.quantities[mergeID1])
}

func TestMergeSwallowsStoreErrors(t *testing.T) {
	store := newFakePersistentCart()
	store.failOn[mergeID1] = true
	entries := []Entry{
		{ProductID: mergeID1},
		{ProductID: mergeID2},
	}

	// aucune erreur ne remonte, les autres entrées passent quand même
	merged := Merge(context.Background(), store, "user-1", entries)

	assert.Equal(t, 1, merged)
	assert.Equal(t, 1, store.quantities[mergeID2])
	assert.Zero(t, store.quantities[mergeID1])
}

func TestMergeEmptyCart(t *testing.T) {
	store := newFakePersistentCart()
	assert.Zero(t, Merge(context.Background(), store, "user-1", nil))
	assert.Empty(t, store.quantities)
}
