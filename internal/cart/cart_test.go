package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycart_back_end/internal/models"
)

func ptrInt64(v int64) *int64 { return &v }

func testCatalog() Lookup {
	catalog := map[string]models.Product{
		"p1": {Name: "S24 Snap", Price: 9999, ImageURL: "/media/products/s24_snap.jpg"},
		"p2": {Name: "Mobilesfront", Price: 12999, ImageURL: "/media/products/mobilesfront.png"},
	}
	return func(id string) (models.Product, bool) {
		p, ok := catalog[id]
		return p, ok
	}
}

func TestGroupCountsDuplicates(t *testing.T) {
	entries := []Entry{
		{ProductID: "p1"},
		{ProductID: "p2"},
		{ProductID: "p1"},
		{ProductID: "p1"},
	}

	groups := Group(entries)
	require.Len(t, groups, 2)

	// ordre de première apparition
	assert.Equal(t, "p1", groups[0].ProductID)
	assert.Equal(t, 3, groups[0].Quantity)
	assert.Equal(t, "p2", groups[1].ProductID)
	assert.Equal(t, 1, groups[1].Quantity)
}

func TestGroupLastOverrideWins(t *testing.T) {
	entries := []Entry{
		{ProductID: "p1", Name: "Premier", Price: ptrInt64(100)},
		{ProductID: "p1", Name: "Dernier", Img: "/img/custom.png"},
	}

	groups := Group(entries)
	require.Len(t, groups, 1)

	// l'override de la dernière entrée remplace tout : le prix du premier
	// ajout ne survit pas
	assert.Equal(t, "Dernier", groups[0].Override.Name)
	assert.Nil(t, groups[0].Override.Price)
	assert.Equal(t, "/img/custom.png", groups[0].Override.Img)
}

func TestGroupBareAddClearsOverride(t *testing.T) {
	entries := []Entry{
		{ProductID: "p1", Name: "Promo", Price: ptrInt64(100)},
		{ProductID: "p1"},
	}

	groups := Group(entries)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Quantity)
	assert.True(t, groups[0].Override.IsZero(), "un ajout sans override efface l'override")

	// l'affichage revient au prix catalogue
	lines, total := Lines(groups, testCatalog())
	require.Len(t, lines, 1)
	assert.Equal(t, int64(9999), lines[0].DisplayPrice)
	assert.Equal(t, int64(2*9999), total)
}

func TestGroupSkipsEmptyProductID(t *testing.T) {
	groups := Group([]Entry{{ProductID: ""}, {ProductID: "p1"}})
	require.Len(t, groups, 1)
	assert.Equal(t, "p1", groups[0].ProductID)
}

func TestRemoveFirstRemovesOneUnit(t *testing.T) {
	entries := []Entry{
		{ProductID: "p1"},
		{ProductID: "p2"},
		{ProductID: "p1"},
	}

	after, removed := RemoveFirst(entries, "p1")
	require.True(t, removed)
	require.Len(t, after, 2)

	// le doublon suivant reste
	assert.Equal(t, "p2", after[0].ProductID)
	assert.Equal(t, "p1", after[1].ProductID)
}

func TestRemoveFirstNotFound(t *testing.T) {
	entries := []Entry{{ProductID: "p1"}}

	after, removed := RemoveFirst(entries, "p9")
	assert.False(t, removed)
	assert.Equal(t, entries, after)

	_, total := Lines(Group(after), testCatalog())
	assert.Equal(t, int64(9999), total, "le total ne doit pas bouger")
}

func TestAddAddRemoveQuantity(t *testing.T) {
	var entries []Entry
	entries = append(entries, Entry{ProductID: "p1"})
	entries = append(entries, Entry{ProductID: "p1"})

	entries, removed := RemoveFirst(entries, "p1")
	require.True(t, removed)

	groups := Group(entries)
	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Quantity, "quantité = ajouts - retraits")
}

func TestLinesOverridePrecedence(t *testing.T) {
	groups := []Grouped{
		{ProductID: "p1", Quantity: 2, Override: Override{Name: "Promo", Price: ptrInt64(499)}},
		{ProductID: "p2", Quantity: 1},
	}

	lines, total := Lines(groups, testCatalog())
	require.Len(t, lines, 2)

	assert.Equal(t, "Promo", lines[0].DisplayName)
	assert.Equal(t, int64(499), lines[0].DisplayPrice)
	assert.Equal(t, "/media/products/s24_snap.jpg", lines[0].DisplayImg, "img sans override = catalogue")
	assert.Equal(t, int64(998), lines[0].Subtotal)

	assert.Equal(t, "Mobilesfront", lines[1].DisplayName)
	assert.Equal(t, int64(12999), lines[1].DisplayPrice)

	assert.Equal(t, int64(998+12999), total)
}

func TestLinesDropsUnknownProducts(t *testing.T) {
	groups := []Grouped{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "supprime", Quantity: 5},
	}

	lines, total := Lines(groups, testCatalog())
	require.Len(t, lines, 1)
	assert.Equal(t, int64(9999), total)
}

func TestFromItemsAppliesSessionOverrides(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 1},
	}
	overrides := map[string]Override{
		"p1": {Price: ptrInt64(1000)},
	}

	groups := FromItems(items, overrides)
	require.Len(t, groups, 2)
	require.NotNil(t, groups[0].Override.Price)
	assert.Equal(t, int64(1000), *groups[0].Override.Price)
	assert.True(t, groups[1].Override.IsZero())

	_, total := Lines(groups, testCatalog())
	assert.Equal(t, int64(3*1000+12999), total)
}
