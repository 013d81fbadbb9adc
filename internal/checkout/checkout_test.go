package checkout

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrice(t *testing.T) {
	assert.Equal(t, int64(499), ResolvePrice("499", 9999))
	assert.Equal(t, int64(499), ResolvePrice(" 499 ", 9999))
	assert.Equal(t, int64(0), ResolvePrice("0", 9999))
	assert.Equal(t, int64(-5), ResolvePrice("-5", 9999))

	// non numérique : repli sur le prix catalogue
	assert.Equal(t, int64(9999), ResolvePrice("", 9999))
	assert.Equal(t, int64(9999), ResolvePrice("gratuit", 9999))
	assert.Equal(t, int64(9999), ResolvePrice("49.99", 9999))
}

func TestNewOrderIDFormat(t *testing.T) {
	id := NewOrderID()
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{8}$`), id)
}

func TestNewOrderIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		assert.False(t, seen[id], "id dupliqué: %s", id)
		seen[id] = true
	}
}

func TestNewOrderFreezesResolvedPrice(t *testing.T) {
	catalogPrice := int64(9999)
	price := ResolvePrice("499", catalogPrice)

	userID := "11111111-1111-1111-1111-111111111111"
	order, item := NewOrder(&userID, "Alice", "1 rue de la Paix", "75002",
		"22222222-2222-2222-2222-222222222222", price)

	// le prix résolu est figé sur la commande et sur sa ligne
	assert.Equal(t, int64(499), order.Total)
	assert.Equal(t, int64(499), item.Price)
	assert.Equal(t, 1, item.Quantity)
	require.NotNil(t, order.UserID)
	assert.Equal(t, userID, *order.UserID)
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{8}$`), order.OrderID)
}

func TestNewOrderAnonymousBuyer(t *testing.T) {
	order, item := NewOrder(nil, "Bob", "2 rue Oberkampf", "75011",
		"22222222-2222-2222-2222-222222222222", 9999)

	assert.Nil(t, order.UserID)
	assert.Equal(t, int64(9999), order.Total)
	assert.Equal(t, int64(9999), item.Price)
}

func TestConfirmationLink(t *testing.T) {
	link := ConfirmationLink("http://localhost:8080", "1700000000-abcd1234")
	assert.Equal(t, "http://localhost:8080/thanks/?order=1700000000-abcd1234", link)

	// le slash final de la base ne doit pas doubler
	link = ConfirmationLink("http://localhost:8080/", "x")
	assert.Equal(t, "http://localhost:8080/thanks/?order=x", link)
}

func TestExternalQRImageURL(t *testing.T) {
	u := ExternalQRImageURL("http://localhost:8080/thanks/?order=42")
	assert.Contains(t, u, "https://api.qrserver.com/v1/create-qr-code/?")
	assert.Contains(t, u, "size=300x300")
	assert.Contains(t, u, "data=http%3A%2F%2Flocalhost%3A8080%2Fthanks%2F%3Forder%3D42")
}
