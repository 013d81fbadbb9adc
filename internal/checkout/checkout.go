package checkout

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mycart_back_end/internal/models"
)

// NewOrderID génère un id de commande dérivé du timestamp Unix en secondes,
// complété d'un suffixe aléatoire pour que deux commandes passées dans la
// même seconde ne puissent pas entrer en collision.
func NewOrderID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("%d-%s", time.Now().Unix(), hex.EncodeToString(b))
}

// ResolvePrice retourne le prix d'affichage fourni par le client s'il se
// parse comme entier, sinon le prix catalogue courant. Le client peut donc
// imposer un prix arbitraire — limite de confiance assumée du design actuel,
// signalée plutôt que corrigée.
func ResolvePrice(displayPrice string, catalogPrice int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(displayPrice), 10, 64)
	if err != nil {
		return catalogPrice
	}
	return v
}

// NewOrder construit la commande et sa ligne unique (quantité 1), le prix
// résolu figé sur les deux : les changements ultérieurs du prix catalogue ne
// touchent jamais une commande passée.
func NewOrder(userID *string, name, address, pincode, productID string, price int64) (models.Order, models.OrderItem) {
	order := models.Order{
		OrderID:   NewOrderID(),
		UserID:    userID,
		Name:      name,
		Address:   address,
		Pincode:   pincode,
		Total:     price,
		CreatedAt: time.Now(),
	}
	item := models.OrderItem{ProductID: productID, Quantity: 1, Price: price}
	return order, item
}

// ConfirmationLink construit le lien de remerciement que le QR encode.
func ConfirmationLink(baseURL, orderID string) string {
	return fmt.Sprintf("%s/thanks/?%s", strings.TrimRight(baseURL, "/"),
		url.Values{"order": {orderID}}.Encode())
}

// ExternalQRImageURL construit l'URL du générateur public de QR codes qui
// encode le lien de confirmation.
func ExternalQRImageURL(link string) string {
	q := url.Values{}
	q.Set("size", "300x300")
	q.Set("data", link)
	return "https://api.qrserver.com/v1/create-qr-code/?" + q.Encode()
}
