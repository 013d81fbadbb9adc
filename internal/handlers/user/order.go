package user

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mycart_back_end/internal/checkout"
	"mycart_back_end/internal/models"
	"mycart_back_end/internal/session"
	"mycart_back_end/internal/store"
	"mycart_back_end/internal/utils"
)

//
// 🛍️ GET /buy/:id/?name=&price=&img= — achat immédiat d'un seul produit,
// distinct du panier : l'id est mis de côté en session comme cible d'achat.
//
func BuyNow(c *gin.Context) {
	productID := c.Param("id")

	p, err := store.GetProduct(productID)
	if err != nil {
		session.AddFlash(c, "error", "Produit introuvable.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	ctx := c.Request.Context()
	sid := session.CurrentID(c)
	session.SetBuyTarget(ctx, sid, productID)

	displayName := c.Query("name")
	if displayName == "" {
		displayName = p.Name
	}
	displayImg := c.Query("img")
	if displayImg == "" {
		displayImg = p.ImageURL
	}

	c.JSON(http.StatusOK, gin.H{
		"product":       p,
		"display_name":  displayName,
		"display_price": checkout.ResolvePrice(c.Query("price"), p.Price),
		"display_img":   displayImg,
		"messages":      session.PopFlashes(c),
	})
}

//
// 🏠 GET /address/ — saisie de l'adresse, avec rappel du produit ciblé
//
func Address(c *gin.Context) {
	ctx := c.Request.Context()
	sid := session.CurrentID(c)

	var product *models.Product
	if buyID, ok := session.BuyTarget(ctx, sid); ok {
		if p, err := store.GetProduct(buyID); err == nil {
			product = &p
		}
	}

	// overrides d'affichage possibles en query params (name/price)
	displayName := c.Query("name")
	if displayName == "" && product != nil {
		displayName = product.Name
	}
	var displayPrice interface{}
	if raw := c.Query("price"); raw != "" {
		displayPrice = raw
	} else if product != nil {
		displayPrice = product.Price
	}

	c.JSON(http.StatusOK, gin.H{
		"product":       product,
		"display_name":  displayName,
		"display_price": displayPrice,
		"messages":      session.PopFlashes(c),
	})
}

//
// 📦 POST /place-order/ — crée l'Order et son OrderItem, prix figé
//
func PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()
	sid := session.CurrentID(c)

	buyID, ok := session.BuyTarget(ctx, sid)
	if !ok {
		session.AddFlash(c, "error", "Rien à acheter. Veuillez d'abord choisir un produit.")
		c.Redirect(http.StatusFound, "/items/mobiles/")
		return
	}

	p, err := store.GetProduct(buyID)
	if err != nil {
		session.AddFlash(c, "error", "Produit introuvable.")
		c.Redirect(http.StatusFound, "/items/mobiles/")
		return
	}

	// le prix d'affichage du client prime s'il se parse comme entier,
	// sinon le prix catalogue courant — et il est figé dès maintenant
	price := checkout.ResolvePrice(c.PostForm("display_price"), p.Price)

	var buyerID *string
	if userID := c.GetString("user_id"); userID != "" {
		buyerID = &userID
	}
	order, item := checkout.NewOrder(buyerID,
		c.PostForm("name"), c.PostForm("address"), c.PostForm("pincode"),
		buyID, price)

	if err := store.InsertOrder(order, item); err != nil {
		log.Printf("❌ Erreur création commande: %v", err)
		session.AddFlash(c, "error", "Erreur lors de la commande. Veuillez réessayer.")
		c.Redirect(http.StatusFound, "/address/")
		return
	}

	session.SetLastOrder(ctx, sid, session.LastOrder{OrderID: order.OrderID, ProductID: buyID})
	log.Printf("✅ Commande %s créée (total %d)", order.OrderID, order.Total)

	c.Redirect(http.StatusFound, "/order-qr/"+order.OrderID+"/")
}

//
// 📜 GET /order/ — historique des commandes de l'utilisateur connecté
//
func MyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	orders, err := store.OrdersByUser(userID)
	if err != nil {
		log.Println("❌ Erreur récupération commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":   orders,
		"messages": session.PopFlashes(c),
	})
}

//
// 🧾 GET /order/invoice/:order_id/ — facture PDF de la commande
//
func OrderInvoice(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("order_id")

	o, err := store.GetOrder(orderID)
	if err != nil || o.UserID == nil || *o.UserID != userID {
		session.AddFlash(c, "error", "Commande introuvable.")
		c.Redirect(http.StatusFound, "/order/")
		return
	}

	pdf, err := utils.RenderInvoicePDF(utils.GenerateOrderInvoiceHTML(o))
	if err != nil {
		log.Printf("❌ Erreur génération facture %s: %v", orderID, err)
		session.AddFlash(c, "error", "Erreur lors de la génération de la facture.")
		c.Redirect(http.StatusFound, "/order/")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=facture_"+orderID+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
