package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"mycart_back_end/internal/cart"
	"mycart_back_end/internal/models"
	"mycart_back_end/internal/session"
	"mycart_back_end/internal/store"
)

// queryOverride lit les overrides d'affichage passés en query params à
// l'ajout (name/price/img). Un prix non entier est ignoré : il ne pourrait
// de toute façon pas participer aux sous-totaux.
func queryOverride(c *gin.Context) cart.Override {
	o := cart.Override{Name: c.Query("name"), Img: c.Query("img")}
	if raw := c.Query("price"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			o.Price = &v
		}
	}
	return o
}

//
// 🟢 GET /add-to-cart/:id/?name=&price=&img=
//
func AddToCart(c *gin.Context) {
	productID := c.Param("id")
	ctx := c.Request.Context()
	sid := session.CurrentID(c)
	o := queryOverride(c)

	if _, err := store.GetProduct(productID); err != nil {
		session.AddFlash(c, "error", "Produit introuvable.")
		c.Redirect(http.StatusFound, "/cart/")
		return
	}

	if userID := c.GetString("user_id"); userID != "" {
		// panier persistant : une ligne par produit, la quantité s'incrémente
		if err := (store.CartStore{}).Upsert(ctx, userID, productID); err != nil {
			session.AddFlash(c, "error", "Erreur lors de l'ajout au panier.")
			c.Redirect(http.StatusFound, "/cart/")
			return
		}
		// les overrides restent en session, jamais sur la ligne persistée ;
		// le dernier ajout remplace entièrement l'override, même vide
		session.SetOverride(ctx, sid, productID, o)
		session.AddFlash(c, "success", "Produit ajouté à votre panier.")
		c.Redirect(http.StatusFound, "/cart/")
		return
	}

	// panier anonyme : une entrée par ajout, les doublons valent quantité
	entries := session.Cart(ctx, sid)
	entries = append(entries, cart.Entry{
		ProductID: productID,
		Name:      o.Name,
		Price:     o.Price,
		Img:       o.Img,
	})
	session.SaveCart(ctx, sid, entries)

	session.AddFlash(c, "success", "Produit ajouté au panier.")
	c.Redirect(http.StatusFound, "/cart/")
}

//
// ❌ GET /remove-from-cart/:id/
//
func RemoveFromCart(c *gin.Context) {
	productID := c.Param("id")
	ctx := c.Request.Context()
	sid := session.CurrentID(c)

	if userID := c.GetString("user_id"); userID != "" {
		err := (store.CartStore{}).Remove(ctx, userID, productID)
		if err == gocql.ErrNotFound {
			session.AddFlash(c, "error", "Article introuvable dans votre panier.")
		} else if err != nil {
			session.AddFlash(c, "error", "Erreur lors du retrait de l'article.")
		} else {
			session.AddFlash(c, "success", "Article retiré de votre panier.")
		}
		c.Redirect(http.StatusFound, "/cart/")
		return
	}

	// une seule unité : la première entrée correspondante, les doublons restent
	entries := session.Cart(ctx, sid)
	entries, removed := cart.RemoveFirst(entries, productID)
	if removed {
		session.SaveCart(ctx, sid, entries)
		session.AddFlash(c, "success", "Article retiré du panier.")
	} else {
		session.AddFlash(c, "error", "Article introuvable dans le panier.")
	}
	c.Redirect(http.StatusFound, "/cart/")
}

//
// 🛒 GET /cart/
//
func ViewCart(c *gin.Context) {
	ctx := c.Request.Context()
	sid := session.CurrentID(c)

	lookup := func(productID string) (models.Product, bool) {
		p, err := store.GetProduct(productID)
		return p, err == nil
	}

	var groups []cart.Grouped
	if userID := c.GetString("user_id"); userID != "" {
		items, err := (store.CartStore{}).Items(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
			return
		}
		groups = cart.FromItems(items, session.Overrides(ctx, sid))
	} else {
		groups = cart.Group(session.Cart(ctx, sid))
	}

	lines, total := cart.Lines(groups, lookup)
	c.JSON(http.StatusOK, gin.H{
		"cart_items": lines,
		"total":      total,
		"messages":   session.PopFlashes(c),
	})
}
