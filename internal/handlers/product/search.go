package product

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"mycart_back_end/internal/database"
	"mycart_back_end/internal/models"
	"mycart_back_end/internal/services"
	"mycart_back_end/internal/session"
)

// matchName retourne le premier produit dont le nom contient q, sans tenir
// compte de la casse. Les autres correspondances sont ignorées, sans
// classement.
func matchName(products []models.Product, q string) (models.Product, bool) {
	qLower := strings.ToLower(q)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), qLower) {
			return p, true
		}
	}
	return models.Product{}, false
}

// GET /search/?q= — toute correspondance redirige vers la page d'achat du
// premier résultat ; aucune → message et retour au listing.
func Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		session.AddFlash(c, "error", "Veuillez saisir un terme de recherche.")
		c.Redirect(http.StatusFound, "/items/mobiles/")
		return
	}

	// Elasticsearch d'abord ; repli sur le scan mémoire si absent ou vide
	if database.Elastic != nil {
		if p, ok := services.SearchFirstProduct(q); ok {
			redirectToBuy(c, p)
			return
		}
	}

	products, err := catalog(c.Request.Context())
	if err == nil {
		if p, ok := matchName(products, q); ok {
			redirectToBuy(c, p)
			return
		}
	}

	session.AddFlash(c, "error", "Article introuvable")
	c.Redirect(http.StatusFound, "/items/mobiles/")
}

// redirectToBuy envoie vers la page Buy Now du produit, en faisant suivre
// son image comme override d'affichage quand elle existe.
func redirectToBuy(c *gin.Context, p models.Product) {
	target := "/buy/" + p.ID.String() + "/"
	if p.ImageURL != "" {
		target += "?img=" + url.QueryEscape(p.ImageURL)
	}
	c.Redirect(http.StatusFound, target)
}
