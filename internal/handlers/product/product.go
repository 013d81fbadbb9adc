package product

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mycart_back_end/internal/cache"
	"mycart_back_end/internal/database"
	"mycart_back_end/internal/models"
	"mycart_back_end/internal/services"
	"mycart_back_end/internal/session"
	"mycart_back_end/internal/store"
)

// catalog retourne le catalogue complet, cache Redis d'abord.
func catalog(ctx context.Context) ([]models.Product, error) {
	if products, ok := cache.CachedProducts(ctx); ok {
		return products, nil
	}

	products, err := store.ListProducts()
	if err != nil {
		return nil, err
	}
	cache.StoreProducts(ctx, products)
	return products, nil
}

// GET /
func Home(c *gin.Context) {
	products, err := catalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"messages": session.PopFlashes(c),
	})
}

// GET /items/mobiles/?page= — listing paginé, 6 par page, plus récents d'abord
func Mobiles(c *gin.Context) {
	products, err := catalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue"})
		return
	}

	sortNewest(products)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageItems, pageNum, numPages := paginate(products, page, mobilesPerPage)

	c.JSON(http.StatusOK, gin.H{
		"products":  pageItems,
		"page":      pageNum,
		"num_pages": numPages,
		"messages":  session.PopFlashes(c),
	})
}

// GET /product/:id/
func Detail(c *gin.Context) {
	p, err := store.GetProduct(c.Param("id"))
	if err != nil {
		session.AddFlash(c, "error", "Produit introuvable.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":  p,
		"messages": session.PopFlashes(c),
	})
}

// GET /sell/ — page statique de l'espace vendeur (connecté uniquement)
func Sell(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":     "sell",
		"messages": session.PopFlashes(c),
	})
}

// ================== CHEMIN ADMIN / SEED ==================

// POST /api/admin/products — seul chemin de création : le storefront ne
// modifie jamais le catalogue.
func Create(c *gin.Context) {
	var p models.Product

	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'name' est obligatoire"})
		return
	}

	// ✅ Image déposée par le seed dans MinIO : URL signée via le client
	if p.ImageURL == "" && database.MinIO != nil {
		signed, err := services.SignedProductImageURL(c.Request.Context(), p.Name, 7*24*time.Hour)
		if err != nil {
			log.Printf("⚠️ URL signée MinIO indisponible pour %s: %v", p.Name, err)
		} else {
			p.ImageURL = signed
		}
	}

	if err := store.InsertProduct(&p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)

	cache.InvalidateProducts(c.Request.Context())
	c.JSON(http.StatusCreated, p)
}

// POST /api/admin/products/:id/image — dépose l'image (multipart "image")
// dans MinIO et met à jour l'URL du produit
func UploadImage(c *gin.Context) {
	p, err := store.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ 'image' manquant"})
		return
	}

	ctx := c.Request.Context()
	imageURL, err := services.UploadProductImage(ctx, p.ID.String(), file)
	if err != nil {
		log.Printf("❌ Erreur upload image produit %s: %v", p.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image"})
		return
	}

	if err := store.UpdateProductImage(p.ID.String(), imageURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	p.ImageURL = imageURL
	go services.IndexProduct(p)
	cache.InvalidateProducts(ctx)
	c.JSON(http.StatusOK, gin.H{"image_url": imageURL})
}

// DELETE /api/admin/products/:id — refusé tant que des lignes de commande
// référencent le produit
func Delete(c *gin.Context) {
	err := store.DeleteProduct(c.Param("id"))
	if errors.Is(err, store.ErrProductReferenced) {
		c.JSON(http.StatusConflict, gin.H{"error": "Produit référencé par des commandes existantes"})
		return
	}
	if err != nil {
		log.Printf("❌ Erreur suppression produit: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}

	cache.InvalidateProducts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
