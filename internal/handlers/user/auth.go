package user

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mycart_back_end/internal/cart"
	"mycart_back_end/internal/models"
	"mycart_back_end/internal/session"
	"mycart_back_end/internal/store"
	"mycart_back_end/internal/utils"
)

// ================== INSCRIPTION ==================

func SignupPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":     "signup",
		"messages": session.PopFlashes(c),
	})
}

// POST /signup/
func Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	phone := c.PostForm("phone")
	password := c.PostForm("password")

	if email == "" || phone == "" {
		session.AddFlash(c, "error", "Email et numéro de téléphone sont obligatoires.")
		c.Redirect(http.StatusFound, "/signup/")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		session.AddFlash(c, "error", "Erreur lors de la création du compte.")
		c.Redirect(http.StatusFound, "/signup/")
		return
	}

	u := models.User{
		Username: username,
		Email:    email,
		Phone:    phone,
		Password: hash,
	}

	switch err := store.CreateUser(&u); {
	case errors.Is(err, store.ErrEmailTaken):
		session.AddFlash(c, "error", "Email déjà enregistré !")
		c.Redirect(http.StatusFound, "/signup/")
		return
	case errors.Is(err, store.ErrPhoneTaken):
		session.AddFlash(c, "error", "Numéro de téléphone déjà enregistré !")
		c.Redirect(http.StatusFound, "/signup/")
		return
	case err != nil:
		log.Printf("❌ Erreur création utilisateur: %v", err)
		session.AddFlash(c, "error", "Erreur lors de la création du compte.")
		c.Redirect(http.StatusFound, "/signup/")
		return
	}

	session.AddFlash(c, "success", "Compte créé avec succès ! Veuillez vous connecter.")
	c.Redirect(http.StatusFound, "/login/")
}

// ================== CONNEXION ==================

func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":     "login",
		"messages": session.PopFlashes(c),
	})
}

// POST /login/
func Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	u, err := store.GetUserByEmail(email)
	if err != nil {
		session.AddFlash(c, "error", "Aucun compte trouvé. Veuillez d'abord vous inscrire.")
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	valid, err := utils.VerifyPassword(password, u.Password)
	if err != nil || !valid {
		session.AddFlash(c, "error", "Mot de passe incorrect !")
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	token, err := utils.GenerateJWT(u)
	if err != nil {
		session.AddFlash(c, "error", "Erreur lors de la connexion.")
		c.Redirect(http.StatusFound, "/login/")
		return
	}
	// les flux du storefront naviguent par redirections : le token voyage en
	// cookie plutôt que dans une réponse JSON
	c.SetCookie("token", token, int((24 * time.Hour).Seconds()), "/", "", false, true)

	// Fusion du panier anonyme dans le panier persistant. Une erreur ici ne
	// doit jamais empêcher le login d'aboutir.
	ctx := c.Request.Context()
	sid := session.CurrentID(c)
	if entries := session.Cart(ctx, sid); len(entries) > 0 {
		merged := cart.Merge(ctx, store.CartStore{}, u.ID, entries)
		session.ClearCart(ctx, sid)
		log.Printf("✅ %d entrée(s) du panier de session fusionnée(s) pour %s", merged, u.Email)
	}

	if next := c.Query("next"); next != "" && strings.HasPrefix(next, "/") {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ================== DÉCONNEXION ==================

func Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	session.AddFlash(c, "success", "Déconnexion réussie.")
	c.Redirect(http.StatusFound, "/")
}
