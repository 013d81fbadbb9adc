package user

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mycart_back_end/internal/config"
	"mycart_back_end/internal/database"
	"mycart_back_end/internal/session"
	"mycart_back_end/internal/store"
	"mycart_back_end/internal/utils"
)

// ================== MOT DE PASSE OUBLIÉ (par téléphone) ==================

func ForgotPasswordPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":     "forgot_password",
		"messages": session.PopFlashes(c),
	})
}

// POST /forgot-password/
func ForgotPassword(c *gin.Context) {
	phone := c.PostForm("phone")

	u, err := store.GetUserByPhone(phone)
	if err != nil {
		session.AddFlash(c, "error", "Numéro de téléphone introuvable !")
		c.Redirect(http.StatusFound, "/forgot-password/")
		return
	}

	token := utils.EncodeResetToken(u.ID)

	// le token n'est honoré que s'il correspond à cette entrée (1 h, usage unique)
	ctx := c.Request.Context()
	if err := database.RedisClient.Set(ctx, "reset_token:"+token, u.ID, 1*time.Hour).Err(); err != nil {
		log.Printf("❌ Erreur sauvegarde token reset: %v", err)
		session.AddFlash(c, "error", "Erreur lors de la génération du lien.")
		c.Redirect(http.StatusFound, "/forgot-password/")
		return
	}

	link := config.BaseURL() + "/reset/" + token + "/"
	go utils.SendResetLink(u.Email, u.Username, link)

	session.AddFlash(c, "success", "Lien de réinitialisation envoyé ! Consultez la console.")
	c.Redirect(http.StatusFound, "/forgot-password/")
}

// validateResetToken décode le token et vérifie qu'il est toujours actif.
func validateResetToken(c *gin.Context, token string) (string, bool) {
	userID, err := utils.DecodeResetToken(token)
	if err != nil {
		return "", false
	}

	stored, err := database.RedisClient.Get(c.Request.Context(), "reset_token:"+token).Result()
	if err != nil || stored != userID {
		return "", false
	}
	return userID, true
}

// GET /reset/:token/
func ResetPasswordPage(c *gin.Context) {
	token := c.Param("token")

	userID, ok := validateResetToken(c, token)
	if !ok {
		session.AddFlash(c, "error", "Lien invalide ou expiré.")
		c.Redirect(http.StatusFound, "/forgot-password/")
		return
	}

	u, err := store.GetUserByID(userID)
	if err != nil {
		session.AddFlash(c, "error", "Lien invalide ou expiré.")
		c.Redirect(http.StatusFound, "/forgot-password/")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     "reset_password",
		"email":    u.Email,
		"messages": session.PopFlashes(c),
	})
}

// POST /reset/:token/
func ResetPassword(c *gin.Context) {
	token := c.Param("token")

	userID, ok := validateResetToken(c, token)
	if !ok {
		session.AddFlash(c, "error", "Lien invalide ou expiré.")
		c.Redirect(http.StatusFound, "/forgot-password/")
		return
	}

	hash, err := utils.HashPassword(c.PostForm("password"))
	if err != nil {
		session.AddFlash(c, "error", "Erreur lors de la réinitialisation.")
		c.Redirect(http.StatusFound, "/forgot-password/")
		return
	}

	if err := store.UpdatePassword(userID, hash); err != nil {
		log.Printf("❌ Erreur mise à jour mot de passe: %v", err)
		session.AddFlash(c, "error", "Erreur lors de la réinitialisation.")
		c.Redirect(http.StatusFound, "/forgot-password/")
		return
	}

	// usage unique
	database.RedisClient.Del(c.Request.Context(), "reset_token:"+token)

	session.AddFlash(c, "success", "Mot de passe mis à jour ! Vous pouvez maintenant vous connecter.")
	c.Redirect(http.StatusFound, "/login/")
}
