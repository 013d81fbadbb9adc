package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"mycart_back_end/internal/session"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

// tokenFromRequest cherche le JWT dans le header Authorization, sinon dans le
// cookie posé au login (les flux du storefront naviguent par redirections).
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

func parseUserID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("token invalide")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("claims invalides")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id manquant")
	}
	return userID, nil
}

// AuthOptional identifie l'utilisateur quand un token valide est présent,
// sans jamais bloquer : le panier et le checkout servent aussi les anonymes.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if userID, err := parseUserID(tokenString); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}

// AuthRequired exige un utilisateur connecté ; sinon message flash et
// redirection vers la page de login, jamais de page d'erreur dure.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			session.AddFlash(c, "error", "Veuillez vous connecter pour continuer.")
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}

		userID, err := parseUserID(tokenString)
		if err != nil {
			session.AddFlash(c, "error", "Session expirée, veuillez vous reconnecter.")
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
