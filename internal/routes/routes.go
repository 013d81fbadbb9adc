package routes

import (
	"mycart_back_end/internal/handlers/product"
	"mycart_back_end/internal/handlers/user"
	"mycart_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// L'identité JWT est lue sur toutes les routes, sans jamais bloquer
	r.Use(middleware.AuthOptional())

	// Comptes
	r.GET("/signup/", user.SignupPage)
	r.POST("/signup/", user.Signup)
	r.GET("/login/", user.LoginPage)
	r.POST("/login/", user.Login)
	r.GET("/logout/", user.Logout)
	r.POST("/logout/", user.Logout)

	// Réinitialisation du mot de passe
	r.GET("/forgot-password/", user.ForgotPasswordPage)
	r.POST("/forgot-password/", user.ForgotPassword)
	r.GET("/reset/:token/", user.ResetPasswordPage)
	r.POST("/reset/:token/", user.ResetPassword)

	// Catalogue
	r.GET("/", product.Home)
	r.GET("/items/mobiles/", product.Mobiles)
	r.GET("/product/:id/", product.Detail)
	r.GET("/search/", product.Search)

	// Panier
	r.GET("/add-to-cart/:id/", user.AddToCart)
	r.GET("/remove-from-cart/:id/", user.RemoveFromCart)
	r.GET("/cart/", user.ViewCart)

	// Achat direct
	r.GET("/buy/:id/", user.BuyNow)
	r.GET("/address/", user.Address)
	r.POST("/place-order/", user.PlaceOrder)

	// Confirmation de commande
	r.GET("/order-qr/:order_id/", user.OrderQR)
	r.GET("/order-qr/:order_id/image", user.OrderQRImage)
	r.GET("/thanks/", user.Thanks)
	r.GET("/qr-scan/", user.QRScanner)
	r.GET("/qr-result/", user.QRResult)

	// Espace connecté
	auth := r.Group("/", middleware.AuthRequired())
	auth.GET("/order/", user.MyOrders)
	auth.GET("/order/invoice/:order_id/", user.OrderInvoice)
	auth.GET("/sell/", product.Sell)

	// Administration du catalogue
	admin := r.Group("/api/admin")
	admin.POST("/products", product.Create)
	admin.POST("/products/:id/image", product.UploadImage)
	admin.DELETE("/products/:id", product.Delete)
}
