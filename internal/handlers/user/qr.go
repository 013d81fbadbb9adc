package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"mycart_back_end/internal/checkout"
	"mycart_back_end/internal/config"
	"mycart_back_end/internal/session"
)

//
// 🔳 GET /order-qr/:order_id/ — page de confirmation : le QR encode le lien
// de remerciement. qr_src pointe vers le générateur public, qr_png vers le
// rendu local.
//
func OrderQR(c *gin.Context) {
	orderID := c.Param("order_id")
	link := checkout.ConfirmationLink(config.BaseURL(), orderID)

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"link":     link,
		"qr_src":   checkout.ExternalQRImageURL(link),
		"qr_png":   "/order-qr/" + orderID + "/image",
		"messages": session.PopFlashes(c),
	})
}

// GET /order-qr/:order_id/image — même QR, généré localement en PNG
func OrderQRImage(c *gin.Context) {
	orderID := c.Param("order_id")
	link := checkout.ConfirmationLink(config.BaseURL(), orderID)

	png, err := qrcode.Encode(link, qrcode.Medium, 300)
	if err != nil {
		session.AddFlash(c, "error", "Erreur lors de la génération du QR code.")
		c.Redirect(http.StatusFound, "/order-qr/"+orderID+"/")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GET /thanks/?order=
func Thanks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":     "thanks",
		"order_id": c.Query("order"),
		"messages": session.PopFlashes(c),
	})
}

// GET /qr-scan/
func QRScanner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":     "qr_scanner",
		"messages": session.PopFlashes(c),
	})
}

// GET /qr-result/?data=
func QRResult(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":     "qr_result",
		"data":     c.Query("data"),
		"messages": session.PopFlashes(c),
	})
}
