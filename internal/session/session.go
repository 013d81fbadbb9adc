package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"mycart_back_end/internal/cart"
)

// La session navigateur porte l'état implicite de la boutique : panier
// anonyme, overrides d'affichage, cible d'achat, dernière commande, messages
// flash. Le cookie (gorilla/sessions) ne contient qu'un id de session ;
// l'état lui-même vit dans Redis en JSON, comme les paniers du reste du code.

const (
	cookieName = "mycart_session"
	TTL        = 30 * 24 * time.Hour // 30 jours
)

var (
	cookies *sessions.CookieStore
	rdb     *redis.Client
)

func Init(secret string, client *redis.Client) {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(int(TTL.Seconds()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	cookies = store
	rdb = client
}

// CurrentID retourne l'id de session du navigateur, en le créant au besoin.
func CurrentID(c *gin.Context) string {
	sess, _ := cookies.Get(c.Request, cookieName)
	if sid, ok := sess.Values["sid"].(string); ok && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	sess.Values["sid"] = sid
	_ = sess.Save(c.Request, c.Writer)
	return sid
}

func cartKey(sid string) string      { return "sess:cart:" + sid }
func overridesKey(sid string) string { return "sess:overrides:" + sid }
func buyKey(sid string) string       { return "sess:buy_id:" + sid }
func lastOrderKey(sid string) string { return "sess:last_order:" + sid }
func flashKey(sid string) string     { return "sess:flash:" + sid }

// ================== PANIER ANONYME ==================

func Cart(ctx context.Context, sid string) []cart.Entry {
	data, err := rdb.Get(ctx, cartKey(sid)).Result()
	if err != nil || data == "" {
		return nil
	}
	var entries []cart.Entry
	if json.Unmarshal([]byte(data), &entries) != nil {
		return nil
	}
	return entries
}

func SaveCart(ctx context.Context, sid string, entries []cart.Entry) {
	jsonData, _ := json.Marshal(entries)
	rdb.Set(ctx, cartKey(sid), jsonData, TTL)
}

// ClearCart supprime la clé du panier de session (après fusion au login).
func ClearCart(ctx context.Context, sid string) {
	rdb.Del(ctx, cartKey(sid))
}

// ================== OVERRIDES D'AFFICHAGE ==================

// Les overrides du chemin authentifié sont tenus ici, jamais persistés sur la
// ligne de panier : ils ne survivent que le temps de la session.

func Overrides(ctx context.Context, sid string) map[string]cart.Override {
	overrides := map[string]cart.Override{}
	data, err := rdb.Get(ctx, overridesKey(sid)).Result()
	if err == nil && data != "" {
		_ = json.Unmarshal([]byte(data), &overrides)
	}
	return overrides
}

func SetOverride(ctx context.Context, sid, productID string, o cart.Override) {
	overrides := Overrides(ctx, sid)
	overrides[productID] = o
	jsonData, _ := json.Marshal(overrides)
	rdb.Set(ctx, overridesKey(sid), jsonData, TTL)
}

// ================== CIBLE D'ACHAT (Buy Now) ==================

func SetBuyTarget(ctx context.Context, sid, productID string) {
	rdb.Set(ctx, buyKey(sid), productID, TTL)
}

func BuyTarget(ctx context.Context, sid string) (string, bool) {
	productID, err := rdb.Get(ctx, buyKey(sid)).Result()
	return productID, err == nil && productID != ""
}

// ================== DERNIÈRE COMMANDE ==================

type LastOrder struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
}

func SetLastOrder(ctx context.Context, sid string, lo LastOrder) {
	jsonData, _ := json.Marshal(lo)
	rdb.Set(ctx, lastOrderKey(sid), jsonData, TTL)
}

// ================== MESSAGES FLASH ==================

type Flash struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// AddFlash empile un message à afficher sur la prochaine page.
func AddFlash(c *gin.Context, level, text string) {
	sid := CurrentID(c)
	jsonData, _ := json.Marshal(Flash{Level: level, Text: text})
	rdb.RPush(c.Request.Context(), flashKey(sid), jsonData)
	rdb.Expire(c.Request.Context(), flashKey(sid), TTL)
}

// PopFlashes dépile tous les messages en attente pour la session.
func PopFlashes(c *gin.Context) []Flash {
	sid := CurrentID(c)
	ctx := c.Request.Context()
	raw, err := rdb.LRange(ctx, flashKey(sid), 0, -1).Result()
	if err != nil || len(raw) == 0 {
		return []Flash{}
	}
	rdb.Del(ctx, flashKey(sid))

	flashes := make([]Flash, 0, len(raw))
	for _, r := range raw {
		var f Flash
		if json.Unmarshal([]byte(r), &f) == nil {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
