package utils

import (
	"encoding/base64"
	"errors"

	"github.com/google/uuid"
)

// Le lien de réinitialisation encode l'id utilisateur en base64 urlsafe. Cet
// encodage est réversible, donc forgeable : il ne vaut que comme format de
// lien. La validité réelle du token est contrôlée côté serveur (entrée Redis
// posée au moment de la demande, TTL 1 h, usage unique).

func EncodeResetToken(userID string) string {
	return base64.URLEncoding.EncodeToString([]byte(userID))
}

func DecodeResetToken(token string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", errors.New("token illisible")
	}
	userID := string(raw)
	if _, err := uuid.Parse(userID); err != nil {
		return "", errors.New("token invalide")
	}
	return userID, nil
}
