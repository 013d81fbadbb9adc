package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// BaseURL retourne l'URL publique du serveur, utilisée pour construire les
// liens absolus (lien de réinitialisation, lien de confirmation du QR).
func BaseURL() string {
	v := os.Getenv("BASE_URL")
	if v == "" {
		v = "http://localhost:8080"
	}
	return v
}
