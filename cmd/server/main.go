package main

import (
	"log"
	"os"

	"mycart_back_end/internal/config"
	"mycart_back_end/internal/database"
	"mycart_back_end/internal/routes"
	"mycart_back_end/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}
	session.Init(sessionSecret, database.Redis)

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur mycart lancé sur le port", port)
	r.Run(":" + port)
}
