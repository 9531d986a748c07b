package main

import (
	"Gin_postgres_redis_share_it/app"
	"Gin_postgres_redis_share_it/config"
	"Gin_postgres_redis_share_it/routes"
	"log"
	"os"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
