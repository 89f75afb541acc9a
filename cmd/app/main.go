package main

import (
	"log"

	"digital-kuota-backend/cmd/config"
	"digital-kuota-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	store, err := config.ConnectStore()
	if err != nil {
		log.Fatalf("failed to connect remote store: %v", err)
	}

	app, err := config.NewApp(store)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
