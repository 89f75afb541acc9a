package config

import (
	"context"
	"log"
	"net/url"
	"time"

	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils"
	"digital-kuota-backend/internal/utils/restdb"
)

// ConnectStore builds the remote store client and checks the store answers.
// The reachability probe is a plain list on users; a dead store is fatal at
// boot, never mid-request.
func ConnectStore() (*restdb.Client, error) {
	baseURL := utils.GetConfig("STORE_BASE_URL")
	store := restdb.New(baseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var users []entities.User
	if err := store.List(ctx, restdb.CollectionUsers, url.Values{}, &users); err != nil {
		log.Fatalf("Remote store connection failed: %v", err)
		return nil, err
	}
	return store, nil
}
