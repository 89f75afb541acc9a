package main

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils"
	"digital-kuota-backend/internal/utils/restdb"

	"github.com/google/uuid"
)

// Seeds the remote mock store with the demo account and the paket catalog.
// Safe to re-run: records are skipped when the collection already has them.
func main() {
	utils.LoadConfig()
	store := restdb.New(utils.GetConfig("STORE_BASE_URL"))
	ctx := context.Background()

	if err := seedUsers(ctx, store); err != nil {
		log.Fatalf("Error seeding users: %v", err)
	}
	if err := seedPaket(ctx, store); err != nil {
		log.Fatalf("Error seeding paket data: %v", err)
	}

	fmt.Println("Store seeding complete")
}

func seedUsers(ctx context.Context, store *restdb.Client) error {
	demo := entities.User{
		ID:       uuid.New().String(),
		Nama:     "Customer Demo",
		Email:    "customer@example.com",
		Password: "password123",
		NomorHP:  "081234567890",
		Alamat:   "Jl. Merdeka No. 1, Jakarta",
		Saldo:    100_000,
	}

	filter := url.Values{}
	filter.Set("email", demo.Email)

	var existing []entities.User
	if err := store.List(ctx, restdb.CollectionUsers, filter, &existing); err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return store.Create(ctx, restdb.CollectionUsers, &demo, &entities.User{})
}

func seedPaket(ctx context.Context, store *restdb.Client) error {
	var existing []entities.PaketData
	if err := store.List(ctx, restdb.CollectionPaketData, nil, &existing); err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	catalog := []entities.PaketData{
		{NamaPaket: "Harian Hemat 1GB", Kategori: "harian", Kuota: "1GB", MasaAktif: "1 hari", Deskripsi: "Paket harian untuk kebutuhan ringan", Harga: 5_000},
		{NamaPaket: "Harian Max 3GB", Kategori: "harian", Kuota: "3GB", MasaAktif: "1 hari", Deskripsi: "Paket harian untuk streaming singkat", Harga: 10_000},
		{NamaPaket: "Mingguan 5GB", Kategori: "mingguan", Kuota: "5GB", MasaAktif: "7 hari", Deskripsi: "Paket seminggu untuk pemakaian normal", Harga: 25_000},
		{NamaPaket: "Bulanan 15GB", Kategori: "bulanan", Kuota: "15GB", MasaAktif: "30 hari", Deskripsi: "Paket bulanan serba guna", Harga: 60_000},
		{NamaPaket: "Bulanan 30GB", Kategori: "bulanan", Kuota: "30GB", MasaAktif: "30 hari", Deskripsi: "Paket bulanan untuk keluarga", Harga: 100_000},
		{NamaPaket: "Unlimited Nonstop", Kategori: "unlimited", Kuota: "Unlimited", MasaAktif: "30 hari", Deskripsi: "Internetan tanpa batas kuota", Harga: 150_000},
		{NamaPaket: "Gaming Pro 10GB", Kategori: "gaming", Kuota: "10GB", MasaAktif: "30 hari", Deskripsi: "Kuota khusus game online, ping stabil", Harga: 50_000},
		{NamaPaket: "Streaming 20GB", Kategori: "streaming", Kuota: "20GB", MasaAktif: "30 hari", Deskripsi: "Kuota khusus aplikasi streaming", Harga: 65_000},
	}

	for i := range catalog {
		catalog[i].ID = uuid.New().String()
		if err := store.Create(ctx, restdb.CollectionPaketData, &catalog[i], &entities.PaketData{}); err != nil {
			return err
		}
	}
	return nil
}
