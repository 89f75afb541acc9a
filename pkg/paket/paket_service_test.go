package paket_test

import (
	"context"
	"testing"

	"digital-kuota-backend/domain"
	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils/restdb"
	"digital-kuota-backend/internal/utils/restdb/restdbtest"
	"digital-kuota-backend/pkg/paket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*restdbtest.Server, paket.PaketService) {
	t.Helper()
	server := restdbtest.NewServer()
	t.Cleanup(server.Close)

	service := paket.NewPaketService(paket.NewPaketRepository(restdb.New(server.URL)))
	return server, service
}

func seedCatalog(server *restdbtest.Server) {
	server.Seed(restdb.CollectionPaketData, &entities.PaketData{ID: "p1", NamaPaket: "Harian Hemat 1GB", Kategori: "harian", Deskripsi: "paket ringan", Harga: 5_000})
	server.Seed(restdb.CollectionPaketData, &entities.PaketData{ID: "p2", NamaPaket: "Bulanan 15GB", Kategori: "bulanan", Deskripsi: "serba guna", Harga: 60_000})
	server.Seed(restdb.CollectionPaketData, &entities.PaketData{ID: "p3", NamaPaket: "Gaming Pro 10GB", Kategori: "gaming", Deskripsi: "ping stabil", Harga: 50_000})
}

func TestGetAllPaket(t *testing.T) {
	server, service := newService(t)
	seedCatalog(server)

	all, err := service.GetAllPaket(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// "semua" behaves like no filter
	all, err = service.GetAllPaket(context.Background(), "semua", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetAllPaketByKategori(t *testing.T) {
	server, service := newService(t)
	seedCatalog(server)

	gaming, err := service.GetAllPaket(context.Background(), "gaming", "")
	require.NoError(t, err)
	require.Len(t, gaming, 1)
	assert.Equal(t, "Gaming Pro 10GB", gaming[0].NamaPaket)
}

func TestGetAllPaketSearch(t *testing.T) {
	server, service := newService(t)
	seedCatalog(server)

	// matches name, case-insensitive
	found, err := service.GetAllPaket(context.Background(), "", "bulanan")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "p2", found[0].ID)

	// matches description too
	found, err = service.GetAllPaket(context.Background(), "", "ping")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "p3", found[0].ID)

	found, err = service.GetAllPaket(context.Background(), "harian", "bulanan")
	require.NoError(t, err)
	assert.Empty(t, found, "kategori and search combine")
}

func TestGetPaketByID(t *testing.T) {
	server, service := newService(t)
	seedCatalog(server)

	p, err := service.GetPaketByID(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, int64(60_000), p.Harga)

	_, err = service.GetPaketByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrPaketNotFound)
}
