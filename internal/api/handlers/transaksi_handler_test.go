package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"digital-kuota-backend/domain"
	"digital-kuota-backend/internal/api/handlers"
	"digital-kuota-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransaksiService returns a canned error from Purchase.
type stubTransaksiService struct {
	purchaseErr error
	deleteErr   error
}

func (s *stubTransaksiService) Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResponse, error) {
	if s.purchaseErr != nil {
		return nil, s.purchaseErr
	}
	return &domain.PurchaseResponse{}, nil
}

func (s *stubTransaksiService) GetHistory(ctx context.Context) (*domain.TransaksiHistoryResponse, error) {
	return &domain.TransaksiHistoryResponse{}, nil
}

func (s *stubTransaksiService) DeleteTransaksi(ctx context.Context, id string) error {
	return s.deleteErr
}

func newTransaksiApp(service *stubTransaksiService) *fiber.App {
	utils.InitValidator()
	handler := handlers.NewTransaksiHandler(service, utils.Validate)

	app := fiber.New()
	app.Post("/transaksi", handler.Purchase)
	app.Delete("/transaksi/:id", handler.DeleteTransaksi)
	return app
}

func postPurchase(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	body, err := json.Marshal(domain.PurchaseRequest{PaketID: "paket-1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/transaksi", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestPurchaseStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"success", nil, fiber.StatusCreated},
		{"insufficient saldo", domain.ErrInsufficientSaldo, fiber.StatusBadRequest},
		{"paket not found", domain.ErrPaketNotFound, fiber.StatusNotFound},
		{"saldo patch failed after record", &domain.PartialPurchaseError{TransaksiID: "trx-1", Err: assert.AnError}, fiber.StatusInternalServerError},
		{"no active session", domain.ErrSessionEmpty, fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTransaksiApp(&stubTransaksiService{purchaseErr: tc.serviceErr})
			resp := postPurchase(t, app)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestDeleteTransaksiNotFound(t *testing.T) {
	app := newTransaksiApp(&stubTransaksiService{deleteErr: domain.ErrTransaksiNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/transaksi/trx-404", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
