package transaksi_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"digital-kuota-backend/domain"
	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils/mailing"
	"digital-kuota-backend/internal/utils/restdb"
	"digital-kuota-backend/internal/utils/restdb/restdbtest"
	"digital-kuota-backend/pkg/paket"
	"digital-kuota-backend/pkg/session"
	"digital-kuota-backend/pkg/transaksi"
	"digital-kuota-backend/pkg/user"

	"github.com/stretchr/testify/suite"
)

type TransaksiServiceTestSuite struct {
	suite.Suite
	server       *restdbtest.Server
	sessionStore session.Store
	service      transaksi.TransaksiService
	receipts     []mailing.PurchaseReceipt
}

func TestTransaksiServiceSuite(t *testing.T) {
	suite.Run(t, new(TransaksiServiceTestSuite))
}

func (s *TransaksiServiceTestSuite) SetupTest() {
	s.server = restdbtest.NewServer()
	s.receipts = nil

	store := restdb.New(s.server.URL)
	s.sessionStore = session.NewFileStore(filepath.Join(s.T().TempDir(), "session.json"))

	s.service = transaksi.NewTransaksiService(
		transaksi.NewTransaksiRepository(store),
		paket.NewPaketRepository(store),
		user.NewUserRepository(store),
		s.sessionStore,
		func(toEmail string, receipt mailing.PurchaseReceipt) error {
			s.receipts = append(s.receipts, receipt)
			return nil
		},
	)
}

func (s *TransaksiServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *TransaksiServiceTestSuite) seedUserSession(saldo int64) *entities.User {
	u := &entities.User{
		ID:      "user-1",
		Nama:    "Budi",
		Email:   "budi@example.com",
		NomorHP: "081234567890",
		Saldo:   saldo,
	}
	s.server.Seed(restdb.CollectionUsers, u)
	s.Require().NoError(s.sessionStore.Set(u))
	return u
}

func (s *TransaksiServiceTestSuite) seedPaket(harga int64) *entities.PaketData {
	p := &entities.PaketData{
		ID:        "paket-1",
		NamaPaket: "Bulanan 15GB",
		Kategori:  "bulanan",
		Kuota:     "15GB",
		MasaAktif: "30 hari",
		Harga:     harga,
	}
	s.server.Seed(restdb.CollectionPaketData, p)
	return p
}

// saldo 50rb, harga 30rb: purchase lands, saldo becomes 20rb, exactly one
// success transaksi exists.
func (s *TransaksiServiceTestSuite) TestPurchase() {
	s.seedUserSession(50_000)
	s.seedPaket(30_000)

	resp, err := s.service.Purchase(context.Background(), domain.PurchaseRequest{PaketID: "paket-1"})
	s.Require().NoError(err)

	s.Equal(int64(20_000), resp.User.Saldo)
	s.Equal("success", resp.Transaksi.Status)
	s.Equal(int64(30_000), resp.Transaksi.Harga)
	s.Equal("081234567890", resp.Transaksi.NomorHP)
	s.NotEmpty(resp.Transaksi.ID)

	records := s.server.Records(restdb.CollectionTransaksi)
	s.Require().Len(records, 1)
	s.Equal("user-1", records[0]["userId"])
	s.Equal("success", records[0]["status"])

	userRecord := s.server.Record(restdb.CollectionUsers, "user-1")
	s.Equal(float64(20_000), userRecord["saldo"])

	current, ok := s.sessionStore.Get()
	s.Require().True(ok)
	s.Equal(int64(20_000), current.Saldo, "session refreshed with the store's user")

	s.Require().Len(s.receipts, 1)
	s.Equal(int64(20_000), s.receipts[0].SaldoSisa)
}

// saldo 10rb, harga 30rb: rejected before any store write.
func (s *TransaksiServiceTestSuite) TestPurchaseInsufficientSaldo() {
	s.seedUserSession(10_000)
	s.seedPaket(30_000)

	_, err := s.service.Purchase(context.Background(), domain.PurchaseRequest{PaketID: "paket-1"})
	s.Require().ErrorIs(err, domain.ErrInsufficientSaldo)

	s.Empty(s.server.Records(restdb.CollectionTransaksi), "no transaksi recorded")
	s.Equal(float64(10_000), s.server.Record(restdb.CollectionUsers, "user-1")["saldo"], "saldo untouched")
	s.Empty(s.receipts)
}

func (s *TransaksiServiceTestSuite) TestPurchasePaketNotFound() {
	s.seedUserSession(50_000)

	_, err := s.service.Purchase(context.Background(), domain.PurchaseRequest{PaketID: "nope"})
	s.Require().ErrorIs(err, domain.ErrPaketNotFound)
	s.Empty(s.server.Records(restdb.CollectionTransaksi))
}

func (s *TransaksiServiceTestSuite) TestPurchaseWithoutSession() {
	s.seedPaket(30_000)

	_, err := s.service.Purchase(context.Background(), domain.PurchaseRequest{PaketID: "paket-1"})
	s.Require().ErrorIs(err, domain.ErrSessionEmpty)
}

// Step 1 fails: nothing happened, plain store error, consistent state.
func (s *TransaksiServiceTestSuite) TestPurchaseCreateFails() {
	s.seedUserSession(50_000)
	s.seedPaket(30_000)
	s.server.FailCreate[restdb.CollectionTransaksi] = true

	_, err := s.service.Purchase(context.Background(), domain.PurchaseRequest{PaketID: "paket-1"})
	s.Require().Error(err)

	var partialErr *domain.PartialPurchaseError
	s.False(errors.As(err, &partialErr), "a step-1 failure is not a partial purchase")

	s.Empty(s.server.Records(restdb.CollectionTransaksi))
	s.Equal(float64(50_000), s.server.Record(restdb.CollectionUsers, "user-1")["saldo"])
}

// Step 2 fails after step 1 landed: the orphaned transaksi stays, saldo is
// never debited, and the error names the orphan.
func (s *TransaksiServiceTestSuite) TestPurchasePartialFailure() {
	s.seedUserSession(50_000)
	s.seedPaket(30_000)
	s.server.FailPatch[restdb.CollectionUsers] = true

	_, err := s.service.Purchase(context.Background(), domain.PurchaseRequest{PaketID: "paket-1"})
	s.Require().Error(err)

	var partialErr *domain.PartialPurchaseError
	s.Require().ErrorAs(err, &partialErr)

	records := s.server.Records(restdb.CollectionTransaksi)
	s.Require().Len(records, 1, "orphan transaksi persisted")
	s.Equal(records[0]["id"], partialErr.TransaksiID)

	s.Equal(float64(50_000), s.server.Record(restdb.CollectionUsers, "user-1")["saldo"], "saldo never debited")

	current, ok := s.sessionStore.Get()
	s.Require().True(ok)
	s.Equal(int64(50_000), current.Saldo, "session not refreshed on failure")
	s.Empty(s.receipts)
}

func (s *TransaksiServiceTestSuite) TestGetHistory() {
	s.seedUserSession(50_000)
	s.server.Seed(restdb.CollectionTransaksi, &entities.Transaksi{UserID: "user-1", NamaPaket: "A", Harga: 30_000, Status: "success"})
	s.server.Seed(restdb.CollectionTransaksi, &entities.Transaksi{UserID: "user-1", NamaPaket: "B", Harga: 25_000, Status: "success"})
	s.server.Seed(restdb.CollectionTransaksi, &entities.Transaksi{UserID: "user-2", NamaPaket: "C", Harga: 99_000, Status: "success"})

	resp, err := s.service.GetHistory(context.Background())
	s.Require().NoError(err)

	s.Equal(2, resp.TotalTransaksi)
	s.Equal(int64(55_000), resp.TotalPengeluaran)
	s.Len(resp.Transaksi, 2)
}

// Deleting a transaksi is record removal only, never a refund.
func (s *TransaksiServiceTestSuite) TestDeleteTransaksi() {
	s.seedUserSession(50_000)
	seeded := s.server.Seed(restdb.CollectionTransaksi, &entities.Transaksi{UserID: "user-1", Harga: 30_000})
	id := seeded["id"].(string)

	s.Require().NoError(s.service.DeleteTransaksi(context.Background(), id))
	s.Empty(s.server.Records(restdb.CollectionTransaksi))
	s.Equal(float64(50_000), s.server.Record(restdb.CollectionUsers, "user-1")["saldo"], "saldo unchanged by removal")

	err := s.service.DeleteTransaksi(context.Background(), id)
	s.Require().ErrorIs(err, domain.ErrTransaksiNotFound, "second delete is terminal not-found")
}

func (s *TransaksiServiceTestSuite) TestDeleteUnknownTransaksi() {
	err := s.service.DeleteTransaksi(context.Background(), "missing")
	s.Require().ErrorIs(err, domain.ErrTransaksiNotFound)
}
