package transaksi

import (
	"context"
	"log"
	"time"

	"digital-kuota-backend/domain"
	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils/mailing"
	"digital-kuota-backend/internal/utils/restdb"
	"digital-kuota-backend/pkg/paket"
	"digital-kuota-backend/pkg/session"
	"digital-kuota-backend/pkg/user"
)

type (
	TransaksiService interface {
		Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResponse, error)
		GetHistory(ctx context.Context) (*domain.TransaksiHistoryResponse, error)
		DeleteTransaksi(ctx context.Context, id string) error
	}

	// ReceiptSender delivers the post-purchase receipt mail. Nil disables it.
	ReceiptSender func(toEmail string, receipt mailing.PurchaseReceipt) error

	transaksiService struct {
		transaksiRepository TransaksiRepository
		paketRepository     paket.PaketRepository
		userRepository      user.UserRepository
		sessionStore        session.Store
		sendReceipt         ReceiptSender
	}
)

func NewTransaksiService(
	transaksiRepository TransaksiRepository,
	paketRepository paket.PaketRepository,
	userRepository user.UserRepository,
	sessionStore session.Store,
	sendReceipt ReceiptSender,
) TransaksiService {
	return &transaksiService{
		transaksiRepository: transaksiRepository,
		paketRepository:     paketRepository,
		userRepository:      userRepository,
		sessionStore:        sessionStore,
		sendReceipt:         sendReceipt,
	}
}

// Purchase performs the two-call buy sequence: record the transaksi, then debit
// the saldo. The affordability check is client-side only; the store re-validates
// nothing, and there is no rollback between the two writes. When the saldo
// patch fails after the transaksi landed, the caller gets a
// *domain.PartialPurchaseError naming the orphaned record instead of a bare
// store error.
func (s *transaksiService) Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResponse, error) {
	actingUser, ok := s.sessionStore.Get()
	if !ok {
		return nil, domain.ErrSessionEmpty
	}

	selectedPaket, err := s.paketRepository.GetByID(ctx, req.PaketID)
	if err != nil {
		if restdb.IsNotFound(err) {
			return nil, domain.ErrPaketNotFound
		}
		return nil, err
	}

	if actingUser.Saldo < selectedPaket.Harga {
		return nil, domain.ErrInsufficientSaldo
	}

	created, err := s.transaksiRepository.Create(ctx, &entities.Transaksi{
		UserID:    actingUser.ID,
		PaketID:   selectedPaket.ID,
		NamaPaket: selectedPaket.NamaPaket,
		Kuota:     selectedPaket.Kuota,
		Harga:     selectedPaket.Harga,
		Tanggal:   time.Now(),
		Status:    entities.TransaksiStatusSuccess,
		NomorHP:   actingUser.NomorHP,
	})
	if err != nil {
		return nil, err
	}

	newSaldo := actingUser.Saldo - selectedPaket.Harga
	updatedUser, err := s.userRepository.UpdateSaldo(ctx, actingUser.ID, newSaldo)
	if err != nil {
		return nil, &domain.PartialPurchaseError{TransaksiID: created.ID, Err: err}
	}

	if err := s.sessionStore.Set(updatedUser); err != nil {
		return nil, err
	}

	if s.sendReceipt != nil {
		receiptErr := s.sendReceipt(updatedUser.Email, mailing.PurchaseReceipt{
			Nama:      updatedUser.Nama,
			NamaPaket: selectedPaket.NamaPaket,
			Kuota:     selectedPaket.Kuota,
			MasaAktif: selectedPaket.MasaAktif,
			Harga:     selectedPaket.Harga,
			SaldoSisa: updatedUser.Saldo,
			Tanggal:   created.Tanggal,
		})
		if receiptErr != nil {
			log.Printf("failed to send purchase receipt for transaksi %s: %v", created.ID, receiptErr)
		}
	}

	return &domain.PurchaseResponse{
		Transaksi: toTransaksiResponse(created),
		User:      *user.ToUserResponse(updatedUser),
	}, nil
}

func (s *transaksiService) GetHistory(ctx context.Context) (*domain.TransaksiHistoryResponse, error) {
	actingUser, ok := s.sessionStore.Get()
	if !ok {
		return nil, domain.ErrSessionEmpty
	}

	records, err := s.transaksiRepository.GetByUser(ctx, actingUser.ID)
	if err != nil {
		return nil, err
	}

	var totalPengeluaran int64
	responses := make([]domain.TransaksiResponse, 0, len(records))
	for i := range records {
		totalPengeluaran += records[i].Harga
		responses = append(responses, toTransaksiResponse(&records[i]))
	}

	return &domain.TransaksiHistoryResponse{
		Transaksi:        responses,
		TotalTransaksi:   len(responses),
		TotalPengeluaran: totalPengeluaran,
	}, nil
}

// DeleteTransaksi removes the record only. Saldo is untouched: deleting a
// transaksi is not a refund. Ownership is whatever the caller says it is; the
// store is never asked. A second delete of the same id gets
// domain.ErrTransaksiNotFound, which is terminal, not retryable.
func (s *transaksiService) DeleteTransaksi(ctx context.Context, id string) error {
	if err := s.transaksiRepository.Delete(ctx, id); err != nil {
		if restdb.IsNotFound(err) {
			return domain.ErrTransaksiNotFound
		}
		return err
	}
	return nil
}

func toTransaksiResponse(transaksi *entities.Transaksi) domain.TransaksiResponse {
	return domain.TransaksiResponse{
		ID:        transaksi.ID,
		UserID:    transaksi.UserID,
		PaketID:   transaksi.PaketID,
		NamaPaket: transaksi.NamaPaket,
		Kuota:     transaksi.Kuota,
		Harga:     transaksi.Harga,
		Tanggal:   transaksi.Tanggal,
		Status:    transaksi.Status,
		NomorHP:   transaksi.NomorHP,
	}
}
