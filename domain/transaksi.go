package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessPurchase        = "paket purchased successfully"
	MessageSuccessGetTransaksi    = "transaksi retrieved successfully"
	MessageSuccessDeleteTransaksi = "transaksi deleted successfully"

	MessageFailedPurchase        = "failed to purchase paket"
	MessageFailedGetTransaksi    = "failed to retrieve transaksi"
	MessageFailedDeleteTransaksi = "failed to delete transaksi"

	ErrInsufficientSaldo = errors.New("saldo not enough")
	ErrTransaksiNotFound = errors.New("transaksi not found")
)

// PartialPurchaseError reports a purchase that recorded its transaksi but failed
// to debit the saldo afterwards. The store is left inconsistent: the transaksi
// record exists and the balance was never charged. Callers can pick this apart
// from an ordinary store failure and at least log the orphaned record.
type PartialPurchaseError struct {
	TransaksiID string
	Err         error
}

func (e *PartialPurchaseError) Error() string {
	return fmt.Sprintf(
		"purchase recorded transaksi %s but saldo update failed: %v",
		e.TransaksiID, e.Err,
	)
}

func (e *PartialPurchaseError) Unwrap() error {
	return e.Err
}

type (
	PurchaseRequest struct {
		PaketID string `json:"paket_id" validate:"required"`
	}

	PurchaseResponse struct {
		Transaksi TransaksiResponse `json:"transaksi"`
		User      UserResponse      `json:"user"`
	}

	TransaksiResponse struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		PaketID   string    `json:"paket_id"`
		NamaPaket string    `json:"nama_paket"`
		Kuota     string    `json:"kuota"`
		Harga     int64     `json:"harga"`
		Tanggal   time.Time `json:"tanggal"`
		Status    string    `json:"status"`
		NomorHP   string    `json:"nomor_hp"`
	}

	TransaksiHistoryResponse struct {
		Transaksi        []TransaksiResponse `json:"transaksi"`
		TotalTransaksi   int                 `json:"total_transaksi"`
		TotalPengeluaran int64               `json:"total_pengeluaran"`
	}
)
