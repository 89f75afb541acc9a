package entities

import "time"

// TransaksiStatusSuccess is the only status this system ever writes.
const TransaksiStatusSuccess = "success"

// Transaksi mirrors one record of the remote "transaksi" collection.
// Package name, quota and price are denormalized copies taken at purchase time.
type Transaksi struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"userId"`
	PaketID   string    `json:"paketId"`
	NamaPaket string    `json:"namaPaket"`
	Kuota     string    `json:"kuota"`
	Harga     int64     `json:"harga"`
	Tanggal   time.Time `json:"tanggal"`
	Status    string    `json:"status"`
	NomorHP   string    `json:"nomorHP"`
}
