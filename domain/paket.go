package domain

import "errors"

// Catalog categories as stored in the paketData collection.
const (
	KategoriHarian    = "harian"
	KategoriMingguan  = "mingguan"
	KategoriBulanan   = "bulanan"
	KategoriUnlimited = "unlimited"
	KategoriGaming    = "gaming"
	KategoriStreaming = "streaming"
)

var (
	MessageSuccessGetPaket       = "paket retrieved successfully"
	MessageSuccessGetPaketDetail = "paket detail retrieved successfully"

	MessageFailedGetPaket       = "failed to retrieve paket"
	MessageFailedGetPaketDetail = "failed to retrieve paket detail"

	ErrPaketNotFound = errors.New("paket not found")
)

type PaketResponse struct {
	ID        string `json:"id"`
	NamaPaket string `json:"nama_paket"`
	Kategori  string `json:"kategori"`
	Kuota     string `json:"kuota"`
	MasaAktif string `json:"masa_aktif"`
	Deskripsi string `json:"deskripsi"`
	Harga     int64  `json:"harga"`
}
