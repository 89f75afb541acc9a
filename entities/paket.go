package entities

// PaketData mirrors one record of the remote "paketData" collection.
// The catalog is read-only from this service's point of view.
type PaketData struct {
	ID        string `json:"id,omitempty"`
	NamaPaket string `json:"namaPaket"`
	Kategori  string `json:"kategori"`
	Kuota     string `json:"kuota"`
	MasaAktif string `json:"masa_aktif"`
	Deskripsi string `json:"deskripsi"`
	Harga     int64  `json:"harga"`
}
