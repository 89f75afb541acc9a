package entities

// User mirrors one record of the remote "users" collection. Field names follow
// the store's JSON keys, so a record round-trips without remapping.
type User struct {
	ID       string `json:"id,omitempty"`
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Password string `json:"password"`
	NomorHP  string `json:"nomorHP"`
	Alamat   string `json:"alamat"`
	Saldo    int64  `json:"saldo"`
	Foto     string `json:"foto,omitempty"`
}
