package mailing

import (
	"fmt"
	"time"
)

// PurchaseReceipt holds the fields rendered into the receipt email body.
type PurchaseReceipt struct {
	Nama      string
	NamaPaket string
	Kuota     string
	MasaAktif string
	Harga     int64
	SaldoSisa int64
	Tanggal   time.Time
}

const receiptSubject = "Pembelian Paket Data Berhasil"

func SendPurchaseReceipt(toEmail string, receipt PurchaseReceipt) error {
	body := fmt.Sprintf(`
		<h2>Pembelian Berhasil!</h2>
		<p>Halo %s, paket data kamu sudah aktif.</p>
		<table>
			<tr><td>Paket</td><td>%s</td></tr>
			<tr><td>Kuota</td><td>%s</td></tr>
			<tr><td>Masa Aktif</td><td>%s</td></tr>
			<tr><td>Harga</td><td>Rp %d</td></tr>
			<tr><td>Sisa Saldo</td><td>Rp %d</td></tr>
			<tr><td>Tanggal</td><td>%s</td></tr>
		</table>
		<p>Terima kasih telah berbelanja di Digital Kuota.</p>`,
		receipt.Nama,
		receipt.NamaPaket,
		receipt.Kuota,
		receipt.MasaAktif,
		receipt.Harga,
		receipt.SaldoSisa,
		receipt.Tanggal.Format("02 Jan 2006 15:04"),
	)

	return SendMail(toEmail, receiptSubject, body)
}
