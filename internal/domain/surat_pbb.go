package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StatusPembayaran string

const (
	StatusBelumBayar              StatusPembayaran = "belum_bayar"
	StatusBayarSendiriDiBank      StatusPembayaran = "bayar_sendiri_di_bank"
	StatusBayarLewatPerangkatDesa StatusPembayaran = "bayar_lewat_perangkat_desa"
	StatusPindahRumah             StatusPembayaran = "pindah_rumah"
	StatusTidakDiketahui          StatusPembayaran = "tidak_diketahui"
)

func (s StatusPembayaran) Valid() bool {
	switch s {
	case StatusBelumBayar, StatusBayarSendiriDiBank, StatusBayarLewatPerangkatDesa,
		StatusPindahRumah, StatusTidakDiketahui:
		return true
	}
	return false
}

// Dibayar reports whether the status counts as paid for aggregation.
func (s StatusPembayaran) Dibayar() bool {
	return s == StatusBayarSendiriDiBank || s == StatusBayarLewatPerangkatDesa
}

// StatusDibayar lists the statuses counted as paid, in the order the
// aggregation predicates use them.
var StatusDibayar = []StatusPembayaran{StatusBayarSendiriDiBank, StatusBayarLewatPerangkatDesa}

type SuratPBB struct {
	ID                   string           `db:"id" json:"id"`
	IDDusun              int64            `db:"id_dusun" json:"id_dusun"`
	NomorObjekPajak      string           `db:"nomor_objek_pajak" json:"nomor_objek_pajak"`
	NamaWajibPajak       string           `db:"nama_wajib_pajak" json:"nama_wajib_pajak"`
	AlamatWajibPajak     string           `db:"alamat_wajib_pajak" json:"alamat_wajib_pajak"`
	AlamatObjekPajak     string           `db:"alamat_objek_pajak" json:"alamat_objek_pajak"`
	LuasTanah            decimal.Decimal  `db:"luas_tanah" json:"luas_tanah"`
	LuasBangunan         decimal.Decimal  `db:"luas_bangunan" json:"luas_bangunan"`
	NilaiJualObjekPajak  decimal.Decimal  `db:"nilai_jual_objek_pajak" json:"nilai_jual_objek_pajak"`
	JumlahPajakTerhutang decimal.Decimal  `db:"jumlah_pajak_terhutang" json:"jumlah_pajak_terhutang"`
	TahunPajak           int              `db:"tahun_pajak" json:"tahun_pajak"`
	StatusPembayaran     StatusPembayaran `db:"status_pembayaran" json:"status_pembayaran"`
	WaktuDibuat          time.Time        `db:"waktu_dibuat" json:"waktu_dibuat"`
	WaktuDiperbarui      time.Time        `db:"waktu_diperbarui" json:"waktu_diperbarui"`
}
