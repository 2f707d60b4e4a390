package dto

import "github.com/shopspring/decimal"

type CreateSuratRequest struct {
	// DusunID is required for superadmin callers; kepala dusun and
	// ketua RT are always bound to their own dusun.
	DusunID              *int64          `json:"dusun_id"`
	NomorObjekPajak      string          `json:"nomor_objek_pajak" validate:"required"`
	NamaWajibPajak       string          `json:"nama_wajib_pajak" validate:"required"`
	AlamatWajibPajak     string          `json:"alamat_wajib_pajak" validate:"required"`
	AlamatObjekPajak     string          `json:"alamat_objek_pajak" validate:"required"`
	LuasTanah            decimal.Decimal `json:"luas_tanah"`
	LuasBangunan         decimal.Decimal `json:"luas_bangunan"`
	NilaiJualObjekPajak  decimal.Decimal `json:"nilai_jual_objek_pajak"`
	JumlahPajakTerhutang decimal.Decimal `json:"jumlah_pajak_terhutang"`
	TahunPajak           int             `json:"tahun_pajak" validate:"required"`
	StatusPembayaran     string          `json:"status_pembayaran" validate:"required"`
}

type UpdateSuratRequest struct {
	NomorObjekPajak      *string          `json:"nomor_objek_pajak"`
	NamaWajibPajak       *string          `json:"nama_wajib_pajak"`
	AlamatWajibPajak     *string          `json:"alamat_wajib_pajak"`
	AlamatObjekPajak     *string          `json:"alamat_objek_pajak"`
	LuasTanah            *decimal.Decimal `json:"luas_tanah"`
	LuasBangunan         *decimal.Decimal `json:"luas_bangunan"`
	NilaiJualObjekPajak  *decimal.Decimal `json:"nilai_jual_objek_pajak"`
	JumlahPajakTerhutang *decimal.Decimal `json:"jumlah_pajak_terhutang"`
	TahunPajak           *int             `json:"tahun_pajak"`
	StatusPembayaran     *string          `json:"status_pembayaran"`
}
