package domain

import "github.com/shopspring/decimal"

func init() {
	// Pajak totals are plain JSON numbers on the wire, not quoted
	// strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// StatusCount is one row of the per-status breakdown.
type StatusCount struct {
	Status StatusPembayaran `db:"status_pembayaran" json:"status_pembayaran"`
	Jumlah int64            `db:"jumlah" json:"jumlah"`
}

// StatistikDusun is the on-demand aggregate for one dusun. Empty
// aggregates surface as zero values, never as nulls.
type StatistikDusun struct {
	Dusun               DusunDetail     `json:"dusun"`
	TotalPajakTerhutang decimal.Decimal `json:"total_pajak_terhutang"`
	TotalPajakDibayar   decimal.Decimal `json:"total_pajak_dibayar"`
	TotalSurat          int64           `json:"total_surat"`
	StatusPembayaran    []StatusCount   `json:"statusPembayaran"`
}

// LaporanDusun is one row of the system-wide report: dusun identity
// plus its totals, without the status breakdown.
type LaporanDusun struct {
	ID                  int64           `db:"id" json:"id"`
	NamaDusun           string          `db:"nama_dusun" json:"nama_dusun"`
	StatusDataPBB       StatusDataPBB   `db:"status_data_pbb" json:"status_data_pbb"`
	NamaKepalaDusun     *string         `db:"nama_kepala_dusun" json:"nama_kepala_dusun"`
	TotalPajakTerhutang decimal.Decimal `db:"total_pajak_terhutang" json:"total_pajak_terhutang"`
	TotalPajakDibayar   decimal.Decimal `db:"total_pajak_dibayar" json:"total_pajak_dibayar"`
	TotalSurat          int64           `db:"total_surat" json:"total_surat"`
}

// Laporan is the superadmin whole-system report.
type Laporan struct {
	StatistikPerDusun              []LaporanDusun  `json:"statistik_per_dusun"`
	TotalPajakTerhutangKeseluruhan decimal.Decimal `json:"total_pajak_terhutang_keseluruhan"`
	TotalPajakDibayarKeseluruhan   decimal.Decimal `json:"total_pajak_dibayar_keseluruhan"`
}
