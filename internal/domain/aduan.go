package domain

import "time"

type StatusAduan string

const (
	StatusAduanMenunggu StatusAduan = "menunggu"
	StatusAduanDiproses StatusAduan = "diproses"
	StatusAduanSelesai  StatusAduan = "selesai"
	StatusAduanDitolak  StatusAduan = "ditolak"
)

func (s StatusAduan) Valid() bool {
	switch s {
	case StatusAduanMenunggu, StatusAduanDiproses, StatusAduanSelesai, StatusAduanDitolak:
		return true
	}
	return false
}

type KategoriAduan string

const (
	KategoriInfrastruktur KategoriAduan = "Infrastruktur"
	KategoriLingkungan    KategoriAduan = "Lingkungan"
	KategoriPelayanan     KategoriAduan = "Pelayanan"
	KategoriKeamanan      KategoriAduan = "Keamanan"
	KategoriLainnya       KategoriAduan = "Lainnya"
)

func (k KategoriAduan) Valid() bool {
	switch k {
	case KategoriInfrastruktur, KategoriLingkungan, KategoriPelayanan,
		KategoriKeamanan, KategoriLainnya:
		return true
	}
	return false
}

type Aduan struct {
	ID              string        `db:"id" json:"id"`
	IDPengguna      string        `db:"id_pengguna" json:"id_pengguna"`
	Judul           string        `db:"judul" json:"judul"`
	Kategori        KategoriAduan `db:"kategori" json:"kategori"`
	Isi             string        `db:"isi" json:"isi_aduan"`
	Status          StatusAduan   `db:"status" json:"status"`
	WaktuDibuat     time.Time     `db:"waktu_dibuat" json:"waktu_dibuat"`
	WaktuDiperbarui time.Time     `db:"waktu_diperbarui" json:"waktu_diperbarui"`
}

// AduanInfo is an aduan joined with the reporter's display name, for
// the admin dashboard list.
type AduanInfo struct {
	Aduan
	NamaPelapor string `db:"nama_pelapor" json:"nama_pelapor"`
}

type Tanggapan struct {
	ID           string    `db:"id" json:"id"`
	IDAduan      string    `db:"id_aduan" json:"id_aduan"`
	IDPengguna   string    `db:"id_pengguna" json:"id_pengguna"`
	NamaLengkap  string    `db:"nama_lengkap" json:"nama_lengkap"`
	IsiTanggapan string    `db:"isi_tanggapan" json:"isi_tanggapan"`
	WaktuDibuat  time.Time `db:"waktu_dibuat" json:"waktu_dibuat"`
}

// AduanDetail is the single-aduan view with its tanggapan thread.
type AduanDetail struct {
	AduanInfo
	Tanggapan []Tanggapan `json:"tanggapan"`
}
