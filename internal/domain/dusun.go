package domain

import "time"

type StatusDataPBB string

const (
	StatusDataBelumLengkap StatusDataPBB = "belum_lengkap"
	StatusDataSudahLengkap StatusDataPBB = "sudah_lengkap"
)

func (s StatusDataPBB) Valid() bool {
	return s == StatusDataBelumLengkap || s == StatusDataSudahLengkap
}

// Dusun ids are assigned by the application as max(existing)+1, not by
// a database sequence, so deleting the highest id makes it reusable.
type Dusun struct {
	ID              int64         `db:"id" json:"id"`
	NamaDusun       string        `db:"nama_dusun" json:"nama_dusun"`
	StatusDataPBB   StatusDataPBB `db:"status_data_pbb" json:"status_data_pbb"`
	WaktuDibuat     time.Time     `db:"waktu_dibuat" json:"waktu_dibuat"`
	WaktuDiperbarui time.Time     `db:"waktu_diperbarui" json:"waktu_diperbarui"`
}

// DusunDetail is a dusun row joined with the display name of its
// current kepala dusun, when one has registered.
type DusunDetail struct {
	Dusun
	NamaKepalaDusun *string `db:"nama_kepala_dusun" json:"nama_kepala_dusun"`
}

// DusunBaru is returned once from dusun creation. This response is the
// initial handoff of the kepala-dusun token; both tokens stay
// retrievable through the token lookup afterwards.
type DusunBaru struct {
	DusunID          int64  `json:"dusunId"`
	TokenKepalaDusun string `json:"tokenKepalaDusun"`
	TokenKetuaRT     string `json:"tokenKetuaRT"`
}

// DusunTokens reports the stored registration tokens; a nil field means
// no token was ever issued for that jabatan.
type DusunTokens struct {
	TokenKepalaDusun *string `json:"tokenKepalaDusun"`
	TokenKetuaRT     *string `json:"tokenKetuaRT"`
}
