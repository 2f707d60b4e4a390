package domain

import "time"

type Role string

const (
	RoleMasyarakat  Role = "masyarakat"
	RoleSuperadmin  Role = "superadmin"
	RoleKepalaDusun Role = "kepala_dusun"
	RoleKetuaRT     Role = "ketua_rt"
)

// Jabatan is the position a perangkat desa holds inside a dusun. The
// two values double as the role of the matching account.
type Jabatan string

const (
	JabatanKepalaDusun Jabatan = "kepala_dusun"
	JabatanKetuaRT     Jabatan = "ketua_rt"
)

type Pengguna struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	NamaLengkap  string    `db:"nama_lengkap" json:"nama_lengkap"`
	Role         Role      `db:"role" json:"role"`
	WaktuDibuat  time.Time `db:"waktu_dibuat" json:"waktu_dibuat"`
}

// PerangkatDesa binds a pengguna account to a dusun. Its id equals the
// pengguna id.
type PerangkatDesa struct {
	ID          string    `db:"id" json:"id"`
	IDDusun     int64     `db:"id_dusun" json:"id_dusun"`
	Jabatan     Jabatan   `db:"jabatan" json:"jabatan"`
	WaktuDibuat time.Time `db:"waktu_dibuat" json:"waktu_dibuat"`
}

// PerangkatInfo is the list row surfaced to the superadmin dashboard:
// the perangkat joined with its account.
type PerangkatInfo struct {
	ID          string  `db:"id" json:"id"`
	IDDusun     int64   `db:"id_dusun" json:"id_dusun"`
	Jabatan     Jabatan `db:"jabatan" json:"jabatan"`
	Username    string  `db:"username" json:"username"`
	NamaLengkap string  `db:"nama_lengkap" json:"nama_lengkap"`
}
