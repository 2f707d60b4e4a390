package constants

import "net/http"

// CodedError is an error carrying the HTTP status code it should be
// reported with. The api error handler unwraps to the first CodedError
// in the chain; anything else becomes a generic 500.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Code() int {
	return e.code
}

func (e *CodedError) Error() string {
	return e.msg
}

var (
	ErrDBNotFound = NewCodedError(http.StatusNotFound, "Data tidak ditemukan")

	ErrUnauthorized     = NewCodedError(http.StatusUnauthorized, "Tidak terautentikasi")
	ErrInvalidAuthToken = NewCodedError(http.StatusUnauthorized, "Token tidak valid")
	ErrForbidden        = NewCodedError(http.StatusForbidden, "Akses ditolak")

	ErrNamaDusunKosong         = NewCodedError(http.StatusBadRequest, "Nama dusun harus diisi")
	ErrStatusDataPBBTidakValid = NewCodedError(http.StatusBadRequest, "Status data PBB tidak valid")
	ErrDusunIDTidakValid       = NewCodedError(http.StatusBadRequest, "ID dusun tidak valid")
	ErrDusunNotFound           = NewCodedError(http.StatusNotFound, "Dusun tidak ditemukan")
	ErrDusunWajibDipilih       = NewCodedError(http.StatusBadRequest, "Dusun harus dipilih")

	ErrLaporanForbidden = NewCodedError(http.StatusForbidden, "Hanya superadmin yang dapat mengakses laporan")

	ErrStatusPembayaranTidakValid = NewCodedError(http.StatusBadRequest, "Status pembayaran tidak valid")
	ErrSuratNotFound              = NewCodedError(http.StatusNotFound, "Surat PBB tidak ditemukan")

	ErrAduanKosong           = NewCodedError(http.StatusBadRequest, "Judul dan isi aduan harus diisi")
	ErrKategoriTidakValid    = NewCodedError(http.StatusBadRequest, "Kategori aduan tidak valid")
	ErrStatusAduanTidakValid = NewCodedError(http.StatusBadRequest, "Status aduan tidak valid")
	ErrAduanNotFound         = NewCodedError(http.StatusNotFound, "Aduan tidak ditemukan")
	ErrTanggapanKosong       = NewCodedError(http.StatusBadRequest, "Isi tanggapan harus diisi")

	ErrLoginGagal                = NewCodedError(http.StatusUnauthorized, "Username atau password salah")
	ErrUsernameTerpakai          = NewCodedError(http.StatusBadRequest, "Username sudah digunakan")
	ErrTokenRegistrasiTidakValid = NewCodedError(http.StatusBadRequest, "Token registrasi tidak valid")
	ErrJabatanSudahTerisi        = NewCodedError(http.StatusBadRequest, "Jabatan untuk dusun ini sudah terisi")
	ErrPenggunaNotFound          = NewCodedError(http.StatusNotFound, "Pengguna tidak ditemukan")
	ErrPerangkatNotFound         = NewCodedError(http.StatusNotFound, "Perangkat desa tidak ditemukan")

	ErrBadRequestBody = NewCodedError(http.StatusBadRequest, "Format request tidak valid")
)
