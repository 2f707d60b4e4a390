package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3"`
	Password    string `json:"password" validate:"required,min=6"`
	NamaLengkap string `json:"nama_lengkap" validate:"required"`
}

// RegisterPerangkatRequest self-registers a kepala dusun or ketua RT.
// The token decides the jabatan: it must equal one of the two tokens
// issued for the dusun.
type RegisterPerangkatRequest struct {
	Username    string `json:"username" validate:"required,min=3"`
	Password    string `json:"password" validate:"required,min=6"`
	NamaLengkap string `json:"nama_lengkap" validate:"required"`
	DusunID     int64  `json:"dusun_id" validate:"required"`
	Token       string `json:"token" validate:"required"`
}
