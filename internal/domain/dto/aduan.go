package dto

type CreateAduanRequest struct {
	Judul    string `json:"judul"`
	Kategori string `json:"kategori"`
	Isi      string `json:"isi"`
}

type UpdateStatusAduanRequest struct {
	Status string `json:"status" validate:"required"`
}

type TanggapanRequest struct {
	IsiTanggapan string `json:"isi_tanggapan"`
}
