package dto

type CreateDusunRequest struct {
	NamaDusun string `json:"nama_dusun"`
}

// UpdateDusunRequest is a partial update; nil fields are left
// untouched. An empty update still refreshes waktu_diperbarui.
type UpdateDusunRequest struct {
	NamaDusun     *string `json:"nama_dusun"`
	StatusDataPBB *string `json:"status_data_pbb"`
}
