package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/andika-123140096/website-desa/internal/pkg/constants"
)

const (
	tableDusun     = "dusun"
	tableSuratPBB  = "surat_pbb"
	tableAduan     = "aduan"
	tableTanggapan = "tanggapan"
	tablePengguna  = "pengguna"
	tablePerangkat = "perangkat_desa"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
