package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/store/xpgx"
)

type PenggunaStore interface {
	CreatePengguna(ctx context.Context, pengguna *domain.Pengguna) error
	GetPenggunaByUsername(ctx context.Context, username string) (*domain.Pengguna, error)
	GetPenggunaByID(ctx context.Context, id string) (*domain.Pengguna, error)
	CreatePerangkat(ctx context.Context, perangkat *domain.PerangkatDesa) error
	GetPerangkatByID(ctx context.Context, id string) (*domain.PerangkatDesa, error)
	ListPerangkatByDusun(ctx context.Context, dusunID int64) ([]domain.PerangkatInfo, error)
	// DeletePerangkat removes both the perangkat binding and the
	// underlying account.
	DeletePerangkat(ctx context.Context, id string) error
}

var penggunaColumns = []string{
	"id", "username", "password_hash", "nama_lengkap", "role", "waktu_dibuat",
}

func (s *store) CreatePengguna(ctx context.Context, pengguna *domain.Pengguna) error {
	pengguna.WaktuDibuat = s.now()

	query := builder().Insert(tablePengguna).
		Columns(penggunaColumns...).
		Values(pengguna.ID, pengguna.Username, pengguna.PasswordHash,
			pengguna.NamaLengkap, pengguna.Role, pengguna.WaktuDibuat)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetPenggunaByUsername(ctx context.Context, username string) (*domain.Pengguna, error) {
	query := builder().Select(penggunaColumns...).
		From(tablePengguna).
		Where(sq.Eq{"username": username})

	selected, err := xpgx.Getx[domain.Pengguna](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetPenggunaByID(ctx context.Context, id string) (*domain.Pengguna, error) {
	query := builder().Select(penggunaColumns...).
		From(tablePengguna).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Pengguna](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CreatePerangkat(ctx context.Context, perangkat *domain.PerangkatDesa) error {
	perangkat.WaktuDibuat = s.now()

	query := builder().Insert(tablePerangkat).
		Columns("id", "id_dusun", "jabatan", "waktu_dibuat").
		Values(perangkat.ID, perangkat.IDDusun, perangkat.Jabatan, perangkat.WaktuDibuat)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetPerangkatByID(ctx context.Context, id string) (*domain.PerangkatDesa, error) {
	query := builder().Select("id", "id_dusun", "jabatan", "waktu_dibuat").
		From(tablePerangkat).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.PerangkatDesa](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListPerangkatByDusun(ctx context.Context, dusunID int64) ([]domain.PerangkatInfo, error) {
	query := builder().
		Select("pd.id", "pd.id_dusun", "pd.jabatan", "p.username", "p.nama_lengkap").
		From(tablePerangkat + " pd").
		Join(tablePengguna + " p ON p.id = pd.id").
		Where(sq.Eq{"pd.id_dusun": dusunID}).
		OrderBy("pd.jabatan", "p.nama_lengkap")

	listed, err := xpgx.Selectx[domain.PerangkatInfo](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listed, nil
}

func (s *store) DeletePerangkat(ctx context.Context, id string) error {
	if _, err := s.pool.Execx(ctx, builder().Delete(tablePerangkat).Where(sq.Eq{"id": id})); err != nil {
		return wrapErr(err)
	}
	if _, err := s.pool.Execx(ctx, builder().Delete(tablePengguna).Where(sq.Eq{"id": id})); err != nil {
		return wrapErr(err)
	}

	return nil
}
