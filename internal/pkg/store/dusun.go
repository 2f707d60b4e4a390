package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/store/xpgx"
)

type UpdateDusunOpts struct {
	NamaDusun     *string
	StatusDataPBB *domain.StatusDataPBB
}

type DusunStore interface {
	// CreateDusun inserts a dusun with id = max(existing)+1 (1 when the
	// table is empty) and returns the assigned id.
	CreateDusun(ctx context.Context, nama string) (int64, error)
	ListDusun(ctx context.Context) ([]domain.DusunDetail, error)
	GetDusunByID(ctx context.Context, id int64) (*domain.DusunDetail, error)
	// UpdateDusun applies the non-nil fields and always refreshes
	// waktu_diperbarui, even when both fields are nil.
	UpdateDusun(ctx context.Context, id int64, opts UpdateDusunOpts) error
	DeleteDusun(ctx context.Context, id int64) error
}

var dusunDetailColumns = []string{
	"d.id", "d.nama_dusun", "d.status_data_pbb", "d.waktu_dibuat", "d.waktu_diperbarui",
	"p.nama_lengkap AS nama_kepala_dusun",
}

func (s *store) CreateDusun(ctx context.Context, nama string) (int64, error) {
	now := s.now()

	// id assignment and the max() read happen in one statement, so two
	// concurrent creates cannot observe the same maximum.
	query := builder().Insert(tableDusun).
		Columns("id", "nama_dusun", "status_data_pbb", "waktu_dibuat", "waktu_diperbarui").
		Select(sq.Select().
			Column(sq.Expr("COALESCE(MAX(id), 0) + 1")).
			Column(sq.Expr("?", nama)).
			Column(sq.Expr("?", domain.StatusDataBelumLengkap)).
			Column(sq.Expr("?", now)).
			Column(sq.Expr("?", now)).
			From(tableDusun)).
		Suffix("RETURNING id")

	id, err := xpgx.Scalarx[int64](ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}

func dusunDetailQuery() sq.SelectBuilder {
	return builder().Select(dusunDetailColumns...).
		From(tableDusun + " d").
		LeftJoin(tablePerangkat + " pd ON pd.id_dusun = d.id AND pd.jabatan = 'kepala_dusun'").
		LeftJoin(tablePengguna + " p ON p.id = pd.id")
}

func (s *store) ListDusun(ctx context.Context) ([]domain.DusunDetail, error) {
	query := dusunDetailQuery().OrderBy("d.id")

	listed, err := xpgx.Selectx[domain.DusunDetail](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listed, nil
}

func (s *store) GetDusunByID(ctx context.Context, id int64) (*domain.DusunDetail, error) {
	query := dusunDetailQuery().Where(sq.Eq{"d.id": id})

	selected, err := xpgx.Getx[domain.DusunDetail](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateDusun(ctx context.Context, id int64, opts UpdateDusunOpts) error {
	query := builder().Update(tableDusun).
		Set("waktu_diperbarui", s.now()).
		Where(sq.Eq{"id": id})

	if opts.NamaDusun != nil {
		query = query.Set("nama_dusun", *opts.NamaDusun)
	}
	if opts.StatusDataPBB != nil {
		query = query.Set("status_data_pbb", *opts.StatusDataPBB)
	}

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) DeleteDusun(ctx context.Context, id int64) error {
	query := builder().Delete(tableDusun).Where(sq.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
