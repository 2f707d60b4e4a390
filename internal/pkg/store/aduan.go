package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/store/xpgx"
)

type AduanStore interface {
	CreateAduan(ctx context.Context, aduan *domain.Aduan) error
	ListAduan(ctx context.Context) ([]domain.AduanInfo, error)
	ListAduanByPengguna(ctx context.Context, penggunaID string) ([]domain.Aduan, error)
	GetAduanByID(ctx context.Context, id string) (*domain.AduanInfo, error)
	UpdateStatusAduan(ctx context.Context, id string, status domain.StatusAduan) error
	CreateTanggapan(ctx context.Context, tanggapan *domain.Tanggapan) error
	ListTanggapanByAduan(ctx context.Context, aduanID string) ([]domain.Tanggapan, error)
}

var aduanColumns = []string{
	"id", "id_pengguna", "judul", "kategori", "isi", "status",
	"waktu_dibuat", "waktu_diperbarui",
}

func (s *store) CreateAduan(ctx context.Context, aduan *domain.Aduan) error {
	now := s.now()
	aduan.WaktuDibuat = now
	aduan.WaktuDiperbarui = now

	query := builder().Insert(tableAduan).
		Columns(aduanColumns...).
		Values(aduan.ID, aduan.IDPengguna, aduan.Judul, aduan.Kategori, aduan.Isi,
			aduan.Status, aduan.WaktuDibuat, aduan.WaktuDiperbarui)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func aduanInfoQuery() sq.SelectBuilder {
	return builder().
		Select("a.id", "a.id_pengguna", "a.judul", "a.kategori", "a.isi", "a.status",
			"a.waktu_dibuat", "a.waktu_diperbarui", "p.nama_lengkap AS nama_pelapor").
		From(tableAduan + " a").
		Join(tablePengguna + " p ON p.id = a.id_pengguna")
}

func (s *store) ListAduan(ctx context.Context) ([]domain.AduanInfo, error) {
	query := aduanInfoQuery().OrderBy("a.waktu_dibuat DESC")

	listed, err := xpgx.Selectx[domain.AduanInfo](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listed, nil
}

func (s *store) ListAduanByPengguna(ctx context.Context, penggunaID string) ([]domain.Aduan, error) {
	query := builder().Select(aduanColumns...).
		From(tableAduan).
		Where(sq.Eq{"id_pengguna": penggunaID}).
		OrderBy("waktu_dibuat DESC")

	listed, err := xpgx.Selectx[domain.Aduan](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listed, nil
}

func (s *store) GetAduanByID(ctx context.Context, id string) (*domain.AduanInfo, error) {
	query := aduanInfoQuery().Where(sq.Eq{"a.id": id})

	selected, err := xpgx.Getx[domain.AduanInfo](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateStatusAduan(ctx context.Context, id string, status domain.StatusAduan) error {
	query := builder().Update(tableAduan).
		Set("status", status).
		Set("waktu_diperbarui", s.now()).
		Where(sq.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) CreateTanggapan(ctx context.Context, tanggapan *domain.Tanggapan) error {
	tanggapan.WaktuDibuat = s.now()

	query := builder().Insert(tableTanggapan).
		Columns("id", "id_aduan", "id_pengguna", "isi_tanggapan", "waktu_dibuat").
		Values(tanggapan.ID, tanggapan.IDAduan, tanggapan.IDPengguna,
			tanggapan.IsiTanggapan, tanggapan.WaktuDibuat)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ListTanggapanByAduan(ctx context.Context, aduanID string) ([]domain.Tanggapan, error) {
	query := builder().
		Select("t.id", "t.id_aduan", "t.id_pengguna", "p.nama_lengkap",
			"t.isi_tanggapan", "t.waktu_dibuat").
		From(tableTanggapan + " t").
		Join(tablePengguna + " p ON p.id = t.id_pengguna").
		Where(sq.Eq{"t.id_aduan": aduanID}).
		OrderBy("t.waktu_dibuat")

	listed, err := xpgx.Selectx[domain.Tanggapan](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listed, nil
}
