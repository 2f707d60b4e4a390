package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/store/xpgx"
)

type UpdateSuratOpts struct {
	NomorObjekPajak      *string
	NamaWajibPajak       *string
	AlamatWajibPajak     *string
	AlamatObjekPajak     *string
	LuasTanah            *decimal.Decimal
	LuasBangunan         *decimal.Decimal
	NilaiJualObjekPajak  *decimal.Decimal
	JumlahPajakTerhutang *decimal.Decimal
	TahunPajak           *int
	StatusPembayaran     *domain.StatusPembayaran
}

type SuratStore interface {
	CreateSurat(ctx context.Context, surat *domain.SuratPBB) error
	// ListSurat returns filings ordered by creation time, optionally
	// restricted to one dusun.
	ListSurat(ctx context.Context, dusunID *int64) ([]domain.SuratPBB, error)
	GetSuratByID(ctx context.Context, id string) (*domain.SuratPBB, error)
	UpdateSurat(ctx context.Context, id string, opts UpdateSuratOpts) error
	DeleteSurat(ctx context.Context, id string) error

	// Aggregates. A nil dusunID means the whole filing table. Empty
	// aggregates come back as zero, never null.
	SumPajakTerhutang(ctx context.Context, dusunID *int64) (decimal.Decimal, error)
	SumPajakDibayar(ctx context.Context, dusunID *int64) (decimal.Decimal, error)
	CountSurat(ctx context.Context, dusunID *int64) (int64, error)
	CountByStatus(ctx context.Context, dusunID int64) ([]domain.StatusCount, error)
	// LaporanPerDusun computes the per-dusun totals for every dusun in
	// one grouped pass, joined with the kepala-dusun display name.
	LaporanPerDusun(ctx context.Context) ([]domain.LaporanDusun, error)
}

var suratColumns = []string{
	"id", "id_dusun", "nomor_objek_pajak", "nama_wajib_pajak", "alamat_wajib_pajak",
	"alamat_objek_pajak", "luas_tanah", "luas_bangunan", "nilai_jual_objek_pajak",
	"jumlah_pajak_terhutang", "tahun_pajak", "status_pembayaran",
	"waktu_dibuat", "waktu_diperbarui",
}

func (s *store) CreateSurat(ctx context.Context, surat *domain.SuratPBB) error {
	now := s.now()
	surat.WaktuDibuat = now
	surat.WaktuDiperbarui = now

	query := builder().Insert(tableSuratPBB).
		Columns(suratColumns...).
		Values(surat.ID, surat.IDDusun, surat.NomorObjekPajak, surat.NamaWajibPajak,
			surat.AlamatWajibPajak, surat.AlamatObjekPajak, surat.LuasTanah,
			surat.LuasBangunan, surat.NilaiJualObjekPajak, surat.JumlahPajakTerhutang,
			surat.TahunPajak, surat.StatusPembayaran, surat.WaktuDibuat, surat.WaktuDiperbarui)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ListSurat(ctx context.Context, dusunID *int64) ([]domain.SuratPBB, error) {
	query := builder().Select(suratColumns...).
		From(tableSuratPBB).
		OrderBy("waktu_dibuat DESC")
	if dusunID != nil {
		query = query.Where(sq.Eq{"id_dusun": *dusunID})
	}

	listed, err := xpgx.Selectx[domain.SuratPBB](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listed, nil
}

func (s *store) GetSuratByID(ctx context.Context, id string) (*domain.SuratPBB, error) {
	query := builder().Select(suratColumns...).
		From(tableSuratPBB).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.SuratPBB](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateSurat(ctx context.Context, id string, opts UpdateSuratOpts) error {
	query := builder().Update(tableSuratPBB).
		Set("waktu_diperbarui", s.now()).
		Where(sq.Eq{"id": id})

	if opts.NomorObjekPajak != nil {
		query = query.Set("nomor_objek_pajak", *opts.NomorObjekPajak)
	}
	if opts.NamaWajibPajak != nil {
		query = query.Set("nama_wajib_pajak", *opts.NamaWajibPajak)
	}
	if opts.AlamatWajibPajak != nil {
		query = query.Set("alamat_wajib_pajak", *opts.AlamatWajibPajak)
	}
	if opts.AlamatObjekPajak != nil {
		query = query.Set("alamat_objek_pajak", *opts.AlamatObjekPajak)
	}
	if opts.LuasTanah != nil {
		query = query.Set("luas_tanah", *opts.LuasTanah)
	}
	if opts.LuasBangunan != nil {
		query = query.Set("luas_bangunan", *opts.LuasBangunan)
	}
	if opts.NilaiJualObjekPajak != nil {
		query = query.Set("nilai_jual_objek_pajak", *opts.NilaiJualObjekPajak)
	}
	if opts.JumlahPajakTerhutang != nil {
		query = query.Set("jumlah_pajak_terhutang", *opts.JumlahPajakTerhutang)
	}
	if opts.TahunPajak != nil {
		query = query.Set("tahun_pajak", *opts.TahunPajak)
	}
	if opts.StatusPembayaran != nil {
		query = query.Set("status_pembayaran", *opts.StatusPembayaran)
	}

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) DeleteSurat(ctx context.Context, id string) error {
	query := builder().Delete(tableSuratPBB).Where(sq.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) SumPajakTerhutang(ctx context.Context, dusunID *int64) (decimal.Decimal, error) {
	query := builder().
		Select("COALESCE(SUM(jumlah_pajak_terhutang), 0)").
		From(tableSuratPBB)
	if dusunID != nil {
		query = query.Where(sq.Eq{"id_dusun": *dusunID})
	}

	sum, err := xpgx.Scalarx[decimal.Decimal](ctx, s.pool, query)
	if err != nil {
		return decimal.Zero, wrapErr(err)
	}

	return sum, nil
}

func (s *store) SumPajakDibayar(ctx context.Context, dusunID *int64) (decimal.Decimal, error) {
	query := builder().
		Select("COALESCE(SUM(jumlah_pajak_terhutang), 0)").
		From(tableSuratPBB).
		Where(sq.Eq{"status_pembayaran": domain.StatusDibayar})
	if dusunID != nil {
		query = query.Where(sq.Eq{"id_dusun": *dusunID})
	}

	sum, err := xpgx.Scalarx[decimal.Decimal](ctx, s.pool, query)
	if err != nil {
		return decimal.Zero, wrapErr(err)
	}

	return sum, nil
}

func (s *store) CountSurat(ctx context.Context, dusunID *int64) (int64, error) {
	query := builder().Select("COUNT(*)").From(tableSuratPBB)
	if dusunID != nil {
		query = query.Where(sq.Eq{"id_dusun": *dusunID})
	}

	count, err := xpgx.Scalarx[int64](ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}

func (s *store) CountByStatus(ctx context.Context, dusunID int64) ([]domain.StatusCount, error) {
	query := builder().
		Select("status_pembayaran", "COUNT(*) AS jumlah").
		From(tableSuratPBB).
		Where(sq.Eq{"id_dusun": dusunID}).
		GroupBy("status_pembayaran").
		OrderBy("status_pembayaran")

	counts, err := xpgx.Selectx[domain.StatusCount](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return counts, nil
}

func (s *store) LaporanPerDusun(ctx context.Context) ([]domain.LaporanDusun, error) {
	// Surat totals are aggregated per id_dusun before any join touches
	// them, so the kepala-dusun join can never fan out the sums.
	totals := sq.Select("id_dusun").
		Column("SUM(jumlah_pajak_terhutang) AS total_pajak_terhutang").
		Column(sq.Expr(
			"SUM(jumlah_pajak_terhutang) FILTER (WHERE status_pembayaran IN (?, ?)) AS total_pajak_dibayar",
			domain.StatusBayarSendiriDiBank, domain.StatusBayarLewatPerangkatDesa)).
		Column("COUNT(id) AS total_surat").
		From(tableSuratPBB).
		GroupBy("id_dusun")

	query := builder().
		Select("d.id", "d.nama_dusun", "d.status_data_pbb", "p.nama_lengkap AS nama_kepala_dusun").
		Column("COALESCE(s.total_pajak_terhutang, 0) AS total_pajak_terhutang").
		Column("COALESCE(s.total_pajak_dibayar, 0) AS total_pajak_dibayar").
		Column("COALESCE(s.total_surat, 0) AS total_surat").
		From(tableDusun + " d").
		JoinClause(totals.Prefix("LEFT JOIN (").Suffix(") s ON s.id_dusun = d.id")).
		LeftJoin(tablePerangkat + " pd ON pd.id_dusun = d.id AND pd.jabatan = 'kepala_dusun'").
		LeftJoin(tablePengguna + " p ON p.id = pd.id").
		OrderBy("d.id")

	listed, err := xpgx.Selectx[domain.LaporanDusun](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return listed, nil
}
