// Package statistik computes on-demand aggregates over surat PBB.
// Nothing is cached; every report recomputes from the current rows.
package statistik

import (
	"context"
	"errors"
	"fmt"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/store"
)

type Service struct {
	dusunStore store.DusunStore
	suratStore store.SuratStore
}

func NewStatistikService(dusunStore store.DusunStore, suratStore store.SuratStore) *Service {
	return &Service{dusunStore: dusunStore, suratStore: suratStore}
}

// StatistikDusun aggregates one dusun. The four quantities are
// separate scans, so a filing landing between them shows up in some
// and not others; acceptable at administrative write rates.
func (s *Service) StatistikDusun(ctx context.Context, dusunID int64) (*domain.StatistikDusun, error) {
	selected, err := s.dusunStore.GetDusunByID(ctx, dusunID)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, constants.ErrDusunNotFound
	}
	if err != nil {
		return nil, err
	}

	terhutang, err := s.suratStore.SumPajakTerhutang(ctx, &dusunID)
	if err != nil {
		return nil, fmt.Errorf("sumPajakTerhutang: %w", err)
	}

	dibayar, err := s.suratStore.SumPajakDibayar(ctx, &dusunID)
	if err != nil {
		return nil, fmt.Errorf("sumPajakDibayar: %w", err)
	}

	statusCounts, err := s.suratStore.CountByStatus(ctx, dusunID)
	if err != nil {
		return nil, fmt.Errorf("countByStatus: %w", err)
	}
	if statusCounts == nil {
		statusCounts = []domain.StatusCount{}
	}

	totalSurat, err := s.suratStore.CountSurat(ctx, &dusunID)
	if err != nil {
		return nil, fmt.Errorf("countSurat: %w", err)
	}

	return &domain.StatistikDusun{
		Dusun:               *selected,
		TotalPajakTerhutang: terhutang,
		TotalPajakDibayar:   dibayar,
		TotalSurat:          totalSurat,
		StatusPembayaran:    statusCounts,
	}, nil
}

// Laporan assembles the whole-system report for the superadmin: one
// grouped pass over surat PBB for the per-dusun rows plus the two
// unscoped grand totals.
func (s *Service) Laporan(ctx context.Context, role domain.Role) (*domain.Laporan, error) {
	if role != domain.RoleSuperadmin {
		return nil, constants.ErrLaporanForbidden
	}

	perDusun, err := s.suratStore.LaporanPerDusun(ctx)
	if err != nil {
		return nil, fmt.Errorf("laporanPerDusun: %w", err)
	}
	if perDusun == nil {
		perDusun = []domain.LaporanDusun{}
	}

	terhutang, err := s.suratStore.SumPajakTerhutang(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sumPajakTerhutang: %w", err)
	}

	dibayar, err := s.suratStore.SumPajakDibayar(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sumPajakDibayar: %w", err)
	}

	return &domain.Laporan{
		StatistikPerDusun:              perDusun,
		TotalPajakTerhutangKeseluruhan: terhutang,
		TotalPajakDibayarKeseluruhan:   dibayar,
	}, nil
}
