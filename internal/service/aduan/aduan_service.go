// Package aduan is the citizen complaint module: citizens file and
// follow their own complaints, the superadmin works the full queue.
package aduan

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/store"
	"github.com/andika-123140096/website-desa/internal/pkg/utils"
)

type Service struct {
	store store.AduanStore
}

func NewAduanService(aduanStore store.AduanStore) *Service {
	return &Service{store: aduanStore}
}

func (s *Service) Create(ctx context.Context, caller *utils.AuthClaims, req dto.CreateAduanRequest) (*domain.Aduan, error) {
	judul := strings.TrimSpace(req.Judul)
	isi := strings.TrimSpace(req.Isi)
	if judul == "" || isi == "" {
		return nil, constants.ErrAduanKosong
	}

	kategori := domain.KategoriAduan(req.Kategori)
	if !kategori.Valid() {
		return nil, constants.ErrKategoriTidakValid
	}

	created := &domain.Aduan{
		ID:         uuid.NewString(),
		IDPengguna: caller.UserID,
		Judul:      judul,
		Kategori:   kategori,
		Isi:        isi,
		Status:     domain.StatusAduanMenunggu,
	}

	if err := s.store.CreateAduan(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) ListSaya(ctx context.Context, caller *utils.AuthClaims) ([]domain.Aduan, error) {
	return s.store.ListAduanByPengguna(ctx, caller.UserID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.AduanInfo, error) {
	return s.store.ListAduan(ctx)
}

// Get returns the aduan with its tanggapan thread. Only the reporter
// and the superadmin may see it; others get NotFound.
func (s *Service) Get(ctx context.Context, caller *utils.AuthClaims, id string) (*domain.AduanDetail, error) {
	selected, err := s.store.GetAduanByID(ctx, id)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, constants.ErrAduanNotFound
	}
	if err != nil {
		return nil, err
	}

	if caller.Role != domain.RoleSuperadmin && selected.IDPengguna != caller.UserID {
		return nil, constants.ErrAduanNotFound
	}

	tanggapan, err := s.store.ListTanggapanByAduan(ctx, id)
	if err != nil {
		return nil, err
	}
	if tanggapan == nil {
		tanggapan = []domain.Tanggapan{}
	}

	return &domain.AduanDetail{AduanInfo: *selected, Tanggapan: tanggapan}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, rawStatus string) error {
	status := domain.StatusAduan(rawStatus)
	if !status.Valid() {
		return constants.ErrStatusAduanTidakValid
	}

	if _, err := s.store.GetAduanByID(ctx, id); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return constants.ErrAduanNotFound
		}
		return err
	}

	return s.store.UpdateStatusAduan(ctx, id, status)
}

func (s *Service) AddTanggapan(ctx context.Context, caller *utils.AuthClaims, aduanID string, isi string) (*domain.Tanggapan, error) {
	isi = strings.TrimSpace(isi)
	if isi == "" {
		return nil, constants.ErrTanggapanKosong
	}

	if _, err := s.store.GetAduanByID(ctx, aduanID); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrAduanNotFound
		}
		return nil, err
	}

	tanggapan := &domain.Tanggapan{
		ID:           uuid.NewString(),
		IDAduan:      aduanID,
		IDPengguna:   caller.UserID,
		IsiTanggapan: isi,
	}

	if err := s.store.CreateTanggapan(ctx, tanggapan); err != nil {
		return nil, err
	}

	return tanggapan, nil
}
