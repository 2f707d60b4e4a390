// Package surat manages surat PBB records. Kepala dusun and ketua RT
// only ever see their own dusun; the superadmin sees everything.
package surat

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/store"
	"github.com/andika-123140096/website-desa/internal/pkg/utils"
)

type Service struct {
	suratStore store.SuratStore
	dusunStore store.DusunStore
}

func NewSuratService(suratStore store.SuratStore, dusunStore store.DusunStore) *Service {
	return &Service{suratStore: suratStore, dusunStore: dusunStore}
}

// scope resolves which dusun the caller may touch: nil means
// unrestricted (superadmin only).
func scope(caller *utils.AuthClaims) (*int64, error) {
	switch caller.Role {
	case domain.RoleSuperadmin:
		return nil, nil
	case domain.RoleKepalaDusun, domain.RoleKetuaRT:
		if caller.IDDusun == nil {
			return nil, constants.ErrForbidden
		}
		return caller.IDDusun, nil
	default:
		return nil, constants.ErrForbidden
	}
}

func (s *Service) Create(ctx context.Context, caller *utils.AuthClaims, req dto.CreateSuratRequest) (*domain.SuratPBB, error) {
	callerScope, err := scope(caller)
	if err != nil {
		return nil, err
	}

	dusunID := callerScope
	if dusunID == nil {
		// Superadmin entry form carries an explicit dusun.
		if req.DusunID == nil {
			return nil, constants.ErrDusunWajibDipilih
		}
		dusunID = req.DusunID
	}

	status := domain.StatusPembayaran(req.StatusPembayaran)
	if !status.Valid() {
		return nil, constants.ErrStatusPembayaranTidakValid
	}

	if _, err := s.dusunStore.GetDusunByID(ctx, *dusunID); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrDusunNotFound
		}
		return nil, err
	}

	surat := &domain.SuratPBB{
		ID:                   uuid.NewString(),
		IDDusun:              *dusunID,
		NomorObjekPajak:      req.NomorObjekPajak,
		NamaWajibPajak:       req.NamaWajibPajak,
		AlamatWajibPajak:     req.AlamatWajibPajak,
		AlamatObjekPajak:     req.AlamatObjekPajak,
		LuasTanah:            req.LuasTanah,
		LuasBangunan:         req.LuasBangunan,
		NilaiJualObjekPajak:  req.NilaiJualObjekPajak,
		JumlahPajakTerhutang: req.JumlahPajakTerhutang,
		TahunPajak:           req.TahunPajak,
		StatusPembayaran:     status,
	}

	if err := s.suratStore.CreateSurat(ctx, surat); err != nil {
		return nil, err
	}

	return surat, nil
}

// List returns the caller's visible filings; superadmin may narrow to
// one dusun with dusunFilter.
func (s *Service) List(ctx context.Context, caller *utils.AuthClaims, dusunFilter *int64) ([]domain.SuratPBB, error) {
	callerScope, err := scope(caller)
	if err != nil {
		return nil, err
	}
	if callerScope == nil {
		callerScope = dusunFilter
	}

	return s.suratStore.ListSurat(ctx, callerScope)
}

func (s *Service) Get(ctx context.Context, caller *utils.AuthClaims, id string) (*domain.SuratPBB, error) {
	callerScope, err := scope(caller)
	if err != nil {
		return nil, err
	}

	selected, err := s.suratStore.GetSuratByID(ctx, id)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, constants.ErrSuratNotFound
	}
	if err != nil {
		return nil, err
	}

	// Out-of-scope rows are indistinguishable from absent ones.
	if callerScope != nil && selected.IDDusun != *callerScope {
		return nil, constants.ErrSuratNotFound
	}

	return selected, nil
}

func (s *Service) Update(ctx context.Context, caller *utils.AuthClaims, id string, req dto.UpdateSuratRequest) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}

	opts := store.UpdateSuratOpts{
		NomorObjekPajak:      req.NomorObjekPajak,
		NamaWajibPajak:       req.NamaWajibPajak,
		AlamatWajibPajak:     req.AlamatWajibPajak,
		AlamatObjekPajak:     req.AlamatObjekPajak,
		LuasTanah:            req.LuasTanah,
		LuasBangunan:         req.LuasBangunan,
		NilaiJualObjekPajak:  req.NilaiJualObjekPajak,
		JumlahPajakTerhutang: req.JumlahPajakTerhutang,
		TahunPajak:           req.TahunPajak,
	}
	if req.StatusPembayaran != nil {
		status := domain.StatusPembayaran(*req.StatusPembayaran)
		if !status.Valid() {
			return constants.ErrStatusPembayaranTidakValid
		}
		opts.StatusPembayaran = &status
	}

	return s.suratStore.UpdateSurat(ctx, id, opts)
}

func (s *Service) Delete(ctx context.Context, caller *utils.AuthClaims, id string) error {
	if caller.Role != domain.RoleSuperadmin {
		return constants.ErrForbidden
	}

	return s.suratStore.DeleteSurat(ctx, id)
}
