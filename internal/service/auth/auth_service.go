// Package auth handles login and the two self-registration flows:
// citizens register freely, perangkat desa register with the token
// issued for their dusun.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/logger"
	"github.com/andika-123140096/website-desa/internal/pkg/store"
	"github.com/andika-123140096/website-desa/internal/pkg/tokenstore"
	"github.com/andika-123140096/website-desa/internal/pkg/utils"
)

const tokenTTL = 24 * time.Hour

type Service struct {
	store  store.PenggunaStore
	tokens tokenstore.Store
}

func NewAuthService(penggunaStore store.PenggunaStore, tokens tokenstore.Store) *Service {
	return &Service{store: penggunaStore, tokens: tokens}
}

// LoginResult pairs the bearer token with the account it represents.
type LoginResult struct {
	Token    string           `json:"token"`
	Pengguna *domain.Pengguna `json:"pengguna"`
}

func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*LoginResult, error) {
	pengguna, err := s.store.GetPenggunaByUsername(ctx, req.Username)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, constants.ErrLoginGagal
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(pengguna.PasswordHash), []byte(req.Password)) != nil {
		return nil, constants.ErrLoginGagal
	}

	return s.issueToken(ctx, pengguna)
}

func (s *Service) issueToken(ctx context.Context, pengguna *domain.Pengguna) (*LoginResult, error) {
	var idDusun *int64
	if pengguna.Role == domain.RoleKepalaDusun || pengguna.Role == domain.RoleKetuaRT {
		perangkat, err := s.store.GetPerangkatByID(ctx, pengguna.ID)
		if err != nil {
			logger.Errorf(ctx, "getPerangkatByID, id-%s: %s", pengguna.ID, err.Error())
			return nil, fmt.Errorf("getPerangkatByID: %w", err)
		}
		idDusun = &perangkat.IDDusun
	}

	token, err := utils.NewAuthToken(pengguna.ID, pengguna.Role, idDusun, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("newAuthToken: %w", err)
	}

	return &LoginResult{Token: token, Pengguna: pengguna}, nil
}

// RegisterMasyarakat creates a citizen account and logs it in.
func (s *Service) RegisterMasyarakat(ctx context.Context, req dto.RegisterRequest) (*LoginResult, error) {
	pengguna, err := s.newPengguna(ctx, req.Username, req.Password, req.NamaLengkap, domain.RoleMasyarakat)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreatePengguna(ctx, pengguna); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, pengguna)
}

// RegisterPerangkat creates a kepala-dusun or ketua-RT account. The
// presented token is matched against both tokens stored for the dusun;
// whichever matches decides the jabatan.
func (s *Service) RegisterPerangkat(ctx context.Context, req dto.RegisterPerangkatRequest) (*LoginResult, error) {
	jabatan, err := s.matchToken(ctx, req.DusunID, req.Token)
	if err != nil {
		return nil, err
	}

	// One account per jabatan per dusun; a replacement registers only
	// after the old perangkat is deleted.
	existing, err := s.store.ListPerangkatByDusun(ctx, req.DusunID)
	if err != nil {
		return nil, fmt.Errorf("listPerangkatByDusun: %w", err)
	}
	for _, perangkat := range existing {
		if perangkat.Jabatan == jabatan {
			return nil, constants.ErrJabatanSudahTerisi
		}
	}

	pengguna, err := s.newPengguna(ctx, req.Username, req.Password, req.NamaLengkap, domain.Role(jabatan))
	if err != nil {
		return nil, err
	}

	if err := s.store.CreatePengguna(ctx, pengguna); err != nil {
		return nil, err
	}

	perangkat := &domain.PerangkatDesa{
		ID:      pengguna.ID,
		IDDusun: req.DusunID,
		Jabatan: jabatan,
	}
	if err := s.store.CreatePerangkat(ctx, perangkat); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, pengguna)
}

func (s *Service) matchToken(ctx context.Context, dusunID int64, presented string) (domain.Jabatan, error) {
	for _, jabatan := range []domain.Jabatan{domain.JabatanKepalaDusun, domain.JabatanKetuaRT} {
		stored, ok, err := s.tokens.Get(ctx, jabatan, dusunID)
		if err != nil {
			return "", fmt.Errorf("get token %s: %w", jabatan, err)
		}
		if ok && subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1 {
			return jabatan, nil
		}
	}
	return "", constants.ErrTokenRegistrasiTidakValid
}

func (s *Service) newPengguna(ctx context.Context, username, password, namaLengkap string, role domain.Role) (*domain.Pengguna, error) {
	if _, err := s.store.GetPenggunaByUsername(ctx, username); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrUsernameTerpakai
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &domain.Pengguna{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		NamaLengkap:  namaLengkap,
		Role:         role,
	}, nil
}

// Me returns the caller's profile.
func (s *Service) Me(ctx context.Context, userID string) (*domain.Pengguna, error) {
	pengguna, err := s.store.GetPenggunaByID(ctx, userID)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, constants.ErrPenggunaNotFound
	}
	if err != nil {
		return nil, err
	}

	return pengguna, nil
}
