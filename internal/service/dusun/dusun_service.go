// Package dusun is the hamlet registry: dusun CRUD plus issuance of
// the two role-scoped registration tokens handed to the kepala dusun
// and ketua RT for self-registration.
package dusun

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/logger"
	"github.com/andika-123140096/website-desa/internal/pkg/store"
	"github.com/andika-123140096/website-desa/internal/pkg/tokenstore"
	"github.com/andika-123140096/website-desa/internal/pkg/utils"
)

type Service struct {
	store  store.DusunStore
	tokens tokenstore.Store
}

func NewDusunService(dusunStore store.DusunStore, tokens tokenstore.Store) *Service {
	return &Service{store: dusunStore, tokens: tokens}
}

// Create inserts the dusun and issues both registration tokens. The
// returned response is the only in-band handoff of the kepala-dusun
// token; afterwards both stay retrievable via Tokens.
func (s *Service) Create(ctx context.Context, namaDusun string) (*domain.DusunBaru, error) {
	namaDusun = strings.TrimSpace(namaDusun)
	if namaDusun == "" {
		return nil, constants.ErrNamaDusunKosong
	}

	tokenKepalaDusun, err := utils.GenerateRegistrationToken()
	if err != nil {
		return nil, fmt.Errorf("generate token kepala dusun: %w", err)
	}
	tokenKetuaRT, err := utils.GenerateRegistrationToken()
	if err != nil {
		return nil, fmt.Errorf("generate token ketua rt: %w", err)
	}

	id, err := s.store.CreateDusun(ctx, namaDusun)
	if err != nil {
		logger.Errorf(ctx, "createDusun: %s", err.Error())
		return nil, fmt.Errorf("createDusun: %w", err)
	}

	if err := s.tokens.Put(ctx, domain.JabatanKepalaDusun, id, tokenKepalaDusun); err != nil {
		logger.Errorf(ctx, "put token kepala_dusun, id_dusun-%d: %s", id, err.Error())
		return nil, fmt.Errorf("put token kepala_dusun: %w", err)
	}
	if err := s.tokens.Put(ctx, domain.JabatanKetuaRT, id, tokenKetuaRT); err != nil {
		logger.Errorf(ctx, "put token ketua_rt, id_dusun-%d: %s", id, err.Error())
		return nil, fmt.Errorf("put token ketua_rt: %w", err)
	}

	return &domain.DusunBaru{
		DusunID:          id,
		TokenKepalaDusun: tokenKepalaDusun,
		TokenKetuaRT:     tokenKetuaRT,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.DusunDetail, error) {
	return s.store.ListDusun(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.DusunDetail, error) {
	selected, err := s.store.GetDusunByID(ctx, id)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, constants.ErrDusunNotFound
	}
	if err != nil {
		return nil, err
	}

	return selected, nil
}

// Update applies the provided fields. An update with neither field
// still refreshes waktu_diperbarui.
func (s *Service) Update(ctx context.Context, id int64, req dto.UpdateDusunRequest) error {
	opts := store.UpdateDusunOpts{NamaDusun: req.NamaDusun}
	if req.StatusDataPBB != nil {
		status := domain.StatusDataPBB(*req.StatusDataPBB)
		if !status.Valid() {
			return constants.ErrStatusDataPBBTidakValid
		}
		opts.StatusDataPBB = &status
	}

	return s.store.UpdateDusun(ctx, id, opts)
}

// Delete removes the dusun row only. Filings, perangkat bindings and
// the issued tokens are left in place; the tokens double as an audit
// trail of past issuance.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteDusun(ctx, id)
}

func (s *Service) Tokens(ctx context.Context, id int64) (*domain.DusunTokens, error) {
	var result domain.DusunTokens

	if token, ok, err := s.tokens.Get(ctx, domain.JabatanKepalaDusun, id); err != nil {
		return nil, fmt.Errorf("get token kepala_dusun: %w", err)
	} else if ok {
		result.TokenKepalaDusun = &token
	}

	if token, ok, err := s.tokens.Get(ctx, domain.JabatanKetuaRT, id); err != nil {
		return nil, fmt.Errorf("get token ketua_rt: %w", err)
	} else if ok {
		result.TokenKetuaRT = &token
	}

	return &result, nil
}
