package perangkat

import (
	"context"
	"errors"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/store"
)

type Service struct {
	store store.PenggunaStore
}

func NewPerangkatService(penggunaStore store.PenggunaStore) *Service {
	return &Service{store: penggunaStore}
}

func (s *Service) ListByDusun(ctx context.Context, dusunID int64) ([]domain.PerangkatInfo, error) {
	return s.store.ListPerangkatByDusun(ctx, dusunID)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.PerangkatDesa, error) {
	selected, err := s.store.GetPerangkatByID(ctx, id)
	if errors.Is(err, constants.ErrDBNotFound) {
		return nil, constants.ErrPerangkatNotFound
	}
	if err != nil {
		return nil, err
	}

	return selected, nil
}

// Delete removes the perangkat binding and its account. The dusun's
// registration token stays valid, so a replacement can register.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	return s.store.DeletePerangkat(ctx, id)
}
