package dusun

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/store"
	"github.com/andika-123140096/website-desa/internal/pkg/tokenstore"
)

// fakeDusunStore reproduces the max+1 id assignment in memory.
type fakeDusunStore struct {
	rows    map[int64]domain.DusunDetail
	updates map[int64]store.UpdateDusunOpts
}

func newFakeDusunStore() *fakeDusunStore {
	return &fakeDusunStore{
		rows:    make(map[int64]domain.DusunDetail),
		updates: make(map[int64]store.UpdateDusunOpts),
	}
}

func (f *fakeDusunStore) CreateDusun(_ context.Context, nama string) (int64, error) {
	var max int64
	for id := range f.rows {
		if id > max {
			max = id
		}
	}
	id := max + 1
	f.rows[id] = domain.DusunDetail{Dusun: domain.Dusun{
		ID:            id,
		NamaDusun:     nama,
		StatusDataPBB: domain.StatusDataBelumLengkap,
	}}
	return id, nil
}

func (f *fakeDusunStore) ListDusun(_ context.Context) ([]domain.DusunDetail, error) {
	listed := make([]domain.DusunDetail, 0, len(f.rows))
	for _, row := range f.rows {
		listed = append(listed, row)
	}
	return listed, nil
}

func (f *fakeDusunStore) GetDusunByID(_ context.Context, id int64) (*domain.DusunDetail, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return &row, nil
}

func (f *fakeDusunStore) UpdateDusun(_ context.Context, id int64, opts store.UpdateDusunOpts) error {
	f.updates[id] = opts
	return nil
}

func (f *fakeDusunStore) DeleteDusun(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeDusunStore, tokenstore.Store) {
	t.Helper()

	tokens, err := tokenstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = tokens.Close() })

	st := newFakeDusunStore()
	return NewDusunService(st, tokens), st, tokens
}

func TestCreateIssuesTokens(t *testing.T) {
	ctx := context.Background()
	svc, _, tokens := newTestService(t)

	created, err := svc.Create(ctx, "Mawar")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.DusunID)
	require.Len(t, created.TokenKepalaDusun, 32)
	require.Len(t, created.TokenKetuaRT, 32)
	require.NotEqual(t, created.TokenKepalaDusun, created.TokenKetuaRT)

	stored, ok, err := tokens.Get(ctx, domain.JabatanKepalaDusun, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, created.TokenKepalaDusun, stored)

	stored, ok, err = tokens.Get(ctx, domain.JabatanKetuaRT, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, created.TokenKetuaRT, stored)
}

func TestCreateEmptyName(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	_, err := svc.Create(ctx, "   ")
	require.ErrorIs(t, err, constants.ErrNamaDusunKosong)
	require.Empty(t, st.rows)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	for want := int64(1); want <= 3; want++ {
		created, err := svc.Create(ctx, "Dusun")
		require.NoError(t, err)
		require.Equal(t, want, created.DusunID)
	}
}

func TestCreateReusesHighestIDAfterDelete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, "Dusun")
		require.NoError(t, err)
	}
	require.NoError(t, svc.Delete(ctx, 3))

	created, err := svc.Create(ctx, "Dusun")
	require.NoError(t, err)
	require.Equal(t, int64(3), created.DusunID)
}

func TestGetNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Get(ctx, 99)
	require.ErrorIs(t, err, constants.ErrDusunNotFound)
}

func TestUpdateInvalidStatus(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	_, err := svc.Create(ctx, "Mawar")
	require.NoError(t, err)

	bad := "lengkap_sekali"
	err = svc.Update(ctx, 1, dto.UpdateDusunRequest{StatusDataPBB: &bad})
	require.ErrorIs(t, err, constants.ErrStatusDataPBBTidakValid)
	require.Empty(t, st.updates)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	_, err := svc.Create(ctx, "Mawar")
	require.NoError(t, err)

	status := string(domain.StatusDataSudahLengkap)
	require.NoError(t, svc.Update(ctx, 1, dto.UpdateDusunRequest{StatusDataPBB: &status}))

	applied, ok := st.updates[1]
	require.True(t, ok)
	require.NotNil(t, applied.StatusDataPBB)
	require.Equal(t, domain.StatusDataSudahLengkap, *applied.StatusDataPBB)
}

func TestDeleteKeepsTokens(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	created, err := svc.Create(ctx, "Mawar")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.DusunID))

	stored, err := svc.Tokens(ctx, created.DusunID)
	require.NoError(t, err)
	require.NotNil(t, stored.TokenKepalaDusun)
	require.Equal(t, created.TokenKepalaDusun, *stored.TokenKepalaDusun)
	require.NotNil(t, stored.TokenKetuaRT)
	require.Equal(t, created.TokenKetuaRT, *stored.TokenKetuaRT)
}

func TestTokensNeverIssued(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	stored, err := svc.Tokens(ctx, 12)
	require.NoError(t, err)
	require.Nil(t, stored.TokenKepalaDusun)
	require.Nil(t, stored.TokenKetuaRT)
}
