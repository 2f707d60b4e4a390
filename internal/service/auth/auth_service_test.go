package auth

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/domain/dto"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
	"github.com/andika-123140096/website-desa/internal/pkg/tokenstore"
	"github.com/andika-123140096/website-desa/internal/pkg/utils"
)

type fakePenggunaStore struct {
	byUsername map[string]*domain.Pengguna
	perangkat  map[string]*domain.PerangkatDesa
}

func newFakePenggunaStore() *fakePenggunaStore {
	return &fakePenggunaStore{
		byUsername: make(map[string]*domain.Pengguna),
		perangkat:  make(map[string]*domain.PerangkatDesa),
	}
}

func (f *fakePenggunaStore) CreatePengguna(_ context.Context, pengguna *domain.Pengguna) error {
	f.byUsername[pengguna.Username] = pengguna
	return nil
}

func (f *fakePenggunaStore) GetPenggunaByUsername(_ context.Context, username string) (*domain.Pengguna, error) {
	pengguna, ok := f.byUsername[username]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return pengguna, nil
}

func (f *fakePenggunaStore) GetPenggunaByID(_ context.Context, id string) (*domain.Pengguna, error) {
	for _, pengguna := range f.byUsername {
		if pengguna.ID == id {
			return pengguna, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakePenggunaStore) CreatePerangkat(_ context.Context, perangkat *domain.PerangkatDesa) error {
	f.perangkat[perangkat.ID] = perangkat
	return nil
}

func (f *fakePenggunaStore) GetPerangkatByID(_ context.Context, id string) (*domain.PerangkatDesa, error) {
	perangkat, ok := f.perangkat[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return perangkat, nil
}

func (f *fakePenggunaStore) ListPerangkatByDusun(_ context.Context, dusunID int64) ([]domain.PerangkatInfo, error) {
	var listed []domain.PerangkatInfo
	for _, perangkat := range f.perangkat {
		if perangkat.IDDusun == dusunID {
			listed = append(listed, domain.PerangkatInfo{
				ID:      perangkat.ID,
				IDDusun: perangkat.IDDusun,
				Jabatan: perangkat.Jabatan,
			})
		}
	}
	return listed, nil
}

func (f *fakePenggunaStore) DeletePerangkat(context.Context, string) error {
	panic("not used")
}

func newTestService(t *testing.T) (*Service, *fakePenggunaStore, tokenstore.Store) {
	t.Helper()

	viper.Set(constants.ViperJWTSecret, "test-secret")

	tokens, err := tokenstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = tokens.Close() })

	st := newFakePenggunaStore()
	return NewAuthService(st, tokens), st, tokens
}

func seedPengguna(t *testing.T, st *fakePenggunaStore, username, password string, role domain.Role) *domain.Pengguna {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	pengguna := &domain.Pengguna{
		ID:           username + "-id",
		Username:     username,
		PasswordHash: string(hash),
		NamaLengkap:  username,
		Role:         role,
	}
	st.byUsername[username] = pengguna
	return pengguna
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)
	seedPengguna(t, st, "budi", "rahasia1", domain.RoleMasyarakat)

	result, err := svc.Login(ctx, dto.LoginRequest{Username: "budi", Password: "rahasia1"})
	require.NoError(t, err)
	require.Equal(t, "budi", result.Pengguna.Username)

	claims, err := utils.ParseAuthToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, result.Pengguna.ID, claims.UserID)
	require.Equal(t, domain.RoleMasyarakat, claims.Role)
	require.Nil(t, claims.IDDusun)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)
	seedPengguna(t, st, "budi", "rahasia1", domain.RoleMasyarakat)

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "budi", Password: "salah"})
	require.ErrorIs(t, err, constants.ErrLoginGagal)
}

func TestLoginUnknownUsername(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "tidak-ada", Password: "apapun"})
	require.ErrorIs(t, err, constants.ErrLoginGagal)
}

func TestLoginPerangkatCarriesDusun(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)
	pengguna := seedPengguna(t, st, "kadus", "rahasia1", domain.RoleKepalaDusun)
	st.perangkat[pengguna.ID] = &domain.PerangkatDesa{
		ID:      pengguna.ID,
		IDDusun: 4,
		Jabatan: domain.JabatanKepalaDusun,
	}

	result, err := svc.Login(ctx, dto.LoginRequest{Username: "kadus", Password: "rahasia1"})
	require.NoError(t, err)

	claims, err := utils.ParseAuthToken(result.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.IDDusun)
	require.Equal(t, int64(4), *claims.IDDusun)
}

func TestRegisterMasyarakat(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	result, err := svc.RegisterMasyarakat(ctx, dto.RegisterRequest{
		Username:    "siti",
		Password:    "rahasia1",
		NamaLengkap: "Siti Aminah",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleMasyarakat, result.Pengguna.Role)
	require.NotEmpty(t, result.Token)

	stored, ok := st.byUsername["siti"]
	require.True(t, ok)
	require.NotEqual(t, "rahasia1", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia1")))
}

func TestRegisterUsernameTaken(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)
	seedPengguna(t, st, "siti", "rahasia1", domain.RoleMasyarakat)

	_, err := svc.RegisterMasyarakat(ctx, dto.RegisterRequest{
		Username:    "siti",
		Password:    "lainnya1",
		NamaLengkap: "Siti Lain",
	})
	require.ErrorIs(t, err, constants.ErrUsernameTerpakai)
}

func TestRegisterPerangkatTokenDecidesJabatan(t *testing.T) {
	ctx := context.Background()
	svc, st, tokens := newTestService(t)
	require.NoError(t, tokens.Put(ctx, domain.JabatanKepalaDusun, 1, "token-kadus"))
	require.NoError(t, tokens.Put(ctx, domain.JabatanKetuaRT, 1, "token-rt"))

	result, err := svc.RegisterPerangkat(ctx, dto.RegisterPerangkatRequest{
		Username:    "pak-rt",
		Password:    "rahasia1",
		NamaLengkap: "Pak RT",
		DusunID:     1,
		Token:       "token-rt",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleKetuaRT, result.Pengguna.Role)

	perangkat, ok := st.perangkat[result.Pengguna.ID]
	require.True(t, ok)
	require.Equal(t, domain.JabatanKetuaRT, perangkat.Jabatan)
	require.Equal(t, int64(1), perangkat.IDDusun)

	claims, err := utils.ParseAuthToken(result.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.IDDusun)
	require.Equal(t, int64(1), *claims.IDDusun)
}

func TestRegisterPerangkatJabatanTaken(t *testing.T) {
	ctx := context.Background()
	svc, st, tokens := newTestService(t)
	require.NoError(t, tokens.Put(ctx, domain.JabatanKepalaDusun, 1, "token-kadus"))
	require.NoError(t, tokens.Put(ctx, domain.JabatanKetuaRT, 1, "token-rt"))

	first, err := svc.RegisterPerangkat(ctx, dto.RegisterPerangkatRequest{
		Username:    "kadus-lama",
		Password:    "rahasia1",
		NamaLengkap: "Kadus Lama",
		DusunID:     1,
		Token:       "token-kadus",
	})
	require.NoError(t, err)

	// The jabatan is occupied, even though the token still matches.
	_, err = svc.RegisterPerangkat(ctx, dto.RegisterPerangkatRequest{
		Username:    "kadus-baru",
		Password:    "rahasia1",
		NamaLengkap: "Kadus Baru",
		DusunID:     1,
		Token:       "token-kadus",
	})
	require.ErrorIs(t, err, constants.ErrJabatanSudahTerisi)

	// The other jabatan of the same dusun is still open.
	_, err = svc.RegisterPerangkat(ctx, dto.RegisterPerangkatRequest{
		Username:    "pak-rt",
		Password:    "rahasia1",
		NamaLengkap: "Pak RT",
		DusunID:     1,
		Token:       "token-rt",
	})
	require.NoError(t, err)

	// Removing the old perangkat frees the jabatan for a replacement.
	delete(st.perangkat, first.Pengguna.ID)
	_, err = svc.RegisterPerangkat(ctx, dto.RegisterPerangkatRequest{
		Username:    "kadus-baru",
		Password:    "rahasia1",
		NamaLengkap: "Kadus Baru",
		DusunID:     1,
		Token:       "token-kadus",
	})
	require.NoError(t, err)
}

func TestRegisterPerangkatInvalidToken(t *testing.T) {
	ctx := context.Background()
	svc, st, tokens := newTestService(t)
	require.NoError(t, tokens.Put(ctx, domain.JabatanKepalaDusun, 1, "token-kadus"))

	_, err := svc.RegisterPerangkat(ctx, dto.RegisterPerangkatRequest{
		Username:    "penyusup",
		Password:    "rahasia1",
		NamaLengkap: "Penyusup",
		DusunID:     1,
		Token:       "tebakan",
	})
	require.ErrorIs(t, err, constants.ErrTokenRegistrasiTidakValid)
	require.Empty(t, st.byUsername)
}

func TestRegisterPerangkatTokenOfOtherDusun(t *testing.T) {
	ctx := context.Background()
	svc, _, tokens := newTestService(t)
	require.NoError(t, tokens.Put(ctx, domain.JabatanKepalaDusun, 1, "token-kadus"))

	_, err := svc.RegisterPerangkat(ctx, dto.RegisterPerangkatRequest{
		Username:    "kadus2",
		Password:    "rahasia1",
		NamaLengkap: "Kadus Dua",
		DusunID:     2,
		Token:       "token-kadus",
	})
	require.ErrorIs(t, err, constants.ErrTokenRegistrasiTidakValid)
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)
	pengguna := seedPengguna(t, st, "budi", "rahasia1", domain.RoleMasyarakat)

	selected, err := svc.Me(ctx, pengguna.ID)
	require.NoError(t, err)
	require.Equal(t, "budi", selected.Username)

	_, err = svc.Me(ctx, "tidak-ada")
	require.ErrorIs(t, err, constants.ErrPenggunaNotFound)
}
