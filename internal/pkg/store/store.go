package store

import (
	"time"

	"github.com/andika-123140096/website-desa/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the relational persistence layer. Row timestamps are
// stamped here, in the location the deployment is configured with.
type Store interface {
	DusunStore
	SuratStore
	AduanStore
	PenggunaStore
}

type store struct {
	pool *Pool
	loc  *time.Location
}

func NewStore(pool *Pool, loc *time.Location) Store {
	return &store{pool: pool, loc: loc}
}

func (s *store) now() time.Time {
	return time.Now().In(s.loc)
}
