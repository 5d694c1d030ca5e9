package manager

import (
	"context"

	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

// ClassManager resolves token classes
type ClassManager interface {
	Get(ctx context.Context, id int64) (*schema.Class, bool)
}

type classManager struct {
	store store.Store
	cache cache.Cache[*schema.Class]
}

// NewClassManager creates a class manager
func NewClassManager(st store.Store, c cache.Cache[*schema.Class]) ClassManager {
	return &classManager{store: st, cache: c}
}

func (m *classManager) Get(ctx context.Context, id int64) (*schema.Class, bool) {
	return m.cache.GetWith(ctx, cache.KeyOf("class.get", id), func(ctx context.Context) (*schema.Class, bool) {
		class, err := m.store.GetClassByID(ctx, id)
		return byID(ctx, "class", class, err)
	})
}
