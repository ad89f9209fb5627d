package catalog

import (
	"context"

	"github.com/F1oxyz/coffe-cat-cop/internal/docstore"
	"github.com/F1oxyz/coffe-cat-cop/internal/logger"

	"go.uber.org/zap"
)

const drinksCollection = "drinks"

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, p Product) error
}

type repository struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) Repository {
	return &repository{store: store}
}

// List performs one remote query over the drinks collection. The query is
// all-or-nothing; field-level filtering of malformed records happens after.
func (r *repository) List(ctx context.Context) ([]Product, error) {
	records, err := r.store.List(ctx, drinksCollection)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(records))
	skipped := 0
	for _, rec := range records {
		p := productFromDoc(rec.Key, rec.Doc)
		if p == nil {
			skipped++
			continue
		}
		products = append(products, *p)
	}

	if skipped > 0 {
		logger.FromCtx(ctx).Warn("skipped malformed product records",
			zap.Int("count", skipped),
		)
	}

	return products, nil
}

func (r *repository) Create(ctx context.Context, p Product) error {
	return r.store.Create(ctx, drinksCollection, p.ID, docFromProduct(p))
}
