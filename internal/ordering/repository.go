package ordering

import (
	"context"

	"github.com/F1oxyz/coffe-cat-cop/internal/docstore"
	"github.com/F1oxyz/coffe-cat-cop/internal/logger"

	"go.uber.org/zap"
)

const ordersCollection = "orders"

type Repository interface {
	// Place writes the order under a store-generated key and returns it
	// with the server-assigned id and creation time filled in.
	Place(ctx context.Context, o Order) (Order, error)
}

type repository struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Place(ctx context.Context, o Order) (Order, error) {
	rec, err := r.store.Add(ctx, ordersCollection, docFromOrder(o))
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert order",
			zap.String("product_id", o.ProductID),
			zap.Error(err),
		)
		return Order{}, err
	}

	o.ID = rec.Key
	o.CreatedAt = rec.CreatedAt
	return o, nil
}
