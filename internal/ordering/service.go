package ordering

import (
	"context"
	"slices"
	"strings"

	"github.com/F1oxyz/coffe-cat-cop/internal/catalog"
	"github.com/F1oxyz/coffe-cat-cop/internal/logger"
	"github.com/F1oxyz/coffe-cat-cop/internal/user"

	"go.uber.org/zap"
)

// IdentitySource reports the currently signed-in identity, if any.
type IdentitySource interface {
	Current() (user.Identity, bool)
}

type PlaceInput struct {
	Product         catalog.Product
	Size            string
	Quantity        int
	DeliveryAddress string
}

// PlaceOutcome is the terminal result of one order attempt. Failures are
// never retried automatically.
type PlaceOutcome struct {
	Ordered bool
	Order   *Order
	Err     error
}

type Service interface {
	Place(ctx context.Context, in PlaceInput) PlaceOutcome
}

type service struct {
	repo Repository
	ids  IdentitySource
}

func NewService(repo Repository, ids IdentitySource) Service {
	return &service{repo: repo, ids: ids}
}

func (s *service) Place(ctx context.Context, in PlaceInput) PlaceOutcome {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Place"),
		zap.String("product_id", in.Product.ID),
	)

	// 1. An order needs a signed-in identity; nothing is written without one.
	identity, ok := s.ids.Current()
	if !ok {
		log.Warn("order rejected: no authenticated identity")
		return PlaceOutcome{Err: ErrUnauthenticated}
	}

	// 2. Validate input.
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return PlaceOutcome{Err: ErrAddressRequired}
	}
	if !slices.Contains(in.Product.Sizes, in.Size) {
		return PlaceOutcome{Err: ErrSizeInvalid}
	}

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	// 3. Fix the total at submission time.
	order := Order{
		UserID:          identity.UID,
		ProductID:       in.Product.ID,
		ProductName:     in.Product.Name,
		Size:            in.Size,
		Quantity:        quantity,
		TotalPrice:      in.Product.Price * float64(quantity),
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		Status:          StatusPending,
	}

	// 4. Write; no compensation needed, there are no prior side effects.
	placed, err := s.repo.Place(ctx, order)
	if err != nil {
		log.Error("failed to place order", zap.Error(err))
		return PlaceOutcome{Err: err}
	}

	log.Info("order placed",
		zap.String("order_id", placed.ID),
		zap.Int("quantity", placed.Quantity),
		zap.Float64("total_price", placed.TotalPrice),
	)

	return PlaceOutcome{Ordered: true, Order: &placed}
}
