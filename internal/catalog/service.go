package catalog

import (
	"context"
	"image"
	"time"

	"github.com/F1oxyz/coffe-cat-cop/internal/imagestore"
	"github.com/F1oxyz/coffe-cat-cop/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	// Image resolves a product's photo lazily. A missing photo returns
	// imagestore.ErrNotFound and callers render a placeholder.
	Image(ctx context.Context, key string) (image.Image, error)
	Publish(ctx context.Context, in PublishInput) PublishOutcome
}

type service struct {
	repo   Repository
	images imagestore.Store
}

func NewService(repo Repository, images imagestore.Store) Service {
	return &service{repo: repo, images: images}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)

	start := time.Now()

	products, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Info("get product list success",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (s *service) Image(ctx context.Context, key string) (image.Image, error) {
	return s.images.Load(ctx, key)
}
