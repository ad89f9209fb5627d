package catalog

import (
	"context"
	"image"
	"strconv"
	"strings"

	"github.com/F1oxyz/coffe-cat-cop/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublishStage identifies the step of the publish flow a failure occurred in.
type PublishStage string

const (
	StageValidate    PublishStage = "validate"
	StageSaveImage   PublishStage = "save_image"
	StageWriteRecord PublishStage = "write_record"
)

type PublishInput struct {
	Name        string
	Price       string
	Description string
	Image       image.Image
}

// PublishOutcome is the terminal result of one publish attempt. A failed
// attempt is never retried automatically; the caller may start over.
type PublishOutcome struct {
	Published bool
	Product   *Product
	Stage     PublishStage
	Err       error
}

// Publish creates a new product: validate, save the photo locally, then
// write the record. The photo is saved first so no record ever references a
// missing image at the moment it is written; on a confirmed remote failure
// the photo is rolled back.
func (s *service) Publish(ctx context.Context, in PublishInput) PublishOutcome {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Publish"),
	)

	// 1. Validate before any side effect.
	price, err := validatePublishInput(in)
	if err != nil {
		log.Warn("publish input rejected", zap.Error(err))
		return PublishOutcome{Stage: StageValidate, Err: err}
	}

	// 2. Persist the photo.
	key, err := s.images.Save(ctx, in.Image)
	if err != nil {
		log.Error("failed to save product image", zap.Error(err))
		return PublishOutcome{Stage: StageSaveImage, Err: err}
	}

	product := Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Price:       price,
		Description: strings.TrimSpace(in.Description),
		ImageKey:    key,
		Sizes:       append([]string(nil), DefaultSizes...),
	}

	// 3. Write the record; roll the photo back on a confirmed remote failure.
	if err := s.repo.Create(ctx, product); err != nil {
		if delErr := s.images.Delete(ctx, key); delErr != nil {
			// Best effort; the caller sees the remote failure,
			// not this one.
			log.Warn("image rollback failed",
				zap.String("image_key", key),
				zap.Error(delErr),
			)
		}
		log.Error("failed to publish product",
			zap.String("product_id", product.ID),
			zap.Error(err),
		)
		return PublishOutcome{Stage: StageWriteRecord, Err: err}
	}

	log.Info("product published",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price),
	)

	return PublishOutcome{Published: true, Product: &product}
}

func validatePublishInput(in PublishInput) (float64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, ErrNameRequired
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil || price <= 0 {
		return 0, ErrPriceInvalid
	}

	if strings.TrimSpace(in.Description) == "" {
		return 0, ErrDescriptionRequired
	}

	if in.Image == nil {
		return 0, ErrImageRequired
	}

	return price, nil
}
