package catalog

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/F1oxyz/coffe-cat-cop/internal/docstore"
	"github.com/F1oxyz/coffe-cat-cop/internal/imagestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// --- Helpers ---

func testPhoto() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 80, B: 40, A: 255})
		}
	}
	return img
}

func validInput() PublishInput {
	return PublishInput{
		Name:        "Latte",
		Price:       "4.5",
		Description: "smooth",
		Image:       testPhoto(),
	}
}

// --- Tests ---

func TestService_Publish_Success(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	images := imagestore.NewMemory()
	svc := NewService(NewRepository(store), images)

	out := svc.Publish(ctx, validInput())

	require.True(t, out.Published)
	require.NotNil(t, out.Product)
	assert.NotEmpty(t, out.Product.ID)
	assert.Equal(t, "Latte", out.Product.Name)
	assert.Equal(t, 4.5, out.Product.Price)
	assert.Equal(t, DefaultSizes, out.Product.Sizes)

	// The published product is visible in the listing and its image resolves.
	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Latte", products[0].Name)
	assert.Equal(t, 4.5, products[0].Price)

	img, err := svc.Image(ctx, products[0].ImageKey)
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestService_Publish_Validation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*PublishInput)
		wantErr error
	}{
		{"EmptyName", func(in *PublishInput) { in.Name = "  " }, ErrNameRequired},
		{"UnparseablePrice", func(in *PublishInput) { in.Price = "abc" }, ErrPriceInvalid},
		{"ZeroPrice", func(in *PublishInput) { in.Price = "0" }, ErrPriceInvalid},
		{"NegativePrice", func(in *PublishInput) { in.Price = "-2" }, ErrPriceInvalid},
		{"EmptyDescription", func(in *PublishInput) { in.Description = "" }, ErrDescriptionRequired},
		{"NoImage", func(in *PublishInput) { in.Image = nil }, ErrImageRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			images := imagestore.NewMemory()
			svc := NewService(mockRepo, images)

			in := validInput()
			tc.mutate(&in)

			out := svc.Publish(ctx, in)

			assert.False(t, out.Published)
			assert.Equal(t, StageValidate, out.Stage)
			assert.ErrorIs(t, out.Err, tc.wantErr)

			// No side effects: nothing stored, no remote call made.
			assert.Equal(t, 0, images.Len())
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Publish_ImageSaveFails(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	images := imagestore.NewMemory()
	images.FailSaves(errors.New("disk full"))
	svc := NewService(mockRepo, images)

	out := svc.Publish(ctx, validInput())

	assert.False(t, out.Published)
	assert.Equal(t, StageSaveImage, out.Stage)
	assert.Error(t, out.Err)

	// No remote write may be attempted after a local storage failure.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Publish_RemoteWriteFails_RollsBackImage(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	images := imagestore.NewMemory()
	svc := NewService(mockRepo, images)

	var savedKey string
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p Product) bool {
		savedKey = p.ImageKey
		return p.ImageKey != ""
	})).Return(docstore.ErrUnavailable)

	out := svc.Publish(ctx, validInput())

	assert.False(t, out.Published)
	assert.Equal(t, StageWriteRecord, out.Stage)
	assert.ErrorIs(t, out.Err, docstore.ErrUnavailable)

	// The previously saved image must no longer be loadable.
	require.NotEmpty(t, savedKey)
	_, err := images.Load(ctx, savedKey)
	assert.ErrorIs(t, err, imagestore.ErrNotFound)
	assert.Equal(t, 0, images.Len())
}

func TestService_Publish_RollbackFailureDoesNotMaskRemoteError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	// A plain mock image store whose Delete always fails.
	images := &failingDeleteStore{Memory: imagestore.NewMemory()}
	svc := NewService(mockRepo, images)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(docstore.ErrUnavailable)

	out := svc.Publish(ctx, validInput())

	assert.Equal(t, StageWriteRecord, out.Stage)
	assert.ErrorIs(t, out.Err, docstore.ErrUnavailable)
}

type failingDeleteStore struct {
	*imagestore.Memory
}

func (s *failingDeleteStore) Delete(ctx context.Context, key string) error {
	return errors.New("delete refused")
}
