package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fekuna/eyewear-storefront-service/internal/events"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/product"
	"github.com/fekuna/eyewear-storefront-service/internal/product/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/broker"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockRepo) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]model.Product)
	return out, args.Error(1)
}

func (m *mockRepo) Search(ctx context.Context, query string, limit int) ([]model.Product, error) {
	args := m.Called(ctx, query, limit)
	out, _ := args.Get(0).([]model.Product)
	return out, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*model.Product)
	return out, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.Product)
	return out, args.Error(1)
}

func (m *mockRepo) AppendImage(ctx context.Context, id, name string) (*model.Product, error) {
	args := m.Called(ctx, id, name)
	out, _ := args.Get(0).(*model.Product)
	return out, args.Error(1)
}

func (m *mockRepo) DetachImages(ctx context.Context, names []string) ([]model.Product, error) {
	args := m.Called(ctx, names)
	out, _ := args.Get(0).([]model.Product)
	return out, args.Error(1)
}

type mockIndex struct {
	mock.Mock
}

func (m *mockIndex) Index(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockIndex) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockIndex) Search(ctx context.Context, query string, limit int) ([]model.Product, error) {
	args := m.Called(ctx, query, limit)
	out, _ := args.Get(0).([]model.Product)
	return out, args.Error(1)
}

type mockImages struct {
	mock.Mock
}

func (m *mockImages) Upload(ctx context.Context, name, contentType string, body io.Reader) error {
	return m.Called(ctx, name, contentType, body).Error(0)
}

func (m *mockImages) Remove(ctx context.Context, names []string) error {
	return m.Called(ctx, names).Error(0)
}

func (m *mockImages) PublicURL(name string) string {
	return "https://cdn.example.com/" + name
}

// recorder collects published event types.
type recorder struct {
	types []string
}

func (r *recorder) publisher() *events.Publisher {
	return events.NewPublisher(broker.PublisherFunc(func(_ context.Context, _ string, value []byte) error {
		var e model.ProductEvent
		if err := json.Unmarshal(value, &e); err != nil {
			return err
		}
		r.types = append(r.types, e.EventType)
		return nil
	}), logger.NewNop())
}

func newUseCase(repo *mockRepo, index product.SearchIndex, images *mockImages, rec *recorder) product.UseCase {
	if rec == nil {
		rec = &recorder{}
	}
	return NewProductUseCase(repo, index, images, rec.publisher(), logger.NewNop())
}

func qty(n int) *int { return &n }

func TestCreateProductValidation(t *testing.T) {
	repo := &mockRepo{}
	uc := newUseCase(repo, nil, &mockImages{}, nil)
	ctx := context.Background()

	cases := []struct {
		in    dto.ProductInput
		msgID string
	}{
		{dto.ProductInput{Price: json.RawMessage(`10`)}, i18n.MsgNameRequired},
		{dto.ProductInput{NameEn: "Aviator", Price: json.RawMessage(`"ten"`)}, i18n.MsgPriceInvalid},
		{dto.ProductInput{NameEn: "Aviator"}, i18n.MsgPriceInvalid},
		{dto.ProductInput{NameEn: "Aviator", Price: json.RawMessage(`-1`)}, i18n.MsgPriceInvalid},
		{dto.ProductInput{NameEn: "Aviator", Price: json.RawMessage(`"19.999"`)}, i18n.MsgPriceInvalid},
		{dto.ProductInput{NameEn: "Aviator", Price: json.RawMessage(`1e10`)}, i18n.MsgPriceInvalid},
		{dto.ProductInput{NameAr: "نظارة", Price: json.RawMessage(`10`), Quantity: qty(-1)}, i18n.MsgQuantityNegative},
	}
	for _, tc := range cases {
		in := tc.in
		_, err := uc.CreateProduct(ctx, &in)
		require.Error(t, err)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		assert.Equal(t, tc.msgID, apperror.MessageID(err, ""))
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProductPublishesUpsert(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Quantity == 0 && p.Price.String() == "149.99" && len(p.Images) == 1
	})).Return(nil)
	rec := &recorder{}

	p, err := newUseCase(repo, nil, &mockImages{}, rec).CreateProduct(context.Background(), &dto.ProductInput{
		NameEn: "Round", Price: json.RawMessage(`"149.99"`), Images: []string{"a.jpg", " a.jpg ", ""},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, []string{model.EventProductUpserted}, rec.types)
}

func TestUpdateProductNotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)
	rec := &recorder{}

	_, err := newUseCase(repo, nil, &mockImages{}, rec).UpdateProduct(context.Background(), "gone",
		&dto.ProductInput{NameEn: "Round", Price: json.RawMessage(`1`)})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, i18n.MsgProductNotFound, apperror.MessageID(err, ""))
	assert.Empty(t, rec.types)
}

func TestSearchFallsBackToSQL(t *testing.T) {
	repo := &mockRepo{}
	index := &mockIndex{}
	index.On("Search", mock.Anything, "aviator", DefaultSearchLimit).Return(nil, errors.New("cluster red"))
	repo.On("Search", mock.Anything, "aviator", DefaultSearchLimit).Return([]model.Product{{NameEn: "Aviator"}}, nil)

	out, err := newUseCase(repo, index, &mockImages{}, nil).SearchProducts(context.Background(), " aviator ", 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	index.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSearchPrefersIndexAndCapsLimit(t *testing.T) {
	repo := &mockRepo{}
	index := &mockIndex{}
	index.On("Search", mock.Anything, "round", MaxSearchLimit).Return([]model.Product{{NameEn: "Round"}}, nil)

	out, err := newUseCase(repo, index, &mockImages{}, nil).SearchProducts(context.Background(), "round", 5000)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchWithoutIndexAndEmptyQuery(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Search", mock.Anything, "cat eye", 10).Return([]model.Product{}, nil)
	uc := newUseCase(repo, nil, &mockImages{}, nil)

	_, err := uc.SearchProducts(context.Background(), "cat eye", 10)
	require.NoError(t, err)

	_, err = uc.SearchProducts(context.Background(), "   ", 10)
	assert.Equal(t, i18n.MsgSearchQueryRequired, apperror.MessageID(err, ""))
}

func TestDeleteProductRemovesImagesAfterRow(t *testing.T) {
	repo := &mockRepo{}
	images := &mockImages{}
	rec := &recorder{}
	repo.On("Delete", mock.Anything, "p1").Return(&model.Product{
		BaseModel: model.BaseModel{ID: "p1"},
		Images:    pq.StringArray{"products/p1/a.jpg"},
	}, nil)
	images.On("Remove", mock.Anything, []string{"products/p1/a.jpg"}).Return(errors.New("storage down"))

	err := newUseCase(repo, nil, images, rec).DeleteProduct(context.Background(), "p1")
	require.NoError(t, err)
	images.AssertExpectations(t)
	assert.Equal(t, []string{model.EventProductDeleted}, rec.types)
}

func TestDeleteMissingProductIsNoop(t *testing.T) {
	repo := &mockRepo{}
	images := &mockImages{}
	rec := &recorder{}
	repo.On("Delete", mock.Anything, "gone").Return(nil, nil)

	require.NoError(t, newUseCase(repo, nil, images, rec).DeleteProduct(context.Background(), "gone"))
	images.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	assert.Empty(t, rec.types)
}

func TestUploadImage(t *testing.T) {
	repo := &mockRepo{}
	images := &mockImages{}
	rec := &recorder{}
	repo.On("FindByID", mock.Anything, "p1").Return(&model.Product{BaseModel: model.BaseModel{ID: "p1"}}, nil)
	images.On("Upload", mock.Anything, mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "products/p1/") && strings.HasSuffix(name, ".png")
	}), "image/png", mock.Anything).Return(nil)
	repo.On("AppendImage", mock.Anything, "p1", mock.Anything).Return(&model.Product{
		BaseModel: model.BaseModel{ID: "p1"}, Images: pq.StringArray{"x"},
	}, nil)

	res, err := newUseCase(repo, nil, images, rec).UploadImage(context.Background(), &dto.ImageUpload{
		ProductID: "p1", FileName: "Front.PNG", ContentType: "image/png", Body: strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+res.Name, res.URL)
	assert.Equal(t, []string{model.EventProductUpserted}, rec.types)
}

func TestUploadImageCleansUpWhenProductVanishes(t *testing.T) {
	repo := &mockRepo{}
	images := &mockImages{}
	repo.On("FindByID", mock.Anything, "p1").Return(&model.Product{BaseModel: model.BaseModel{ID: "p1"}}, nil)
	images.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("AppendImage", mock.Anything, "p1", mock.Anything).Return(nil, nil)
	images.On("Remove", mock.Anything, mock.MatchedBy(func(names []string) bool { return len(names) == 1 })).Return(nil)

	_, err := newUseCase(repo, nil, images, nil).UploadImage(context.Background(), &dto.ImageUpload{
		ProductID: "p1", FileName: "a.jpg", Body: strings.NewReader("x"),
	})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	images.AssertExpectations(t)
}

func TestUploadImageStorageFailure(t *testing.T) {
	repo := &mockRepo{}
	images := &mockImages{}
	repo.On("FindByID", mock.Anything, "p1").Return(&model.Product{BaseModel: model.BaseModel{ID: "p1"}}, nil)
	images.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("403"))

	_, err := newUseCase(repo, nil, images, nil).UploadImage(context.Background(), &dto.ImageUpload{
		ProductID: "p1", FileName: "a.jpg", Body: strings.NewReader("x"),
	})
	assert.Equal(t, apperror.KindStore, apperror.KindOf(err))
	assert.Equal(t, i18n.MsgUploadFailed, apperror.MessageID(err, ""))
	repo.AssertNotCalled(t, "AppendImage", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteImages(t *testing.T) {
	repo := &mockRepo{}
	images := &mockImages{}
	rec := &recorder{}
	names := []string{"products/p1/a.jpg", "products/p2/b.jpg"}
	images.On("Remove", mock.Anything, names).Return(nil)
	repo.On("DetachImages", mock.Anything, names).Return([]model.Product{
		{BaseModel: model.BaseModel{ID: "p1"}},
		{BaseModel: model.BaseModel{ID: "p2"}},
	}, nil)
	uc := newUseCase(repo, nil, images, rec)

	require.NoError(t, uc.DeleteImages(context.Background(), []string{" products/p1/a.jpg", "products/p2/b.jpg", "products/p1/a.jpg"}))
	assert.Equal(t, []string{model.EventProductUpserted, model.EventProductUpserted}, rec.types)

	err := uc.DeleteImages(context.Background(), []string{" ", ""})
	assert.Equal(t, i18n.MsgImageNamesRequired, apperror.MessageID(err, ""))
}
