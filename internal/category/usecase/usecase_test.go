package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/eyewear-storefront-service/internal/cachekey"
	"github.com/fekuna/eyewear-storefront-service/internal/category/dto"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/cache"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepo) FindAll(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	args := m.Called(ctx, activeOnly)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *mockRepo) FindSubcategories(ctx context.Context, activeOnly bool) ([]model.Subcategory, error) {
	args := m.Called(ctx, activeOnly)
	subs, _ := args.Get(0).([]model.Subcategory)
	return subs, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*model.Category)
	return out, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestCreateAppliesDefaults(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	cat, err := NewCategoryUseCase(repo, cache.Nop{}, logger.NewNop()).
		CreateCategory(context.Background(), &dto.CategoryInput{NameEn: "Sunglasses"})
	require.NoError(t, err)

	assert.Equal(t, "#3b82f6", cat.Color)
	assert.Equal(t, 0, cat.SortOrder)
	assert.True(t, cat.IsActive)
	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, []model.Subcategory{}, cat.Subcategories)
}

func TestCreateKeepsExplicitValues(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Color == "#000000" && c.SortOrder == 4 && !c.IsActive
	})).Return(nil)

	_, err := NewCategoryUseCase(repo, cache.Nop{}, logger.NewNop()).CreateCategory(context.Background(), &dto.CategoryInput{
		NameAr: "نظارات", Color: "#000000", SortOrder: intPtr(4), IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateRequiresAName(t *testing.T) {
	repo := &mockRepo{}
	_, err := NewCategoryUseCase(repo, cache.Nop{}, logger.NewNop()).
		CreateCategory(context.Background(), &dto.CategoryInput{NameAr: " ", Icon: "glasses"})

	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Equal(t, i18n.MsgNameRequired, apperror.MessageID(err, ""))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateMissingRowIsNotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := NewCategoryUseCase(repo, cache.Nop{}, logger.NewNop()).
		UpdateCategory(context.Background(), "missing", &dto.CategoryInput{NameEn: "x"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, i18n.MsgCategoryNotFound, apperror.MessageID(err, ""))
}

func TestUpdateAppliesDefaults(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.ID == "c1" && c.Color == model.DefaultCategoryColor && c.IsActive
	})).Return(&model.Category{BaseModel: model.BaseModel{ID: "c1"}}, nil)

	out, err := NewCategoryUseCase(repo, cache.Nop{}, logger.NewNop()).
		UpdateCategory(context.Background(), "c1", &dto.CategoryInput{NameEn: "Optical"})
	require.NoError(t, err)
	assert.Equal(t, "c1", out.ID)
}

func TestListEmbedsSubcategoriesAndCaches(t *testing.T) {
	repo := &mockRepo{}
	repo.On("FindAll", mock.Anything, false).Return([]model.Category{
		{BaseModel: model.BaseModel{ID: "c1"}, NameEn: "Men"},
		{BaseModel: model.BaseModel{ID: "c2"}, NameEn: "Kids"},
	}, nil).Once()
	repo.On("FindSubcategories", mock.Anything, false).Return([]model.Subcategory{
		{BaseModel: model.BaseModel{ID: "s1"}, CategoryID: "c1", NameEn: "Sun"},
		{BaseModel: model.BaseModel{ID: "s2"}, CategoryID: "c1", NameEn: "Optical"},
	}, nil).Once()

	store := cache.NewMemory()
	uc := NewCategoryUseCase(repo, store, logger.NewNop())

	for i := 0; i < 2; i++ {
		cats, err := uc.ListCategories(context.Background(), false)
		require.NoError(t, err)
		require.Len(t, cats, 2)
		require.Len(t, cats[0].Subcategories, 2)
		assert.Equal(t, "s1", cats[0].Subcategories[0].ID)
		assert.Equal(t, []model.Subcategory{}, cats[1].Subcategories)
	}
	repo.AssertExpectations(t)
}

func TestWritesInvalidateLists(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()
	for _, key := range cachekey.Lists(cachekey.Categories, cachekey.Subcategories) {
		require.NoError(t, store.SetJSON(ctx, key, []int{1}, cachekey.TTL))
	}

	repo := &mockRepo{}
	repo.On("Delete", mock.Anything, "c1").Return(nil)
	require.NoError(t, NewCategoryUseCase(repo, store, logger.NewNop()).DeleteCategory(ctx, "c1"))

	for _, key := range cachekey.Lists(cachekey.Categories, cachekey.Subcategories) {
		var v []int
		hit, _ := store.GetJSON(ctx, key, &v)
		assert.False(t, hit, key)
	}
}

func TestStoreFailureIsStoreKind(t *testing.T) {
	repo := &mockRepo{}
	repo.On("FindAll", mock.Anything, true).Return(nil, errors.New("down"))

	_, err := NewCategoryUseCase(repo, cache.Nop{}, logger.NewNop()).ListCategories(context.Background(), true)
	assert.Equal(t, apperror.KindStore, apperror.KindOf(err))
}
