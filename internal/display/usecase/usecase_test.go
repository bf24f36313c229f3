package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/fekuna/eyewear-storefront-service/internal/display/dto"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/cache"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo mimics the unique (parent_category, subcategory_key) constraint.
type memoryRepo struct {
	mu       sync.Mutex
	category []model.CategoryDisplay
	sub      []model.SubcategoryDisplay
}

func (r *memoryRepo) CreateCategoryDisplay(_ context.Context, d *model.CategoryDisplay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.category = append(r.category, *d)
	return nil
}

func (r *memoryRepo) FindCategoryDisplays(_ context.Context, visibleOnly bool) ([]model.CategoryDisplay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.CategoryDisplay{}
	for _, d := range r.category {
		if !visibleOnly || d.IsVisible {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memoryRepo) UpdateCategoryDisplay(_ context.Context, d *model.CategoryDisplay) (*model.CategoryDisplay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.category {
		if r.category[i].ID == d.ID {
			d.CreatedAt = r.category[i].CreatedAt
			r.category[i] = *d
			out := *d
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) DeleteCategoryDisplay(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.category[:0]
	for _, d := range r.category {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	r.category = kept
	return nil
}

func (r *memoryRepo) UpsertSubcategoryDisplay(_ context.Context, d *model.SubcategoryDisplay) (*model.SubcategoryDisplay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sub {
		if r.sub[i].ParentCategory == d.ParentCategory && r.sub[i].SubcategoryKey == d.SubcategoryKey {
			d.ID, d.CreatedAt = r.sub[i].ID, r.sub[i].CreatedAt
			r.sub[i] = *d
			out := *d
			return &out, nil
		}
	}
	r.sub = append(r.sub, *d)
	out := *d
	return &out, nil
}

func (r *memoryRepo) FindSubcategoryDisplays(_ context.Context, visibleOnly bool) ([]model.SubcategoryDisplay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.SubcategoryDisplay{}
	for _, d := range r.sub {
		if !visibleOnly || d.IsVisible {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memoryRepo) DeleteSubcategoryDisplay(context.Context, string) error { return nil }

func boolPtr(v bool) *bool { return &v }

func TestUpsertReplacesInsteadOfDuplicating(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	uc := NewDisplayUseCase(repo, cache.NewMemory(), logger.NewNop())

	first, err := uc.SaveSubcategoryDisplay(ctx, &dto.SubcategoryDisplayInput{
		ParentCategory: "men", SubcategoryKey: "sunglasses", TitleEn: "Sun", BackgroundImage: "a.jpg",
	})
	require.NoError(t, err)

	// Prime the list cache so the second write must invalidate it.
	list, err := uc.ListSubcategoryDisplays(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 1)

	second, err := uc.SaveSubcategoryDisplay(ctx, &dto.SubcategoryDisplayInput{
		ParentCategory: "men", SubcategoryKey: "sunglasses", TitleEn: "Summer", BackgroundImage: "b.jpg", IsVisible: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	list, err = uc.ListSubcategoryDisplays(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Summer", list[0].TitleEn)
	assert.Equal(t, "b.jpg", list[0].BackgroundImage)
	assert.False(t, list[0].IsVisible)

	visible, err := uc.ListSubcategoryDisplays(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestSubcategoryDisplayValidation(t *testing.T) {
	uc := NewDisplayUseCase(&memoryRepo{}, cache.Nop{}, logger.NewNop())

	_, err := uc.SaveSubcategoryDisplay(context.Background(), &dto.SubcategoryDisplayInput{SubcategoryKey: "sun", BackgroundImage: "a.jpg"})
	assert.Equal(t, i18n.MsgDisplayKeysRequired, apperror.MessageID(err, ""))

	_, err = uc.SaveSubcategoryDisplay(context.Background(), &dto.SubcategoryDisplayInput{ParentCategory: "men", SubcategoryKey: "sun"})
	assert.Equal(t, i18n.MsgBackgroundRequired, apperror.MessageID(err, ""))
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCategoryDisplayLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	uc := NewDisplayUseCase(repo, cache.NewMemory(), logger.NewNop())

	_, err := uc.CreateCategoryDisplay(ctx, &dto.CategoryDisplayInput{CategoryKey: "men"})
	assert.Equal(t, i18n.MsgBackgroundRequired, apperror.MessageID(err, ""))

	d, err := uc.CreateCategoryDisplay(ctx, &dto.CategoryDisplayInput{CategoryKey: "men", BackgroundImage: "men.jpg"})
	require.NoError(t, err)
	assert.True(t, d.IsVisible)
	assert.Equal(t, 0, d.SortOrder)

	_, err = uc.UpdateCategoryDisplay(ctx, d.ID, &dto.CategoryDisplayInput{CategoryKey: "men"})
	assert.Equal(t, i18n.MsgBackgroundRequired, apperror.MessageID(err, ""))

	_, err = uc.UpdateCategoryDisplay(ctx, "missing", &dto.CategoryDisplayInput{BackgroundImage: "x.jpg"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	updated, err := uc.UpdateCategoryDisplay(ctx, d.ID, &dto.CategoryDisplayInput{CategoryKey: "men", BackgroundImage: "men2.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "men2.jpg", updated.BackgroundImage)

	require.NoError(t, uc.DeleteCategoryDisplay(ctx, d.ID))
	require.NoError(t, uc.DeleteCategoryDisplay(ctx, d.ID))
	list, err := uc.ListCategoryDisplays(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, list)
}
