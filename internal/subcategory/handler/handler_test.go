package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/subcategory/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) ListSubcategories(ctx context.Context, activeOnly bool) ([]model.Subcategory, error) {
	args := m.Called(ctx, activeOnly)
	out, _ := args.Get(0).([]model.Subcategory)
	return out, args.Error(1)
}

func (m *mockUseCase) CreateSubcategory(ctx context.Context, input *dto.SubcategoryInput) (*model.Subcategory, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*model.Subcategory)
	return out, args.Error(1)
}

func (m *mockUseCase) UpdateSubcategory(ctx context.Context, id string, input *dto.SubcategoryInput) (*model.Subcategory, error) {
	args := m.Called(ctx, id, input)
	out, _ := args.Get(0).(*model.Subcategory)
	return out, args.Error(1)
}

func (m *mockUseCase) DeleteSubcategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func do(t *testing.T, uc *mockUseCase, method, path, body, lang string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tr, err := i18n.New("ar")
	require.NoError(t, err)

	r := gin.New()
	r.Use(tr.Middleware())
	NewSubcategoryHandler(uc, logger.NewNop()).Register(r.Group("/api"))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListEmbedsParent(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("ListSubcategories", mock.Anything, false).Return([]model.Subcategory{{
		BaseModel:  model.BaseModel{ID: "s1"},
		CategoryID: "c1",
		Category:   &model.Category{BaseModel: model.BaseModel{ID: "c1"}, NameEn: "Men"},
	}}, nil)

	w := do(t, uc, http.MethodGet, "/api/subcategories", "", "en")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":{`)
	assert.Contains(t, w.Body.String(), `"name_en":"Men"`)
}

func TestCreateUnknownCategoryDefaultsToArabic(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("CreateSubcategory", mock.Anything, mock.Anything).Return(nil, apperror.Validation(i18n.MsgCategoryNotFound))

	w := do(t, uc, http.MethodPost, "/api/subcategories", `{"category_id":"nope","name_en":"Sun"}`, "en")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Category not found"}`, w.Body.String())

	w = do(t, uc, http.MethodPost, "/api/subcategories", `{"category_id":"nope","name_en":"Sun"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "Category not found")
}

func TestDeleteIsIdempotent(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("DeleteSubcategory", mock.Anything, "s1").Return(nil).Twice()

	for i := 0; i < 2; i++ {
		w := do(t, uc, http.MethodDelete, "/api/subcategories/s1", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	}
}
