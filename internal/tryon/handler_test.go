package tryon

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAlwaysReportsDeprecation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tr, err := i18n.New("ar")
	require.NoError(t, err)

	r := gin.New()
	r.Use(tr.Middleware())
	NewHandler(logger.NewNop()).Register(r.Group("/api"))

	for _, body := range []string{`{"image":"data:..."}`, `not json`, ``} {
		req := httptest.NewRequest(http.MethodPost, "/api/generate-tryon", strings.NewReader(body))
		req.Header.Set("Accept-Language", "en")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deprecated":true,"message":"The virtual try-on service has been discontinued"}`, w.Body.String())
	}
}
