package adaptor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func deleteCategory(t *testing.T, svc *fakeCategoryService, id string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	h := adaptor.NewCategoryHandler(svc, &spySaver{}, zap.NewNop())

	r := chi.NewRouter()
	r.Delete("/api/category/categories/{id}", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/category/categories/"+id, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestCategoryDeleteReportsTrue(t *testing.T) {
	svc := &fakeCategoryService{deleteResult: true}
	rec, payload := deleteCategory(t, svc, "5")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, int64(5), svc.deletedID)
}

func TestCategoryDeleteMissingRowStays200(t *testing.T) {
	svc := &fakeCategoryService{deleteResult: false}
	rec, payload := deleteCategory(t, svc, "999")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, payload["success"])
}
