package adaptor_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MuruliCGPayroute/superpetzjp/internal/adaptor"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func productForm(t *testing.T, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if withImage {
		part, err := mw.CreateFormFile("image", "toy.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("not-really-a-png"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("name", "Chew Toy"))
	require.NoError(t, mw.WriteField("price", "980"))
	require.NoError(t, mw.WriteField("stock_quantity", "12"))
	require.NoError(t, mw.WriteField("category_id", "3"))
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestProductCreateReadsImageField(t *testing.T) {
	svc := &fakeProductService{createID: 7}
	saver := &spySaver{filename: "1700000000-4242.png"}
	h := adaptor.NewProductHandler(svc, saver, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/products/add", h.Create)

	body, contentType := productForm(t, true)
	req := httptest.NewRequest(http.MethodPost, "/api/products/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, saver.saved)
	assert.Equal(t, "toy.png", saver.original)
	require.NotNil(t, svc.imageFilename)
	assert.Equal(t, "1700000000-4242.png", *svc.imageFilename)
	require.NotNil(t, svc.createReq)
	assert.Equal(t, "Chew Toy", svc.createReq.Name)
}

func TestProductUpdateReadsImageField(t *testing.T) {
	svc := &fakeProductService{}
	saver := &spySaver{filename: "1700000001-1111.png"}
	h := adaptor.NewProductHandler(svc, saver, zap.NewNop())

	r := chi.NewRouter()
	r.Put("/api/products/update/{id}", h.Update)

	body, contentType := productForm(t, true)
	req := httptest.NewRequest(http.MethodPut, "/api/products/update/7", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, saver.saved)
	require.NotNil(t, svc.imageFilename)
	assert.Equal(t, "1700000001-1111.png", *svc.imageFilename)
}

func TestProductCreateWithoutImage(t *testing.T) {
	svc := &fakeProductService{createID: 8}
	saver := &spySaver{filename: "unused.png"}
	h := adaptor.NewProductHandler(svc, saver, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/products/add", h.Create)

	body, contentType := productForm(t, false)
	req := httptest.NewRequest(http.MethodPost, "/api/products/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.False(t, saver.saved)
	assert.Nil(t, svc.imageFilename)
}

func TestListingsIncludeTotal(t *testing.T) {
	svc := &fakeProductService{listings: []response.ProductListingResponse{
		{ProductID: 1, Name: "Chew Toy", Price: decimal.NewFromInt(980)},
		{ProductID: 2, Name: "Cat Tower", Price: decimal.NewFromInt(4980)},
	}}
	h := adaptor.NewProductHandler(svc, &spySaver{}, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/products", h.Listings)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(2), payload["total"])
	assert.Len(t, payload["products"], 2)
}
