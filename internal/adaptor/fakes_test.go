package adaptor_test

import (
	"context"
	"io"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"
)

// spySaver records whether a file reached storage without touching disk.
type spySaver struct {
	saved    bool
	original string
	filename string
}

func (s *spySaver) Save(r io.Reader, originalName string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	s.saved = true
	s.original = originalName
	return s.filename, nil
}

type fakeProductService struct {
	listings      []response.ProductListingResponse
	createReq     *request.ProductRequest
	updateReq     *request.ProductRequest
	imageFilename *string
	createID      int64
}

func (f *fakeProductService) ListAll(ctx context.Context) ([]response.ProductResponse, error) {
	return nil, nil
}

func (f *fakeProductService) Listings(ctx context.Context, categoryName, classificationName string) ([]response.ProductListingResponse, error) {
	return f.listings, nil
}

func (f *fakeProductService) Get(ctx context.Context, id int64) (*response.ProductResponse, error) {
	return nil, nil
}

func (f *fakeProductService) Create(ctx context.Context, req *request.ProductRequest, imageFilename *string) (int64, error) {
	f.createReq = req
	f.imageFilename = imageFilename
	return f.createID, nil
}

func (f *fakeProductService) Update(ctx context.Context, id int64, req *request.ProductRequest, imageFilename *string) error {
	f.updateReq = req
	f.imageFilename = imageFilename
	return nil
}

func (f *fakeProductService) Delete(ctx context.Context, id int64) error {
	return nil
}

type fakeCategoryService struct {
	deleteResult bool
	deletedID    int64
}

func (f *fakeCategoryService) List(ctx context.Context) ([]response.CategoryResponse, error) {
	return nil, nil
}

func (f *fakeCategoryService) Get(ctx context.Context, id int64) (*response.CategoryResponse, error) {
	return nil, nil
}

func (f *fakeCategoryService) Create(ctx context.Context, req *request.CategoryRequest, imageFilename *string) (int64, error) {
	return 0, nil
}

func (f *fakeCategoryService) Update(ctx context.Context, id int64, req *request.CategoryRequest, imageFilename *string) error {
	return nil
}

func (f *fakeCategoryService) Delete(ctx context.Context, id int64) (bool, error) {
	f.deletedID = id
	return f.deleteResult, nil
}

type fakeOrderService struct {
	gatewayOrder *response.GatewayOrderResponse
}

func (f *fakeOrderService) PlaceOrder(ctx context.Context, userID int64, req *request.PlaceOrderRequest) (int64, entity.PaymentStatus, error) {
	return 0, entity.PaymentStatusPending, nil
}

func (f *fakeOrderService) CreateGatewayOrder(ctx context.Context, req *request.CreateGatewayOrderRequest) (*response.GatewayOrderResponse, error) {
	return f.gatewayOrder, nil
}

func (f *fakeOrderService) VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (bool, error) {
	return true, nil
}
