package usecase_test

import (
	"context"
	"testing"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intPtr(n int) *int { return &n }

func newCartService(t *testing.T, cart *fakeCartRepo, products *fakeProductRepo) usecase.CartService {
	t.Helper()
	repo := &repository.Repository{Cart: cart, Product: products}
	return usecase.NewCartService(repo, zap.NewNop())
}

func requireKind(t *testing.T, err error, kind usecase.Kind) {
	t.Helper()
	var svcErr *usecase.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, kind, svcErr.Kind)
}

func TestCartAddAccumulatesQuantity(t *testing.T) {
	cart := newFakeCartRepo()
	products := newFakeProductRepo(&entity.Product{ID: 7, Name: "Dog Food", Price: decimal.NewFromInt(1200)})
	svc := newCartService(t, cart, products)

	created, err := svc.Add(context.Background(), 1, &request.AddCartItemRequest{ProductID: 7, Quantity: intPtr(2)})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Add(context.Background(), 1, &request.AddCartItemRequest{ProductID: 7, Quantity: intPtr(3)})
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, 5, cart.quantities[cartKey{userID: 1, productID: 7}])
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc := newCartService(t, newFakeCartRepo(), newFakeProductRepo())

	_, err := svc.Add(context.Background(), 1, &request.AddCartItemRequest{ProductID: 99, Quantity: intPtr(1)})
	requireKind(t, err, usecase.KindNotFound)
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	products := newFakeProductRepo(&entity.Product{ID: 7})
	svc := newCartService(t, newFakeCartRepo(), products)

	_, err := svc.Add(context.Background(), 1, &request.AddCartItemRequest{ProductID: 7, Quantity: intPtr(0)})
	requireKind(t, err, usecase.KindValidation)

	_, err = svc.Add(context.Background(), 1, &request.AddCartItemRequest{ProductID: 7, Quantity: intPtr(-2)})
	requireKind(t, err, usecase.KindValidation)
}

func TestCartSetQuantityMissingLine(t *testing.T) {
	svc := newCartService(t, newFakeCartRepo(), newFakeProductRepo())

	err := svc.SetQuantity(context.Background(), 1, &request.SetCartItemRequest{ProductID: 7, Quantity: intPtr(4)})
	requireKind(t, err, usecase.KindNotFound)
}

func TestCartSetQuantityOverwrites(t *testing.T) {
	cart := newFakeCartRepo()
	cart.quantities[cartKey{userID: 1, productID: 7}] = 2
	svc := newCartService(t, cart, newFakeProductRepo())

	err := svc.SetQuantity(context.Background(), 1, &request.SetCartItemRequest{ProductID: 7, Quantity: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, 9, cart.quantities[cartKey{userID: 1, productID: 7}])
}

func TestCartClearDropsOnlyThatUser(t *testing.T) {
	cart := newFakeCartRepo()
	cart.quantities[cartKey{userID: 1, productID: 7}] = 2
	cart.quantities[cartKey{userID: 1, productID: 8}] = 1
	cart.quantities[cartKey{userID: 2, productID: 7}] = 4
	svc := newCartService(t, cart, newFakeProductRepo())

	require.NoError(t, svc.Clear(context.Background(), 1))

	assert.NotContains(t, cart.quantities, cartKey{userID: 1, productID: 7})
	assert.NotContains(t, cart.quantities, cartKey{userID: 1, productID: 8})
	assert.Equal(t, 4, cart.quantities[cartKey{userID: 2, productID: 7}])
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	cart := newFakeCartRepo()
	svc := newCartService(t, cart, newFakeProductRepo())

	err := svc.Remove(context.Background(), 1, &request.RemoveCartItemRequest{ProductID: 7})
	require.NoError(t, err)

	cart.quantities[cartKey{userID: 1, productID: 7}] = 3
	require.NoError(t, svc.Remove(context.Background(), 1, &request.RemoveCartItemRequest{ProductID: 7}))
	require.NoError(t, svc.Remove(context.Background(), 1, &request.RemoveCartItemRequest{ProductID: 7}))
	assert.Empty(t, cart.quantities)
}
