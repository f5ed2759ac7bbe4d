package usecase_test

import (
	"context"
	"errors"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/gateway"

	"github.com/shopspring/decimal"
)

// In-memory stand-ins for the repository interfaces. They hold just
// enough state to observe what a service did.

type cartKey struct {
	userID    int64
	productID int64
}

type fakeCartRepo struct {
	quantities map[cartKey]int
	cleared    []int64
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{quantities: make(map[cartKey]int)}
}

func (f *fakeCartRepo) Upsert(_ context.Context, userID, productID int64, quantity int) (bool, error) {
	key := cartKey{userID, productID}
	_, ok := f.quantities[key]
	f.quantities[key] += quantity
	return !ok, nil
}

func (f *fakeCartRepo) SetQuantity(_ context.Context, userID, productID int64, quantity int) (bool, error) {
	key := cartKey{userID, productID}
	if _, ok := f.quantities[key]; !ok {
		return false, nil
	}
	f.quantities[key] = quantity
	return true, nil
}

func (f *fakeCartRepo) Remove(_ context.Context, userID, productID int64) error {
	delete(f.quantities, cartKey{userID, productID})
	return nil
}

func (f *fakeCartRepo) Clear(_ context.Context, userID int64) error {
	f.cleared = append(f.cleared, userID)
	for key := range f.quantities {
		if key.userID == userID {
			delete(f.quantities, key)
		}
	}
	return nil
}

func (f *fakeCartRepo) FindByUser(_ context.Context, userID int64) ([]*entity.CartLine, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) FindAll(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindListings(context.Context, string, string) ([]*entity.ProductListing, error) {
	return nil, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, ids []int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) (int64, error) {
	id := int64(len(f.products) + 1)
	product.ID = id
	f.products[id] = product
	return id, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product, _ bool) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) CountAll(context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

type fakePaymentRepo struct {
	placedPayment *entity.Payment
	placedItems   []*entity.OrderItem
	created       []*entity.Payment
	paid          map[string][2]string
	failed        []string
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{paid: make(map[string][2]string)}
}

func (f *fakePaymentRepo) PlaceOrder(_ context.Context, payment *entity.Payment, items []*entity.OrderItem) (int64, error) {
	payment.ID = 101
	f.placedPayment = payment
	f.placedItems = items
	return payment.ID, nil
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) (int64, error) {
	payment.ID = int64(len(f.created) + 1)
	f.created = append(f.created, payment)
	return payment.ID, nil
}

func (f *fakePaymentRepo) MarkPaid(_ context.Context, gatewayOrderID, gatewayPaymentID, signature string) error {
	f.paid[gatewayOrderID] = [2]string{gatewayPaymentID, signature}
	return nil
}

func (f *fakePaymentRepo) MarkFailed(_ context.Context, gatewayOrderID string) error {
	f.failed = append(f.failed, gatewayOrderID)
	return nil
}

func (f *fakePaymentRepo) FindByGatewayOrderID(_ context.Context, gatewayOrderID string) (*entity.Payment, error) {
	for _, p := range f.created {
		if p.GatewayOrderID != nil && *p.GatewayOrderID == gatewayOrderID {
			return p, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	users           map[int64]*entity.User
	nextID          int64
	passwordUpdates map[int64]string
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{
		users:           make(map[int64]*entity.User),
		passwordUpdates: make(map[int64]string),
	}
	for _, u := range users {
		f.users[u.ID] = u
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) (int64, error) {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) CreateCustomer(ctx context.Context, username, email string) (int64, error) {
	return f.Create(ctx, &entity.User{Username: username, Email: email, Role: entity.RoleUser})
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role entity.UserRole) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, username, email string) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.Username = username
	u.Email = email
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.PasswordHash = passwordHash
	f.passwordUpdates[id] = passwordHash
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

type fakeAdminRepo struct {
	admins map[string]*entity.Admin
}

func newFakeAdminRepo(admins ...*entity.Admin) *fakeAdminRepo {
	m := make(map[string]*entity.Admin, len(admins))
	for _, a := range admins {
		m[a.Email] = a
	}
	return &fakeAdminRepo{admins: m}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) (int64, error) {
	admin.ID = int64(len(f.admins) + 1)
	f.admins[admin.Email] = admin
	return admin.ID, nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	return f.admins[email], nil
}

type fakeTokenRepo struct {
	tokens map[string]*entity.PasswordResetToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*entity.PasswordResetToken)}
}

func (f *fakeTokenRepo) Upsert(_ context.Context, userID int64, tokenHash string, expiry int64) error {
	for hash, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, hash)
		}
	}
	f.tokens[tokenHash] = &entity.PasswordResetToken{UserID: userID, TokenHash: tokenHash, Expiry: expiry}
	return nil
}

func (f *fakeTokenRepo) FindValid(_ context.Context, tokenHash string, nowMillis int64) (*entity.PasswordResetToken, error) {
	t, ok := f.tokens[tokenHash]
	if !ok || t.Expiry < nowMillis {
		return nil, nil
	}
	return t, nil
}

func (f *fakeTokenRepo) DeleteByUserID(_ context.Context, userID int64) error {
	for hash, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, hash)
		}
	}
	return nil
}

// fakeMailer forwards sends to a channel so tests can wait for the
// asynchronous delivery.
type fakeMailer struct {
	sent chan sentMail
}

type sentMail struct {
	to   string
	body string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan sentMail, 4)}
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.sent <- sentMail{to: to, body: htmlBody}
	return nil
}

type fakeGateway struct {
	order      *gateway.Order
	createErr  error
	verifyWith bool
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount decimal.Decimal, currency, receipt string) (*gateway.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	order := *f.order
	order.Amount = amount.Mul(decimal.NewFromInt(100)).IntPart()
	order.Currency = currency
	order.Receipt = receipt
	return &order, nil
}

func (f *fakeGateway) VerifySignature(_, _, _ string) bool {
	return f.verifyWith
}
