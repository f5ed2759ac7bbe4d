package usecase

import (
	"context"
	"fmt"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

// CustomerService is the admin-facing directory of shop customers.
// Customers created here have no password and cannot log in until they
// complete a password reset.
type CustomerService interface {
	List(ctx context.Context) ([]response.CustomerResponse, error)
	Get(ctx context.Context, id int64) (*response.CustomerResponse, error)
	Create(ctx context.Context, req *request.CustomerRequest) (int64, error)
	Update(ctx context.Context, id int64, req *request.CustomerRequest) error
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		userRepo: repo.User,
		log:      log,
	}
}

func (cs *customerService) List(ctx context.Context) ([]response.CustomerResponse, error) {
	users, err := cs.userRepo.FindAll(ctx)
	if err != nil {
		cs.log.Error("Failed to list customers", zap.Error(err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return response.UsersToCustomers(users), nil
}

func (cs *customerService) Get(ctx context.Context, id int64) (*response.CustomerResponse, error) {
	user, err := cs.userRepo.FindByID(ctx, id)
	if err != nil {
		cs.log.Error("Failed to get customer", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound("Customer not found")
	}
	resp := response.UserToCustomer(user)
	return &resp, nil
}

func (cs *customerService) Create(ctx context.Context, req *request.CustomerRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return 0, ErrValidation(utils.FormatValidationErrors(errs))
	}

	existing, err := cs.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		cs.log.Error("Failed to check existing customer", zap.Error(err), zap.String("email", req.Email))
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}
	if existing != nil {
		return 0, ErrConflict("Email already registered")
	}

	id, err := cs.userRepo.CreateCustomer(ctx, req.Username, req.Email)
	if err != nil {
		cs.log.Error("Failed to create customer", zap.Error(err), zap.String("email", req.Email))
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}

	cs.log.Info("Customer created", zap.Int64("user_id", id), zap.String("email", req.Email))
	return id, nil
}

func (cs *customerService) Update(ctx context.Context, id int64, req *request.CustomerRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}

	user, err := cs.userRepo.FindByID(ctx, id)
	if err != nil {
		cs.log.Error("Failed to get customer", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if user == nil {
		return ErrNotFound("Customer not found")
	}

	if err := cs.userRepo.UpdateProfile(ctx, id, req.Username, req.Email); err != nil {
		cs.log.Error("Failed to update customer", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("failed to update customer: %w", err)
	}

	cs.log.Info("Customer updated", zap.Int64("user_id", id))
	return nil
}

func (cs *customerService) Delete(ctx context.Context, id int64) error {
	user, err := cs.userRepo.FindByID(ctx, id)
	if err != nil {
		cs.log.Error("Failed to get customer", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if user == nil {
		return ErrNotFound("Customer not found")
	}

	if err := cs.userRepo.Delete(ctx, id); err != nil {
		cs.log.Error("Failed to delete customer", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	cs.log.Info("Customer deleted", zap.Int64("user_id", id))
	return nil
}
