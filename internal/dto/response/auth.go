package response

import (
	"time"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
)

// SessionUser is the session payload echoed back to the client
type SessionUser struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type CustomerResponse struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func UserToSession(user *entity.User) SessionUser {
	return SessionUser{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

func UserToCustomer(user *entity.User) CustomerResponse {
	return CustomerResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func UsersToCustomers(users []*entity.User) []CustomerResponse {
	customers := make([]CustomerResponse, 0, len(users))
	for _, user := range users {
		customers = append(customers, UserToCustomer(user))
	}
	return customers
}
