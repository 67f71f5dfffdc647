package query

import (
	"context"

	catalogdomain "github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/user/domain"
)

// ListUsersQuery represents the query to list users with an optional role
// filter
type ListUsersQuery struct {
	Role  string
	Page  int
	Limit int
}

// ListUsersResult carries one page of users.
type ListUsersResult struct {
	Users      []domain.User            `json:"users"`
	Pagination catalogdomain.Pagination `json:"pagination"`
}

// ListUsersHandler handles user listing queries
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	if q.Page < 1 {
		q.Page = catalogdomain.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = catalogdomain.DefaultLimit
	}

	users, total, err := h.repo.FindAll(ctx, q.Role, q.Limit, (q.Page-1)*q.Limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}

	return &ListUsersResult{
		Users:      users,
		Pagination: catalogdomain.NewPagination(q.Page, q.Limit, total),
	}, nil
}
