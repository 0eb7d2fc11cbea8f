package handler

import (
	"strconv"

	"github.com/deppfellow/user-service/internal/middleware"
	"github.com/deppfellow/user-service/internal/repository"
	"github.com/deppfellow/user-service/internal/server"
	"github.com/deppfellow/user-service/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// UserHandler exposes the users CRUD endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler on the user service.
func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// ListUsersRequest carries the list query parameters. Skip and Take
// bind as strings so non-numeric values fall back to defaults during
// normalization instead of failing the bind.
type ListUsersRequest struct {
	Q     string `query:"q"`
	Sort  string `query:"sort"`
	Order string `query:"order"`
	Skip  string `query:"skip"`
	Take  string `query:"take"`
}

// Validate always passes: every list parameter has a defined fallback.
func (r *ListUsersRequest) Validate() error { return nil }

// GetUserRequest identifies a single user by path parameter.
type GetUserRequest struct {
	ID int64 `param:"id"`
}

func (r *GetUserRequest) Validate() error { return nil }

// CreateUserRequest is the POST /users payload.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateUserRequest is the PUT /users/:id payload. Pointer fields
// distinguish "absent" from "empty": absent fields keep their current
// values.
type UpdateUserRequest struct {
	ID        int64   `param:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// Validate always passes: the merged record is validated by the
// service, where the current values are known.
func (r *UpdateUserRequest) Validate() error { return nil }

// DeleteUserRequest identifies the user to remove.
type DeleteUserRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteUserRequest) Validate() error { return nil }

// List returns the filtered/sorted/paginated users as a JSON array and
// sets the total-count header so clients can build pager UIs without a
// second request.
func (h *UserHandler) List(c echo.Context, req *ListUsersRequest) ([]repository.User, error) {
	users, total, err := h.users.List(c.Request().Context(), service.ListQuery{
		Q:     req.Q,
		Sort:  req.Sort,
		Order: req.Order,
		Skip:  req.Skip,
		Take:  req.Take,
	})
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(middleware.TotalCountHeader, strconv.Itoa(total))
	return users, nil
}

// Get returns a single user by id.
func (h *UserHandler) Get(c echo.Context, req *GetUserRequest) (*repository.User, error) {
	return h.users.Get(c.Request().Context(), req.ID)
}

// Create inserts a new user and returns it with assigned id and
// timestamps.
func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (*repository.User, error) {
	return h.users.Create(c.Request().Context(), service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
}

// Update applies a partial update and returns the updated user.
func (h *UserHandler) Update(c echo.Context, req *UpdateUserRequest) (*repository.User, error) {
	return h.users.Update(c.Request().Context(), req.ID, service.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
}

// Delete removes a user permanently.
func (h *UserHandler) Delete(c echo.Context, req *DeleteUserRequest) error {
	return h.users.Delete(c.Request().Context(), req.ID)
}
