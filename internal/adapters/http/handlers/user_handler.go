package handlers

import (
	"errors"

	"edilians-parkinfo/internal/adapters/persistence/models"
	"edilians-parkinfo/internal/core/domain"
	"edilians-parkinfo/internal/core/services"
	"edilians-parkinfo/internal/pkg/password"
	"edilians-parkinfo/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles the personnel directory endpoints
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    newValidator(),
	}
}

// UserRequest represents a full directory record as submitted by
// the wizard or the inline editor
type UserRequest struct {
	ID        string `json:"id" validate:"required"`
	Site      string `json:"site" validate:"required,site"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Function  string `json:"function" validate:"required,function"`
	Role      string `json:"role" validate:"required,oneof=Admin Manager User"`
	Password  string `json:"password" validate:"required"`
}

func (r *UserRequest) toRecord() models.User {
	return models.User{
		ID:        r.ID,
		Site:      r.Site,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Function:  r.Function,
		Role:      r.Role,
		Password:  r.Password,
	}
}

// ListUsers handles the directory table view: role filter, then
// search, then sort.
// @Summary List users
// @Description List directory accounts with optional role filter, search and sort
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter"
// @Param q query string false "Search query"
// @Param sort query string false "Sort field (id,firstName,lastName,site,function,role)"
// @Param dir query string false "Sort direction" default(asc)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users := h.userService.FilterByRole(c.Query("role"))
	users = services.SearchUsers(users, c.Query("q"))
	users = services.SortUsers(users, c.Query("sort"), services.SortDirection(c.Query("dir", "asc")))

	return response.Success(c, "Users retrieved successfully", fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// NextID previews the id the wizard will assign
// @Summary Next user id
// @Description Derive the next free directory account id
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /users/next-id [get]
func (h *UserHandler) NextID(c *fiber.Ctx) error {
	return response.Success(c, "Next id derived", fiber.Map{
		"id": h.userService.NextID(),
	})
}

// GeneratePassword hands the wizard a fresh account password
// @Summary Generate password
// @Description Generate a directory account password
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /users/password [get]
func (h *UserHandler) GeneratePassword(c *fiber.Ctx) error {
	return response.Success(c, "Password generated", fiber.Map{
		"password": password.Generate(),
	})
}

// CreateUser handles directory account creation
// @Summary Create user
// @Description Create a new directory account with a pre-assigned id
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UserRequest true "User record"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Invalid user record: "+err.Error())
	}

	user := req.toRecord()
	if err := h.userService.Create(c.Context(), user); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return response.Conflict(c, "User id already exists")
		}
		return response.InternalServerError(c, "Failed to create user")
	}

	return response.Created(c, "User created successfully", fiber.Map{
		"user": user,
	})
}

// UpdateUser handles full-record replace; the deleted flag is
// preserved from the stored record
// @Summary Update user
// @Description Replace a directory record (deleted flag preserved)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param body body UserRequest true "User record"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.ID = c.Params("id")
	if err := h.validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Invalid user record: "+err.Error())
	}

	if err := h.userService.Update(c.Context(), c.Params("id"), req.toRecord()); err != nil {
		return response.InternalServerError(c, "Failed to update user")
	}

	return response.Success(c, "User updated successfully", nil)
}

// ToggleDeleted handles soft-delete and restore
// @Summary Toggle user deletion
// @Description Flip the soft-delete flag on a directory account
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} response.Response
// @Router /users/{id}/deleted [patch]
func (h *UserHandler) ToggleDeleted(c *fiber.Ctx) error {
	user, err := h.userService.ToggleDeleted(c.Context(), c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to toggle user")
	}
	if user == nil {
		// Unknown id is a no-op, not an error
		return response.Success(c, "No matching user", nil)
	}

	return response.Success(c, "User toggled successfully", fiber.Map{
		"user": user,
	})
}

// DeleteUser handles hard deletion (Admin only)
// @Summary Delete user
// @Description Permanently remove a directory account (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.Remove(c.Context(), c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to delete user")
	}

	return response.Success(c, "User deleted successfully", nil)
}
