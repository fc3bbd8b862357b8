package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barangayhub/admin-api/internal/api/metrics"
	"github.com/barangayhub/admin-api/internal/core/domain"
	"github.com/barangayhub/admin-api/internal/core/ports"
)

// UserHandler handles the admin-only account management endpoints. The
// session, role, and method checks have already run by the time any of
// these methods execute.
type UserHandler struct {
	service ports.AccountService
}

func NewUserHandler(service ports.AccountService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List all user accounts
// @Tags         users
// @Produce      json
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return h.fail("list", err)
	}

	resp := listUsersResponse{Success: true, Users: make([]userResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}

	metrics.AccountOpsTotal.WithLabelValues("list", "success").Inc()
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/users/create.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New account details"
// @Success      200   {object}  createUserResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/users/create [post]
func (h *UserHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.service.Create(c.Request().Context(), actor, ports.CreateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      domain.Role(req.Role),
	})
	if err != nil {
		return h.fail("create", err)
	}

	metrics.AccountOpsTotal.WithLabelValues("create", "success").Inc()
	return c.JSON(http.StatusOK, createUserResponse{
		Success: true,
		Message: "User created successfully",
		User:    toUserResponse(*user),
	})
}

// Update handles POST|PUT /api/users/update.
//
// @Summary      Update a user account's names and role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "Updated account fields"
// @Success      200   {object}  updateUserResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/users/update [post]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.service.Update(c.Request().Context(), actor, ports.UpdateUserInput{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.Role(req.Role),
	})
	if err != nil {
		return h.fail("update", err)
	}

	metrics.AccountOpsTotal.WithLabelValues("update", "success").Inc()
	return c.JSON(http.StatusOK, updateUserResponse{
		Success: true,
		Message: "User updated successfully",
		User: updatedUser{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      string(user.Role),
		},
	})
}

// Delete handles POST|DELETE /api/users/delete.
//
// @Summary      Delete a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      deleteUserRequest  true  "Account to delete"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/users/delete [post]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := h.service.Delete(c.Request().Context(), actor, req.ID); err != nil {
		return h.fail("delete", err)
	}

	metrics.AccountOpsTotal.WithLabelValues("delete", "success").Inc()
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}

// ResetPassword handles POST /api/users/reset-password. The plaintext of
// the new password is returned once for the admin to relay to the user.
//
// @Summary      Reset a user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Target account and optional new password"
// @Success      200   {object}  resetPasswordResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/users/reset-password [post]
func (h *UserHandler) ResetPassword(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	password, err := h.service.ResetPassword(c.Request().Context(), actor, req.ID, req.Password)
	if err != nil {
		return h.fail("reset_password", err)
	}

	metrics.AccountOpsTotal.WithLabelValues("reset_password", "success").Inc()
	return c.JSON(http.StatusOK, resetPasswordResponse{
		Success:     true,
		Message:     "Password reset successfully",
		NewPassword: password,
	})
}

// fail counts the failed operation and hands the error to the central
// HTTP error handler.
func (h *UserHandler) fail(op string, err error) error {
	metrics.AccountOpsTotal.WithLabelValues(op, "failure").Inc()
	return err
}
