package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every user account without password hashes.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", users)
}

// Get returns a single user by ID.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", user)
}

// Update patches a user's name, email or role. ADMIN only.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := ports.UserPatch{Name: req.Name, Email: req.Email}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}

	user, err := h.userService.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user updated successfully", user)
}

// UpdateRole changes a user's role. ADMIN only.
//
// @Summary      Update user role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Router       /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateRole(c.Request().Context(), c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user role updated successfully", user)
}

// UpdateStatus activates or deactivates an account. ADMIN only.
//
// @Summary      Update user status
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "User ID"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Router       /users/{id}/status [patch]
func (h *UserHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateStatus(c.Request().Context(), c.Param("id"), domain.UserStatus(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user status updated successfully", user)
}

// Delete removes an account. ADMIN only; self-deletion is refused.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response
// @Failure      400  {object}  response
// @Failure      404  {object}  response
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), identity.UserID, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user deleted successfully", nil)
}
