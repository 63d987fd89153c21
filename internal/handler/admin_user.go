package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-package-booking/internal/domain"
	"github.com/iliyamo/travel-package-booking/internal/model"
	"github.com/iliyamo/travel-package-booking/internal/repository"
)

// AdminUserHandler covers account administration: listing, blocking and
// deleting users. Admin accounts are immune to block and delete, which
// also guarantees the system can never lose its last administrator.
type AdminUserHandler struct {
	Users *repository.UserRepo
}

func NewAdminUserHandler(u *repository.UserRepo) *AdminUserHandler {
	return &AdminUserHandler{Users: u}
}

type adminUserPart struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsBlocked bool   `json:"is_blocked"`
	CreatedAt string `json:"created_at"`
}

func toAdminUserPart(u model.User) adminUserPart {
	return adminUserPart{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type blockReq struct {
	Blocked bool `json:"blocked"`
}

// List returns every account without password hashes.
func (h *AdminUserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list users failed"})
	}
	items := make([]adminUserPart, 0, len(users))
	for _, u := range users {
		items = append(items, toAdminUserPart(u))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// SetBlocked toggles a non-admin account's blocked flag. Setting the
// current value again succeeds without effect.
func (h *AdminUserHandler) SetBlocked(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var req blockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	target, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	if domain.ParseRole(target.Role) == domain.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "admin accounts cannot be blocked"})
	}

	if err := h.Users.SetBlocked(ctx, id, req.Blocked); err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "is_blocked": req.Blocked})
}

// Delete removes a non-admin account. The user's bookings are kept for
// the records; their display name lives on in the booking snapshot.
func (h *AdminUserHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	target, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	if domain.ParseRole(target.Role) == domain.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "admin accounts cannot be deleted"})
	}

	if err := h.Users.Delete(ctx, id); err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete user failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
