// Package handler provides the HTTP handlers of the admin feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"broker_backend/internal/feature/admin/transport/http/dto"
	"broker_backend/internal/feature/admin/usecase"
)

// AdminUsecase is the administration contract consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]usecase.UserSummary, error)
	CreateUser(ctx context.Context, username, password, role string) error
	DeleteUser(ctx context.Context, username string) error
	UserDetails(ctx context.Context, username string) (*usecase.UserDetails, error)
	AdjustBalance(ctx context.Context, username string, delta decimal.Decimal) error
	OverrideHolding(ctx context.Context, username, stockName string, delta int64) error
}

// AdminHandler handles HTTP requests for the administration surface.
type AdminHandler struct {
	admin AdminUsecase
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(admin AdminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	out := make([]dto.UserItem, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserItem{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	c.JSON(http.StatusOK, out)
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.admin.CreateUser(c.Request.Context(), req.Username, req.Password, req.Role); err != nil {
		slog.Warn("admin create user failed", "username", req.Username, "error", err)
		c.JSON(http.StatusConflict, gin.H{"error": "could not create user"})
		return
	}
	slog.Info("admin created user", "username", req.Username, "role", req.Role)
	c.JSON(http.StatusCreated, gin.H{"message": "user created"})
}

// DeleteUser handles DELETE /admin/users/:username.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if err := h.admin.DeleteUser(c.Request.Context(), username); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("admin delete user failed", "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete user"})
		return
	}
	slog.Info("admin deleted user", "username", username)
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// UserDetails handles GET /admin/users/:username/details.
func (h *AdminHandler) UserDetails(c *gin.Context) {
	username := c.Param("username")
	details, err := h.admin.UserDetails(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("admin user details failed", "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user details"})
		return
	}

	resp := dto.UserDetailsResp{
		Username: details.Username,
		Balance:  details.Balance.String(),
		Holdings: make([]dto.HoldingItem, 0, len(details.Holdings)),
	}
	for _, hd := range details.Holdings {
		resp.Holdings = append(resp.Holdings, dto.HoldingItem{
			StockName:    hd.StockName,
			Quantity:     hd.Quantity,
			PurchaseDate: hd.PurchaseDate,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// AdjustBalance handles POST /admin/balance.
func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	var req dto.BalanceOverrideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	delta, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal"})
		return
	}

	if err := h.admin.AdjustBalance(c.Request.Context(), req.Username, delta); err != nil {
		h.writeOverrideError(c, "balance", req.Username, err)
		return
	}
	slog.Info("admin adjusted balance", "username", req.Username, "amount", req.Amount)
	c.JSON(http.StatusOK, gin.H{"message": "balance updated"})
}

// OverrideHolding handles POST /admin/holdings.
func (h *AdminHandler) OverrideHolding(c *gin.Context) {
	var req dto.HoldingOverrideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.admin.OverrideHolding(c.Request.Context(), req.Username, req.StockName, req.Quantity); err != nil {
		h.writeOverrideError(c, "holding", req.Username, err)
		return
	}
	slog.Info("admin overrode holding", "username", req.Username,
		"stock_name", req.StockName, "quantity", req.Quantity)
	c.JSON(http.StatusOK, gin.H{"message": "holding updated"})
}

func (h *AdminHandler) writeOverrideError(c *gin.Context, kind, username string, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNegativeResult):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("admin override failed", "kind", kind, "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "override failed"})
	}
}
