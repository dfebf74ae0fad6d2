package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"broker_backend/internal/feature/admin/usecase"
)

// mockAdminUsecase is a mock implementation of the AdminUsecase interface.
type mockAdminUsecase struct {
	ListUsersFunc       func(ctx context.Context) ([]usecase.UserSummary, error)
	CreateUserFunc      func(ctx context.Context, username, password, role string) error
	DeleteUserFunc      func(ctx context.Context, username string) error
	UserDetailsFunc     func(ctx context.Context, username string) (*usecase.UserDetails, error)
	AdjustBalanceFunc   func(ctx context.Context, username string, delta decimal.Decimal) error
	OverrideHoldingFunc func(ctx context.Context, username, stockName string, delta int64) error
}

func (m *mockAdminUsecase) ListUsers(ctx context.Context) ([]usecase.UserSummary, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminUsecase) CreateUser(ctx context.Context, username, password, role string) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, username, password, role)
	}
	return nil
}

func (m *mockAdminUsecase) DeleteUser(ctx context.Context, username string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, username)
	}
	return nil
}

func (m *mockAdminUsecase) UserDetails(ctx context.Context, username string) (*usecase.UserDetails, error) {
	if m.UserDetailsFunc != nil {
		return m.UserDetailsFunc(ctx, username)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockAdminUsecase) AdjustBalance(ctx context.Context, username string, delta decimal.Decimal) error {
	if m.AdjustBalanceFunc != nil {
		return m.AdjustBalanceFunc(ctx, username, delta)
	}
	return nil
}

func (m *mockAdminUsecase) OverrideHolding(ctx context.Context, username, stockName string, delta int64) error {
	if m.OverrideHoldingFunc != nil {
		return m.OverrideHoldingFunc(ctx, username, stockName, delta)
	}
	return nil
}

func adminRouter(uc AdminUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(uc)
	r := gin.New()
	r.GET("/admin/users", h.ListUsers)
	r.POST("/admin/users", h.CreateUser)
	r.DELETE("/admin/users/:username", h.DeleteUser)
	r.GET("/admin/users/:username/details", h.UserDetails)
	r.POST("/admin/balance", h.AdjustBalance)
	r.POST("/admin/holdings", h.OverrideHolding)
	return r
}

func postJSON(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminHandler_ListUsers(t *testing.T) {
	uc := &mockAdminUsecase{
		ListUsersFunc: func(ctx context.Context) ([]usecase.UserSummary, error) {
			return []usecase.UserSummary{
				{ID: 1, Username: "alice", Role: "admin"},
				{ID: 2, Username: "bob", Role: "user"},
			}, nil
		},
	}

	req, _ := http.NewRequest(http.MethodGet, "/admin/users", nil)
	w := httptest.NewRecorder()
	adminRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestAdminHandler_CreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockAdminUsecase{}
		w := postJSON(adminRouter(uc), "/admin/users",
			gin.H{"username": "carol", "password": "password123", "role": "user"})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid role fails validation", func(t *testing.T) {
		w := postJSON(adminRouter(&mockAdminUsecase{}), "/admin/users",
			gin.H{"username": "carol", "password": "password123", "role": "superuser"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("usecase failure maps to 409", func(t *testing.T) {
		uc := &mockAdminUsecase{
			CreateUserFunc: func(ctx context.Context, username, password, role string) error {
				return errors.New("username taken")
			},
		}
		w := postJSON(adminRouter(uc), "/admin/users",
			gin.H{"username": "carol", "password": "password123"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockAdminUsecase{}
		req, _ := http.NewRequest(http.MethodDelete, "/admin/users/alice", nil)
		w := httptest.NewRecorder()
		adminRouter(uc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		uc := &mockAdminUsecase{
			DeleteUserFunc: func(ctx context.Context, username string) error {
				return usecase.ErrUserNotFound
			},
		}
		req, _ := http.NewRequest(http.MethodDelete, "/admin/users/ghost", nil)
		w := httptest.NewRecorder()
		adminRouter(uc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminHandler_UserDetails(t *testing.T) {
	uc := &mockAdminUsecase{
		UserDetailsFunc: func(ctx context.Context, username string) (*usecase.UserDetails, error) {
			return &usecase.UserDetails{
				Username: username,
				Balance:  decimal.RequireFromString("123.45"),
				Holdings: []usecase.HoldingSummary{{StockName: "ACME", Quantity: 10}},
			}, nil
		},
	}

	req, _ := http.NewRequest(http.MethodGet, "/admin/users/alice/details", nil)
	w := httptest.NewRecorder()
	adminRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"balance":"123.45"`)
	assert.Contains(t, w.Body.String(), `"stock_name":"ACME"`)
}

func TestAdminHandler_AdjustBalance(t *testing.T) {
	t.Run("parses the signed amount", func(t *testing.T) {
		var gotDelta decimal.Decimal
		uc := &mockAdminUsecase{
			AdjustBalanceFunc: func(ctx context.Context, username string, delta decimal.Decimal) error {
				gotDelta = delta
				return nil
			},
		}
		w := postJSON(adminRouter(uc), "/admin/balance",
			gin.H{"username": "alice", "amount": "-150.25"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotDelta.Equal(decimal.RequireFromString("-150.25")), "got %s", gotDelta)
	})

	t.Run("non-decimal amount is rejected", func(t *testing.T) {
		w := postJSON(adminRouter(&mockAdminUsecase{}), "/admin/balance",
			gin.H{"username": "alice", "amount": "lots"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative result maps to 400", func(t *testing.T) {
		uc := &mockAdminUsecase{
			AdjustBalanceFunc: func(ctx context.Context, username string, delta decimal.Decimal) error {
				return usecase.ErrNegativeResult
			},
		}
		w := postJSON(adminRouter(uc), "/admin/balance",
			gin.H{"username": "alice", "amount": "-1000.00"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		uc := &mockAdminUsecase{
			AdjustBalanceFunc: func(ctx context.Context, username string, delta decimal.Decimal) error {
				return usecase.ErrUserNotFound
			},
		}
		w := postJSON(adminRouter(uc), "/admin/balance",
			gin.H{"username": "ghost", "amount": "10.00"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminHandler_OverrideHolding(t *testing.T) {
	t.Run("forwards the delta", func(t *testing.T) {
		var got struct {
			username  string
			stockName string
			delta     int64
		}
		uc := &mockAdminUsecase{
			OverrideHoldingFunc: func(ctx context.Context, username, stockName string, delta int64) error {
				got.username, got.stockName, got.delta = username, stockName, delta
				return nil
			},
		}
		w := postJSON(adminRouter(uc), "/admin/holdings",
			gin.H{"username": "alice", "stock_name": "ACME", "quantity": -3})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", got.username)
		assert.Equal(t, "ACME", got.stockName)
		assert.Equal(t, int64(-3), got.delta)
	})

	t.Run("negative result maps to 400", func(t *testing.T) {
		uc := &mockAdminUsecase{
			OverrideHoldingFunc: func(ctx context.Context, username, stockName string, delta int64) error {
				return usecase.ErrNegativeResult
			},
		}
		w := postJSON(adminRouter(uc), "/admin/holdings",
			gin.H{"username": "alice", "stock_name": "ACME", "quantity": -99})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
