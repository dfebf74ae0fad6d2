// Package dto defines data transfer objects for the admin feature's HTTP
// transport layer.
package dto

import "time"

// CreateUserReq is the request body for POST /admin/users.
type CreateUserReq struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// BalanceOverrideReq is the request body for POST /admin/balance.
// Amount is a signed decimal string, e.g. "-150.25".
type BalanceOverrideReq struct {
	Username string `json:"username" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
}

// HoldingOverrideReq is the request body for POST /admin/holdings.
type HoldingOverrideReq struct {
	Username  string `json:"username" binding:"required"`
	StockName string `json:"stock_name" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required"`
}

// UserItem is one row of the user listing response.
type UserItem struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// HoldingItem is one position row inside UserDetailsResp.
type HoldingItem struct {
	StockName    string    `json:"stock_name"`
	Quantity     int64     `json:"quantity"`
	PurchaseDate time.Time `json:"purchase_date"`
}

// UserDetailsResp is the response body of the user details endpoint.
type UserDetailsResp struct {
	Username string        `json:"username"`
	Balance  string        `json:"balance"`
	Holdings []HoldingItem `json:"holdings"`
}
