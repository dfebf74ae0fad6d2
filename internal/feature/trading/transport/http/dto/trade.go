// Package dto defines data transfer objects for the trading feature's HTTP
// transport layer.
package dto

import "time"

// TradeReq is the request body for /trade/buy and /trade/sell.
type TradeReq struct {
	Username string `json:"username" binding:"required"`
	StockID  uint   `json:"stock_id" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
}

// HoldingItem is one position row in the holdings response.
type HoldingItem struct {
	StockName     string    `json:"stock_name"`
	Quantity      int64     `json:"quantity"`
	PurchasePrice string    `json:"purchase_price"`
	PurchaseDate  time.Time `json:"purchase_date"`
}

// TransactionItem is one row of the transaction log response.
type TransactionItem struct {
	ID              uint      `json:"id"`
	Username        string    `json:"username"`
	StockName       string    `json:"stock_name"`
	TransactionType string    `json:"transaction_type"`
	Quantity        int64     `json:"quantity"`
	Price           string    `json:"price"`
	TransactionDate time.Time `json:"transaction_date"`
}
