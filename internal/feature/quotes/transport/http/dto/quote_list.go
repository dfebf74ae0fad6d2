// Package dto defines data transfer objects for the quotes feature's HTTP
// transport layer.
package dto

import "time"

// QuoteItem is one security row in the quote listing response.
type QuoteItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	LastPrice string    `json:"last_price"`
	High      string    `json:"high"`
	Low       string    `json:"low"`
	Change    string    `json:"change"`
	Volume    string    `json:"volume"`
	ScrapedAt time.Time `json:"scraped_at"`
}
