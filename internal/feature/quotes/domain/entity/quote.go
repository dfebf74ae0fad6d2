// Package entity defines the domain entities for the quotes feature.
package entity

import "time"

// Quote is the latest scraped market snapshot of one security.
// Rows are written only by the scraping job (and admin tooling); the trade
// executor treats them as read-only.
type Quote struct {
	// ID is the stable, externally assigned security identifier. The feed
	// lists securities in a fixed order, so ids are positional (1..N).
	ID uint `gorm:"primaryKey"`

	// Name is the security's display name, refreshed on every scrape.
	Name string `gorm:"size:255;not null"`

	// PriceText is the last price exactly as it appeared in the feed,
	// e.g. "1.234,56". Parsing is validated at ingestion, but the raw text
	// is kept so reads can reject rows written by other paths.
	PriceText string `gorm:"size:64;not null"`

	// High, Low, Change and Volume are carried verbatim from the feed for
	// display purposes only; nothing in the trade path depends on them.
	High   string `gorm:"size:64"`
	Low    string `gorm:"size:64"`
	Change string `gorm:"size:64"`
	Volume string `gorm:"size:64"`

	// ScrapedAt is the time of the scrape that last refreshed this row.
	ScrapedAt time.Time `gorm:"not null"`
}

// TableName maps the entity onto the quotes table.
func (Quote) TableName() string {
	return "quotes"
}
