// Package investing scrapes index component quotes from an investing-style
// HTML page.
package investing

import (
	"os"
	"time"
)

// DefaultFeedURL is the index components page scraped when FEED_URL is unset.
const DefaultFeedURL = "https://tr.investing.com/indices/ise-100-components"

// Config holds configuration for the feed scraper.
type Config struct {
	FeedURL string        // Page holding the components table
	MaxIDs  int           // Number of fixed positional security ids (1..MaxIDs)
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads scraper configuration from environment variables.
func LoadConfig() Config {
	url := os.Getenv("FEED_URL")
	if url == "" {
		url = DefaultFeedURL
	}
	return Config{
		FeedURL: url,
		MaxIDs:  100,
		Timeout: 15 * time.Second,
	}
}
