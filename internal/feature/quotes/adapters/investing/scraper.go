package investing

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"broker_backend/internal/feature/quotes/domain/entity"
	"broker_backend/internal/feature/quotes/usecase"
)

// Scraper is a FeedScraper implementation that parses the components table
// of an investing-style HTML page.
type Scraper struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Scraper implements FeedScraper.
var _ usecase.FeedScraper = (*Scraper)(nil)

// NewScraper creates a new Scraper with the given config and HTTP client.
func NewScraper(cfg Config, client *http.Client) *Scraper {
	return &Scraper{cfg: cfg, client: client}
}

// Fetch downloads the feed page and extracts one quote per table row.
//
// Security ids are positional: the feed lists the same components in the
// same order on every scrape, so row N is always id N. Rows beyond
// cfg.MaxIDs are ignored, as are rows with fewer cells than the components
// table layout (header rows, ad rows).
func (s *Scraper) Fetch(ctx context.Context) ([]entity.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.FeedURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("feed http %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("feed page has no table")
	}

	return s.parseTable(table), nil
}

// parseTable walks the table rows and builds quotes from the cell layout
// [_, name, last, high, low, change, volume, _, time].
func (s *Scraper) parseTable(table *goquery.Selection) []entity.Quote {
	var quotes []entity.Quote
	nextID := uint(1)

	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if int(nextID) > s.cfg.MaxIDs {
			return false
		}
		cells := row.Find("td")
		if cells.Length() < 9 {
			return true // header or filler row
		}

		text := func(i int) string {
			return strings.TrimSpace(cells.Eq(i).Text())
		}

		quotes = append(quotes, entity.Quote{
			ID:        nextID,
			Name:      text(1),
			PriceText: text(2),
			High:      text(3),
			Low:       text(4),
			Change:    text(5),
			Volume:    text(6),
		})
		nextID++
		return true
	})

	return quotes
}
