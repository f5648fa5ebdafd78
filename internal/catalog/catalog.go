// Package catalog fetches the curated media catalog: a home document
// listing content rows, and one curated-set document per row. Both are
// plain JSON over HTTP; the fetchers dig the few fields the browse screen
// needs and skip records missing them.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// DefaultBaseURL is the public catalog root used when no override is
// configured.
const DefaultBaseURL = "https://cd-static.bamgrid.com/dp-117731241344"

const defaultTimeout = 15 * time.Second

// Row describes one content row of the home document: a display title and
// the reference id of the curated set holding the row's items.
type Row struct {
	Title string
	RefID string
}

// Client fetches catalog documents from a fixed base URL.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a catalog client. Empty base falls back to
// DefaultBaseURL; a non-positive timeout falls back to the default. A hung
// fetch surfaces as an error completion rather than a forever-pending row.
func NewClient(base string, timeout time.Duration) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the catalog root this client fetches from.
func (c *Client) BaseURL() string {
	return c.base
}

// FetchRows retrieves the collection document for catalogID (the home
// screen uses "home") and returns its rows in document order. Containers
// without a usable title or set reference are skipped.
func (c *Client) FetchRows(ctx context.Context, catalogID string) ([]Row, error) {
	var doc collectionDocument
	url := fmt.Sprintf("%s/%s.json", c.base, catalogID)
	if err := c.getJSON(ctx, url, &doc); err != nil {
		return nil, fmt.Errorf("fetch rows %q: %w", catalogID, err)
	}
	containers := doc.Data.StandardCollection.Containers
	rows := make([]Row, 0, len(containers))
	for _, container := range containers {
		title := container.Set.Text.Title.Full["set"].Default.Content
		refID := container.Set.RefID
		if title == "" || refID == "" {
			continue
		}
		rows = append(rows, Row{Title: title, RefID: refID})
	}
	return rows, nil
}

// FetchThumbnails retrieves the curated set behind refID and returns its
// items' tile image URLs in document order. For each item the
// lexicographically first aspect-ratio key is used, and within it the first
// variant carrying a URL; items without one are skipped.
func (c *Client) FetchThumbnails(ctx context.Context, refID string) ([]string, error) {
	var doc curatedSetDocument
	url := fmt.Sprintf("%s/sets/%s.json", c.base, refID)
	if err := c.getJSON(ctx, url, &doc); err != nil {
		return nil, fmt.Errorf("fetch set %q: %w", refID, err)
	}
	items := doc.Data.CuratedSet.Items
	refs := make([]string, 0, len(items))
	for _, item := range items {
		if url := item.tileURL(); url != "" {
			refs = append(refs, url)
		}
	}
	return refs, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

type collectionDocument struct {
	Data struct {
		StandardCollection struct {
			Containers []struct {
				Set struct {
					Text  textBlock `json:"text"`
					RefID string    `json:"refId"`
				} `json:"set"`
			} `json:"containers"`
		} `json:"StandardCollection"`
	} `json:"data"`
}

type textBlock struct {
	Title struct {
		Full map[string]struct {
			Default struct {
				Content string `json:"content"`
			} `json:"default"`
		} `json:"full"`
	} `json:"title"`
}

type curatedSetDocument struct {
	Data struct {
		CuratedSet struct {
			Items []curatedItem `json:"items"`
		} `json:"CuratedSet"`
	} `json:"data"`
}

type curatedItem struct {
	Image struct {
		Tile map[string]map[string]struct {
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"tile"`
	} `json:"image"`
}

// tileURL digs the item's tile image URL: lexicographically first aspect
// ratio, then the first variant under it with a URL.
func (i curatedItem) tileURL() string {
	aspects := make([]string, 0, len(i.Image.Tile))
	for aspect := range i.Image.Tile {
		aspects = append(aspects, aspect)
	}
	sort.Strings(aspects)
	for _, aspect := range aspects {
		variants := i.Image.Tile[aspect]
		names := make([]string, 0, len(variants))
		for name := range variants {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if url := variants[name].Default.URL; url != "" {
				return url
			}
		}
	}
	return ""
}
