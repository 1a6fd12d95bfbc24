package scrape

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/brogergvhs/pokenames/internal/util"
)

const DefaultURL = "https://bulbapedia.bulbagarden.net/wiki/List_of_German_Pok%C3%A9mon_names"

type Result struct {
	Extraction
	Bytes int64
}

type Fetcher struct {
	client   *http.Client
	selector string
	log      interface{ Debugf(string, ...any) }
}

func NewFetcher(c *http.Client, selector string, log interface{ Debugf(string, ...any) }) *Fetcher {
	if selector == "" {
		selector = DefaultTableSelector
	}

	return &Fetcher{
		client:   c,
		selector: selector,
		log:      log,
	}
}

// Fetch makes a single GET request; there is no retry. progress, when set,
// receives the number of body bytes read so far.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string, progress func(done int64)) (Result, error) {
	doc, n, err := f.fetchDOM(ctx, pageURL, progress)
	if err != nil {
		return Result{}, err
	}

	f.debugf("fetched %s (%s)", pageURL, util.Human(n))

	ext, err := ExtractRecords(doc, f.selector)
	if err != nil {
		return Result{}, fmt.Errorf("extract %s: %w", pageURL, err)
	}

	f.debugf("extracted %d records from %d tables, skipped %d rows", len(ext.Records), ext.Tables, ext.Skipped)

	return Result{Extraction: ext, Bytes: n}, nil
}

func (f *Fetcher) fetchDOM(ctx context.Context, target string, progress func(done int64)) (*goquery.Document, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, 0, fmt.Errorf("fetch %s: HTTP %d", target, resp.StatusCode)
	}

	body := util.NewProgressReader(resp.Body, progress)
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", target, err)
	}

	return doc, body.Total(), nil
}

func (f *Fetcher) debugf(format string, args ...any) {
	if f.log != nil {
		f.log.Debugf(format, args...)
	}
}
