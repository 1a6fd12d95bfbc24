package scrape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/brogergvhs/pokenames/internal/names"
)

const DefaultTableSelector = "table.roundy.roundtable"

var (
	ErrNoTables = errors.New("no name tables found")
	ErrShortRow = errors.New("row has cells but no english and german name columns")
)

type Extraction struct {
	Records []names.NameRecord
	Tables  int
	Skipped int
}

// RowRecord maps the td texts of one row to a record: dex number, english
// name and german name are cells 1, 3 and 4. Rows with fewer than two cells
// are skipped; rows with two or three cells are an error.
func RowRecord(cells []string) (names.NameRecord, bool, error) {
	if len(cells) < 2 {
		return names.NameRecord{}, false, nil
	}
	if len(cells) < 4 {
		return names.NameRecord{}, false, fmt.Errorf("%w (got %d cells)", ErrShortRow, len(cells))
	}

	return names.NameRecord{
		DexNumber:   cells[0],
		EnglishName: cells[2],
		GermanName:  cells[3],
	}, true, nil
}

func ExtractRecords(doc *goquery.Document, selector string) (Extraction, error) {
	if selector == "" {
		selector = DefaultTableSelector
	}

	tables := doc.Find(selector)
	if tables.Length() == 0 {
		return Extraction{}, fmt.Errorf("%w (selector %q)", ErrNoTables, selector)
	}

	ext := Extraction{Tables: tables.Length()}
	var rowErr error

	tables.EachWithBreak(func(ti int, table *goquery.Selection) bool {
		table.Find("tr").EachWithBreak(func(ri int, tr *goquery.Selection) bool {
			var cells []string
			tr.Find("td").Each(func(_ int, td *goquery.Selection) {
				cells = append(cells, cellText(td))
			})

			rec, ok, err := RowRecord(cells)
			if err != nil {
				rowErr = fmt.Errorf("table %d row %d: %w", ti+1, ri+1, err)
				return false
			}
			if !ok {
				ext.Skipped++
				return true
			}

			ext.Records = append(ext.Records, rec)
			return true
		})

		return rowErr == nil
	})

	if rowErr != nil {
		return Extraction{}, rowErr
	}

	return ext, nil
}

// cellText trims every text fragment under the cell, drops the empty ones and
// concatenates the rest without a separator.
func cellText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		collectText(&b, n)
	}

	return b.String()
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			b.WriteString(t)
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
