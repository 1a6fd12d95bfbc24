// Package dex answers name and number lookups over the slug list written by
// the slug generator. Position i in the list (0-based) is dex number i+1.
package dex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/brogergvhs/pokenames/internal/names"
)

var ErrNotFound = errors.New("pokemon not found")

type Pokemon struct {
	Dex int
	names.SlugRecord
}

type List struct {
	records []names.SlugRecord
	bySlug  map[string]int
}

// New indexes records in order. A slug listed twice resolves to its first
// position.
func New(records []names.SlugRecord) *List {
	l := &List{
		records: records,
		bySlug:  make(map[string]int, len(records)),
	}

	for i, r := range records {
		if _, ok := l.bySlug[r.Slug]; !ok {
			l.bySlug[r.Slug] = i
		}
	}

	return l
}

func Load(r io.Reader) (*List, error) {
	records, err := names.ReadSlugRecords(r)
	if err != nil {
		return nil, err
	}

	return New(records), nil
}

func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list: %w", err)
	}
	defer f.Close()

	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load list %s: %w", path, err)
	}

	return l, nil
}

func (l *List) Len() int {
	return len(l.records)
}

func (l *List) Entry(dex int) (Pokemon, bool) {
	if dex < 1 || dex > len(l.records) {
		return Pokemon{}, false
	}

	return Pokemon{Dex: dex, SlugRecord: l.records[dex-1]}, true
}

// ByDex returns the slug for a national dex number.
func (l *List) ByDex(dex int) (string, error) {
	p, ok := l.Entry(dex)
	if !ok {
		return "", fmt.Errorf("%w: dex number %d", ErrNotFound, dex)
	}

	return p.Slug, nil
}

func (l *List) BySlug(slug string) (Pokemon, bool) {
	i, ok := l.bySlug[slug]
	if !ok {
		return Pokemon{}, false
	}

	return Pokemon{Dex: i + 1, SlugRecord: l.records[i]}, true
}

// ByName matches German names first, then English ones, ignoring case.
func (l *List) ByName(name string) (string, error) {
	want := lower(name)

	for _, r := range l.records {
		if lower(r.GermanName) == want {
			return r.Slug, nil
		}
	}
	for _, r := range l.records {
		if lower(r.Name) == want {
			return r.Slug, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}

// FormatName returns the German display name for a slug. Unknown slugs are
// turned back into words and title-cased.
func (l *List) FormatName(slug string) string {
	if p, ok := l.BySlug(slug); ok {
		return p.GermanName
	}

	raw := strings.ReplaceAll(slug, "-", " ")
	raw = strings.ReplaceAll(raw, "'", "")

	return cases.Title(language.Und).String(raw)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
