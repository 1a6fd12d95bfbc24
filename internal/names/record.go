// Package names holds the record types shared by the fetch and slug
// pipelines and the on-disk formats they read and write.
package names

import "github.com/brogergvhs/pokenames/internal/slug"

// NameRecord is one qualifying table row scraped from the name list page.
type NameRecord struct {
	DexNumber   string
	EnglishName string
	GermanName  string
}

// Entry is one line of slug generator input: index,name,german_name.
type Entry struct {
	Index      string
	Name       string
	GermanName string
}

type SlugRecord struct {
	Name       string
	GermanName string
	Slug       string
}

// BuildSlugRecords keeps input order. The slug depends on Name only.
func BuildSlugRecords(entries []Entry) []SlugRecord {
	out := make([]SlugRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, SlugRecord{
			Name:       e.Name,
			GermanName: e.GermanName,
			Slug:       slug.Make(e.Name),
		})
	}

	return out
}
