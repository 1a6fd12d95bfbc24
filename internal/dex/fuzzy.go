package dex

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

type Match struct {
	Name     string
	Slug     string
	Distance int
}

// Candidates ranks German names, then English names, by edit distance to
// query. Equal distances keep that order. Each slug appears once.
func (l *List) Candidates(query string, n int) []Match {
	if n <= 0 || len(l.records) == 0 {
		return nil
	}

	q := lower(query)
	all := make([]Match, 0, 2*len(l.records))

	for _, r := range l.records {
		all = append(all, Match{Name: r.GermanName, Slug: r.Slug, Distance: levenshtein.ComputeDistance(q, lower(r.GermanName))})
	}
	for _, r := range l.records {
		all = append(all, Match{Name: r.Name, Slug: r.Slug, Distance: levenshtein.ComputeDistance(q, lower(r.Name))})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Distance < all[j].Distance
	})

	seen := map[string]bool{}
	out := make([]Match, 0, n)
	for _, m := range all {
		if seen[m.Slug] {
			continue
		}
		seen[m.Slug] = true

		out = append(out, m)
		if len(out) == n {
			break
		}
	}

	return out
}

func (l *List) ByNameFuzzy(query string) (string, error) {
	best := l.Candidates(query, 1)
	if len(best) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, query)
	}

	return best[0].Slug, nil
}
