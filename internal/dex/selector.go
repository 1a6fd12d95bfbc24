package dex

import (
	"strconv"
	"strings"
)

// Select picks entries by dex range ("1-151") or by list ("1,4,7"). The range
// wins when both are given; with neither, every entry is returned.
func (l *List) Select(rng, list string) []Pokemon {
	if rng != "" {
		return l.SelectRange(rng)
	}
	if list != "" {
		return l.SelectList(list)
	}

	out := make([]Pokemon, 0, len(l.records))
	for i := range l.records {
		out = append(out, Pokemon{Dex: i + 1, SlugRecord: l.records[i]})
	}

	return out
}

// SelectRange returns nil for a malformed range or one that runs past the list.
func (l *List) SelectRange(rng string) []Pokemon {
	parts := strings.Split(rng, "-")
	if len(parts) != 2 {
		return nil
	}

	start, err1 := atoi(parts[0])
	end, err2 := atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	if start <= 0 || end <= 0 || start > end || end > len(l.records) {
		return nil
	}

	out := make([]Pokemon, 0, end-start+1)
	for dex := start; dex <= end; dex++ {
		out = append(out, Pokemon{Dex: dex, SlugRecord: l.records[dex-1]})
	}

	return out
}

// SelectList skips numbers it cannot parse or that are out of range.
func (l *List) SelectList(list string) []Pokemon {
	var out []Pokemon

	for n := range strings.SplitSeq(list, ",") {
		dex, err := atoi(n)
		if err != nil {
			continue
		}
		if p, ok := l.Entry(dex); ok {
			out = append(out, p)
		}
	}

	return out
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
