package dex

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

type Region int

const (
	Kanto Region = iota + 1
	Johto
	Hoenn
	Sinnoh
	Einall
	Kalos
	Alola
	Galar
	Paldea
)

var regions = []struct {
	region      Region
	name        string
	first, last int
}{
	{Kanto, "Kanto", 1, 151},
	{Johto, "Johto", 152, 251},
	{Hoenn, "Hoenn", 252, 386},
	{Sinnoh, "Sinnoh", 387, 493},
	{Einall, "Einall", 494, 649},
	{Kalos, "Kalos", 650, 721},
	{Alola, "Alola", 722, 809},
	{Galar, "Galar", 810, 905},
	{Paldea, "Paldea", 906, 1025},
}

func ParseRegion(s string) (Region, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "unova" {
		return Einall, nil
	}

	for _, r := range regions {
		if strings.ToLower(r.name) == key {
			return r.region, nil
		}
	}

	return 0, fmt.Errorf("unknown region %q", s)
}

func (r Region) String() string {
	for _, e := range regions {
		if e.region == r {
			return e.name
		}
	}

	return fmt.Sprintf("Region(%d)", int(r))
}

// Range is the inclusive national dex range introduced with the region.
func (r Region) Range() (first, last int) {
	for _, e := range regions {
		if e.region == r {
			return e.first, e.last
		}
	}

	return 0, 0
}

var errEmptyList = errors.New("list is empty")

func (l *List) Random(rng *rand.Rand) (string, error) {
	if len(l.records) == 0 {
		return "", errEmptyList
	}

	return l.records[rng.IntN(len(l.records))].Slug, nil
}

// RandomInRegion picks within the region's range, cut off at the end of the
// list when the list predates the region's last entries.
func (l *List) RandomInRegion(region Region, rng *rand.Rand) (string, error) {
	first, last := region.Range()
	if first == 0 {
		return "", fmt.Errorf("unknown region %d", int(region))
	}

	last = min(last, len(l.records))
	if first > last {
		return "", fmt.Errorf("%w: list has %d entries, %s starts at %d", ErrNotFound, len(l.records), region, first)
	}

	dex := first + rng.IntN(last-first+1)
	return l.records[dex-1].Slug, nil
}
