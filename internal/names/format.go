package names

import (
	"fmt"
	"strings"
)

// Format selects how the intermediate name list is delimited.
type Format string

const (
	// FormatPlain joins fields with bare commas and never escapes them.
	FormatPlain Format = "plain"
	// FormatCSV quotes fields that contain commas, quotes or newlines.
	FormatCSV Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown name list format %q (want plain or csv)", s)
	}
}
