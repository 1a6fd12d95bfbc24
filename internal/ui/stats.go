package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/brogergvhs/pokenames/internal/util"
)

// Stats is the end-of-run summary printed by fetch and slugs.
type Stats struct {
	Records int
	Skipped int
	Tables  int
	Bytes   int64
	Elapsed time.Duration
}

func (s Stats) Print(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s Summary:\n", title)
	if s.Tables > 0 {
		fmt.Fprintf(w, "Tables:   %d\n", s.Tables)
	}
	fmt.Fprintf(w, "Records:  %d\n", s.Records)
	if s.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:  %d\n", s.Skipped)
	}
	if s.Bytes > 0 {
		fmt.Fprintf(w, "Data:     %s\n", util.Human(s.Bytes))
	}
	fmt.Fprintf(w, "Time:     %s\n", s.Elapsed.Round(time.Millisecond))
}
