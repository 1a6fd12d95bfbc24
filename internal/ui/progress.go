package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/brogergvhs/pokenames/internal/util"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressManager owns the bars of one command run. A disabled manager hands
// out handles that do nothing.
type ProgressManager struct {
	p      *mpb.Progress
	closed bool
}

func NewProgressManager(enabled bool) *ProgressManager {
	return newProgressManager(enabled, os.Stderr)
}

func newProgressManager(enabled bool, w io.Writer) *ProgressManager {
	if !enabled {
		return &ProgressManager{}
	}

	p := mpb.New(
		mpb.WithWidth(40),
		mpb.WithOutput(w),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &ProgressManager{p: p}
}

// Close waits for every bar to finish. Calling it again is a no-op.
func (pm *ProgressManager) Close() {
	if pm.p == nil || pm.closed {
		return
	}
	pm.closed = true
	pm.p.Wait()
}

type Unit int

const (
	UnitRows Unit = iota
	UnitBytes
)

// Register adds a bar. total may be zero when unknown; MarkDone completes
// the bar at whatever count it reached.
func (pm *ProgressManager) Register(prefix string, unit Unit, total int64) *ProgressHandle {
	h := &ProgressHandle{start: time.Now(), total: total}
	if pm.p == nil {
		return h
	}

	counter := decor.CountersNoUnit(" | %d/%d rows", decor.WCSyncWidth)
	if unit == UnitBytes {
		counter = decor.Any(func(s decor.Statistics) string {
			return " | " + util.Human(s.Current)
		})
	}

	h.bar = pm.p.New(
		total,
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(prefix+"  "),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			counter,
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %.1fs", time.Since(h.start).Seconds())
			}),
		),
	)

	return h
}

type ProgressHandle struct {
	bar   *mpb.Bar
	total int64
	start time.Time
	done  bool
}

func (h *ProgressHandle) SetCurrent(n int64) {
	if h.bar == nil || h.done {
		return
	}

	h.bar.SetCurrent(n)
}

// Rows adapts the handle to the row callbacks of the names package.
func (h *ProgressHandle) Rows(done int) {
	h.SetCurrent(int64(done))
}

func (h *ProgressHandle) MarkDone() {
	if h.done {
		return
	}
	h.done = true

	if h.bar == nil {
		return
	}

	// Bars with a known total complete on their own once current reaches it;
	// one that stopped short is aborted so Close does not block.
	if h.total <= 0 {
		h.bar.SetTotal(-1, true)
		return
	}
	if !h.bar.Completed() {
		h.bar.Abort(false)
	}
}
