package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger_TextLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, false, "text")

	l.Debugf("hidden %d", 1)
	l.Infof("fetched %d records", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="fetched 3 records"`)
}

func TestLogger_DebugJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, true, "JSON")

	l.Debugf("HTTP %s %s", "GET", "http://example.test")
	l.Errorf("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"DEBUG"`)
	assert.Contains(t, lines[0], `"msg":"HTTP GET http://example.test"`)
	assert.Contains(t, lines[1], `"level":"ERROR"`)
}

func TestProgress_DisabledIsNoop(t *testing.T) {
	pm := NewProgressManager(false)
	h := pm.Register("rows", UnitRows, 10)
	h.Rows(3)
	h.MarkDone()
	h.MarkDone()
	pm.Close()
}

func TestProgress_CompletesShortBars(t *testing.T) {
	pm := newProgressManager(true, io.Discard)

	rows := pm.Register("rows", UnitRows, 10)
	rows.Rows(4)
	rows.MarkDone()

	bytesBar := pm.Register("page", UnitBytes, 0)
	bytesBar.SetCurrent(2048)
	bytesBar.MarkDone()

	done := make(chan struct{})
	go func() {
		pm.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("progress manager did not finish")
	}
}

func TestStats_Print(t *testing.T) {
	var buf bytes.Buffer
	Stats{Records: 3, Skipped: 2, Tables: 1, Bytes: 2048, Elapsed: 1500 * time.Millisecond}.Print(&buf, "Fetch")

	out := buf.String()
	assert.Contains(t, out, "Fetch Summary:")
	assert.Contains(t, out, "Records:  3")
	assert.Contains(t, out, "Skipped:  2")
	assert.Contains(t, out, "Data:     2.00 KB")
	assert.Contains(t, out, "Time:     1.5s")
}
