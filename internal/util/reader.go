package util

import "io"

// ProgressReader reports the running byte count of everything read through it.
type ProgressReader struct {
	r        io.Reader
	total    int64
	progress func(done int64)
}

func NewProgressReader(r io.Reader, progress func(done int64)) *ProgressReader {
	return &ProgressReader{r: r, progress: progress}
}

func (p *ProgressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.total += int64(n)
		if p.progress != nil {
			p.progress(p.total)
		}
	}

	return n, err
}

func (p *ProgressReader) Total() int64 {
	return p.total
}
