package api

import "io"

// progressReader reports bytes read from the request body
type progressReader struct {
	reader     io.Reader
	total      int64
	sent       int64
	onProgress ProgressFunc
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.sent += int64(n)
		if r.onProgress != nil {
			r.onProgress(r.sent, r.total)
		}
	}
	return n, err
}
