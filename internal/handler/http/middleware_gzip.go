package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/utils"
)

// Pools keep gzip state off the per-request allocation path.
var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that advertise Accept-Encoding: gzip. A body that
// claims gzip encoding but isn't answers 400 before any handler runs.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			reader := gzipReaders.Get().(*gzip.Reader)
			if err := reader.Reset(r.Body); err != nil {
				gzipReaders.Put(reader)
				utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
				return
			}

			r.Body = &pooledBodyReader{reader: reader}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		writer := gzipWriters.Get().(*gzip.Writer)
		writer.Reset(w)

		next.ServeHTTP(&compressedResponseWriter{ResponseWriter: w, writer: writer}, r)

		writer.Close()
		gzipWriters.Put(writer)
	})
}

// pooledBodyReader returns its gzip reader to the pool on Close.
type pooledBodyReader struct {
	reader *gzip.Reader
	closed bool
}

func (b *pooledBodyReader) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *pooledBodyReader) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	err := b.reader.Close()
	gzipReaders.Put(b.reader)
	return err
}

type compressedResponseWriter struct {
	http.ResponseWriter
	writer *gzip.Writer
}

func (w *compressedResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressedResponseWriter) Write(data []byte) (int, error) {
	return w.writer.Write(data)
}
