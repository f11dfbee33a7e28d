package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/yourorg/productsvc/internal/apperrors"
)

const (
	APIVersionHeader  = "api-version"
	processTimeHeader = "X-Process-Time"
)

// RequireAPIVersion rejects requests whose api-version header does not match
// the configured version exactly.
func RequireAPIVersion(version string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested := r.Header.Get(APIVersionHeader)
			if requested != version {
				handleServiceError(w, r, apperrors.NewInvalidAPIVersionError(requested))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ProcessTime reports the handler duration in seconds in the X-Process-Time
// response header.
func ProcessTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timingWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(tw, r)
	})
}

type timingWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
}

func (tw *timingWriter) WriteHeader(code int) {
	if !tw.wroteHeader {
		tw.wroteHeader = true
		elapsed := time.Since(tw.start).Seconds()
		tw.Header().Set(processTimeHeader, strconv.FormatFloat(elapsed, 'f', -1, 64))
	}
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timingWriter) Write(b []byte) (int, error) {
	if !tw.wroteHeader {
		tw.WriteHeader(http.StatusOK)
	}
	return tw.ResponseWriter.Write(b)
}

func (tw *timingWriter) Flush() {
	if f, ok := tw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (tw *timingWriter) Unwrap() http.ResponseWriter {
	return tw.ResponseWriter
}
