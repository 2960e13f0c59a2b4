package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

// Timeout gives each request a deadline of d, which upstream calls inherit
// through the request context. The handler's response is buffered; if the
// deadline passes first the buffer is dropped and a 504 TIMEOUT envelope is
// written instead. When the caller hangs up before the deadline nothing is
// written. A panic in the handler is re-raised on the serving goroutine so
// Recovery still sees it. d <= 0 disables the deadline.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				bw.copyTo(w)
			case <-ctx.Done():
				bw.abandon()
				if r.Context().Err() != nil {
					return
				}
				dto.WriteError(w, r, domain.New(domain.CodeTimeout, "request exceeded its deadline"))
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether it
// is sent. Once abandoned, further writes fail with http.ErrHandlerTimeout.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

func (bw *bufferedWriter) abandon() {
	bw.mu.Lock()
	bw.abandoned = true
	bw.mu.Unlock()
}

// copyTo sends the buffered response to w.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	_, _ = bw.body.WriteTo(w)
}
