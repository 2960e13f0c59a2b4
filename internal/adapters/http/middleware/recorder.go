package middleware

import "net/http"

// statusRecorder remembers the status and size of the response a handler
// wrote, so outer middleware can report them afterwards.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	size    int64
	written bool
}

// record wraps w. When w is already a recorder it is returned as is, so
// stacked middleware share one view of the response.
func record(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status written and ignores later calls.
func (rec *statusRecorder) WriteHeader(code int) {
	if rec.written {
		return
	}
	rec.status = code
	rec.written = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.written = true
	n, err := rec.ResponseWriter.Write(b)
	rec.size += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
