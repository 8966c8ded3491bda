package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/andrebq/todoapp/internal/logutil"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"
)

type (
	statusRecorder struct {
		http.ResponseWriter
		status int
		size   int
	}
)

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(buf []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(buf)
	s.size += n
	return n, err
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// WithRequestLog gives each request its own logger tagged with a request id
// and logs the outcome once the handler returns.
func WithRequestLog(ctx context.Context, next http.Handler) http.Handler {
	base := logutil.GetOrDefault(ctx)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.NewString()
		}
		log := base.With().Str("req.id", reqID).Logger()
		w.Header().Set(RequestIDHeader, reqID)
		rec := &statusRecorder{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(logutil.WithLogger(r.Context(), log)))
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Int("size", rec.size).
			Dur("elapsed", time.Since(start)).
			Msg("Request served")
	})
}
