package handlers

import (
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestID tags every request with a fresh uuid, echoed in X-Request-ID.
// It is stored under chi's key so middleware.Logger prints it too.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := context.WithValue(r.Context(), chimw.RequestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFrom(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Recoverer turns a panic into the generic 500 body. With stack set, the
// goroutine stack is logged too.
func Recoverer(stack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("panic recovered: %v [%s]", rec, RequestIDFrom(r.Context()))
				if stack {
					log.Printf("%s", debug.Stack())
				}
				InternalError(w, r, nil)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Printf("%s %s %d %s [%s]", r.Method, r.URL.Path, ww.Status(), time.Since(start), RequestIDFrom(r.Context()))
	})
}

// verboseLogger is chi's request logger writing through the standard logger,
// so development output lands wherever log is pointed.
func verboseLogger() func(http.Handler) http.Handler {
	return chimw.RequestLogger(&chimw.DefaultLogFormatter{Logger: log.Default(), NoColor: true})
}
