package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/step-tracker/pkg/problem"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Recovery recovers from panics and returns a 500 problem response
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Printf("[recovery] request_id=%s %s %s panic: %v\n%s",
					chimiddleware.GetReqID(r.Context()), r.Method, r.URL.Path, err, debug.Stack())
				problem.InternalError("An unexpected error occurred").WriteFor(w, r)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
