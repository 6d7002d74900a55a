package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/Abhishek-dev18/Water-Distribution-Management/pkg/utils"
)

// PanicRecovery converts handler panics into 500 responses so one bad
// request cannot take down the server.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[Recovery] panic on %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				utils.Error(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
