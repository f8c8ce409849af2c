package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

// Recovery перехватывает панику обработчика и отвечает 500
func Recovery(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("%s %s - Panic recovered: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
