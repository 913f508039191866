package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// RecoveryMiddleware converts panics into 500 responses instead of killing
// the connection.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic recovered",
					"request_id", RequestIDFrom(r),
					"err", err,
					"stack", string(debug.Stack()),
				)

				var wroteHeader bool
				if rw, ok := w.(*responseWriter); ok {
					wroteHeader = rw.wroteHeader()
				}
				if !wroteHeader {
					writeMessage(w, http.StatusInternalServerError, "An internal error occurred")
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
