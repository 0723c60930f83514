package middleware

import (
	"net/http"
)

// Cors libera as origens configuradas. "*" permite qualquer origem, útil no
// ambiente local do dashboard.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if allowed, value := resolveOrigin(origin, allowedOrigins); allowed {
				w.Header().Set("Access-Control-Allow-Origin", value)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func resolveOrigin(origin string, allowedOrigins []string) (bool, string) {
	if origin == "" {
		return false, ""
	}

	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			return true, "*"
		}
		if allowed == origin {
			return true, origin
		}
	}

	return false, ""
}
