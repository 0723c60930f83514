package handler

import (
	"net/http"
	"time"
)

// HealthcheckHandler responde o status do serviço para probes de liveness
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
