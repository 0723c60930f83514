package handler

import (
	"net/http"

	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/internal/usecases/reporting"
)

// GetInventoryStatus devolve a posição de estoque com alertas de reposição
func GetInventoryStatus(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.InventoryFilters{
			Category:     query.Get("category"),
			LowStockOnly: query.Get("lowStockOnly") == "true",
		}

		result, err := service.InventoryStatus(filters)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, result)
	}
}
