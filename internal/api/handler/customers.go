package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/internal/usecases/reporting"
	"github.com/vfg2006/retailbot-api/pkg/apiErrors"
)

// GetCustomerAnalytics devolve as métricas da base de clientes
func GetCustomerAnalytics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.CustomerFilters{
			LoyaltyTier: query.Get("loyaltyTier"),
		}

		if rawMin := query.Get("minPurchases"); rawMin != "" {
			minPurchases, err := strconv.ParseFloat(rawMin, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "minPurchases deve ser um número", nil)
				return
			}
			filters.MinPurchases = minPurchases
		}

		result, err := service.CustomerAnalytics(filters)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, result)
	}
}
