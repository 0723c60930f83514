package handler

import (
	"net/http"

	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/internal/usecases/reporting"
	"github.com/vfg2006/retailbot-api/pkg/apiErrors"
	"github.com/vfg2006/retailbot-api/pkg/utils"
)

// GetStorePerformance devolve o desempenho das lojas contra a meta mensal.
// O range de datas é opcional, mas quando usado exige as duas pontas.
func GetStorePerformance(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.StoreFilters{
			StoreName: query.Get("storeName"),
			StartDate: query.Get("startDate"),
			EndDate:   query.Get("endDate"),
		}

		if (filters.StartDate == "") != (filters.EndDate == "") {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "startDate e endDate devem ser informados juntos", nil)
			return
		}

		for _, date := range []string{filters.StartDate, filters.EndDate} {
			if err := utils.ValidateDateString(date); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
		}

		result, err := service.StorePerformance(r.Context(), filters)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, result)
	}
}
