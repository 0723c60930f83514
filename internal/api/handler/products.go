package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/internal/usecases/analyzing"
	"github.com/vfg2006/retailbot-api/pkg/apiErrors"
)

// GetProductAnalytics devolve o ranking de produtos com agregados por
// categoria e destaques. Parâmetros de ordenação fora do domínio assumem os
// defaults do motor.
func GetProductAnalytics(service analyzing.ProductAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		params := analyzing.AnalyticsParams{
			Category:  query.Get("category"),
			SortBy:    domain.SortKey(query.Get("sortBy")),
			SortOrder: domain.SortOrder(query.Get("sortOrder")),
		}

		if rawTopN := query.Get("topN"); rawTopN != "" {
			topN, err := strconv.Atoi(rawTopN)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "topN deve ser um número inteiro", nil)
				return
			}
			params.TopN = topN
		}

		result, err := service.ProductAnalytics(params)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, result)
	}
}
