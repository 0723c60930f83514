package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/internal/usecases/querying"
	"github.com/vfg2006/retailbot-api/pkg/apiErrors"
	"github.com/vfg2006/retailbot-api/pkg/utils"
)

// GetSalesData devolve as vendas com filtros opcionais de data, loja,
// produto e categoria
func GetSalesData(service querying.SalesQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.SalesFilters{
			StartDate: query.Get("startDate"),
			EndDate:   query.Get("endDate"),
			Store:     query.Get("store"),
			Product:   query.Get("product"),
			Category:  query.Get("category"),
		}

		for _, date := range []string{filters.StartDate, filters.EndDate} {
			if err := utils.ValidateDateString(date); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
		}

		result, err := service.SalesData(filters)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, result)
	}
}

// GetDepartmentSales devolve as vendas por departamento de uma data exata
func GetDepartmentSales(service querying.SalesQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O parâmetro date é obrigatório", nil)
			return
		}
		if err := utils.ValidateDateString(date); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		sales, err := service.DepartmentSales(date)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, sales)
	}
}

// GetItemSales devolve a venda consolidada de um item em uma data exata
func GetItemSales(service querying.SalesQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := httprouter.ParamsFromContext(r.Context()).ByName("item")

		date := r.URL.Query().Get("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O parâmetro date é obrigatório", nil)
			return
		}
		if err := utils.ValidateDateString(date); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		sale, err := service.ItemSale(date, item)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, sale)
	}
}

// GetItemStock devolve a quantidade em mãos de um item
func GetItemStock(service querying.SalesQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := httprouter.ParamsFromContext(r.Context()).ByName("item")

		stock, err := service.ItemStock(item)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, stock)
	}
}

// GetItemSpecials devolve as promoções vigentes de um item
func GetItemSpecials(service querying.SalesQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := httprouter.ParamsFromContext(r.Context()).ByName("item")

		specials, err := service.ItemSpecials(item)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, specials)
	}
}
