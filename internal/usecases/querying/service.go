// Package querying implementa as consultas diretas sobre o snapshot do
// dataset: vendas com filtros opcionais e as consultas pontuais do dataset
// legado de smart retail.
package querying

import (
	"strings"

	"github.com/vfg2006/retailbot-api/infrastructure/dataset"
	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/pkg/utils"
)

// SalesQuerier expõe as consultas de vendas e do dataset legado
type SalesQuerier interface {
	SalesData(filters domain.SalesFilters) (*domain.SalesQueryResult, error)
	DepartmentSales(date string) ([]domain.DepartmentSale, error)
	ItemSale(date, item string) (*domain.ItemSale, error)
	ItemStock(item string) (*domain.ItemStock, error)
	ItemSpecials(item string) ([]domain.ItemSpecial, error)
}

type Service struct {
	datasetProvider dataset.Provider
}

func NewService(datasetProvider dataset.Provider) SalesQuerier {
	return &Service{datasetProvider: datasetProvider}
}

// SalesData devolve as vendas que passam por todos os filtros informados,
// junto com o resumo do conjunto filtrado. Filtros vazios não restringem.
func (s *Service) SalesData(filters domain.SalesFilters) (*domain.SalesQueryResult, error) {
	ds, err := s.datasetProvider.Snapshot()
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.SaleRecord, 0, len(ds.Sales))
	for _, sale := range ds.Sales {
		if matchesSale(sale, filters) {
			filtered = append(filtered, sale)
		}
	}

	return &domain.SalesQueryResult{
		Sales:   filtered,
		Summary: summarizeSales(filtered),
	}, nil
}

// matchesSale aplica os filtros a um registro de venda. O range de datas é
// inclusivo e usa comparação lexicográfica, válida para o formato YYYY-MM-DD.
func matchesSale(sale domain.SaleRecord, filters domain.SalesFilters) bool {
	if filters.StartDate != "" && sale.Date < filters.StartDate {
		return false
	}
	if filters.EndDate != "" && sale.Date > filters.EndDate {
		return false
	}
	if !containsFold(sale.Store, filters.Store) {
		return false
	}
	if !containsFold(sale.Product, filters.Product) {
		return false
	}
	if !containsFold(sale.Category, filters.Category) {
		return false
	}
	return true
}

// containsFold casa por substring sem distinção de maiúsculas/minúsculas;
// filtro vazio sempre casa
func containsFold(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

func summarizeSales(sales []domain.SaleRecord) domain.SalesSummary {
	summary := domain.SalesSummary{
		NumberOfTransactions: len(sales),
	}

	for _, sale := range sales {
		summary.TotalRevenue += sale.Total
		summary.TotalQuantity += sale.Quantity
	}

	if len(sales) > 0 {
		summary.AverageOrderValue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue / float64(len(sales)))
	}

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)

	return summary
}

// DepartmentSales devolve as vendas por departamento de uma data exata.
// Sem registros para a data, retorna domain.ErrResourceNotFound.
func (s *Service) DepartmentSales(date string) ([]domain.DepartmentSale, error) {
	ds, err := s.datasetProvider.Snapshot()
	if err != nil {
		return nil, err
	}

	var found []domain.DepartmentSale
	for _, d := range ds.DepartmentSales {
		if d.Date == date {
			found = append(found, d)
		}
	}

	if len(found) == 0 {
		return nil, domain.ErrResourceNotFound
	}

	return found, nil
}

// ItemSale devolve a venda consolidada de um item em uma data exata
func (s *Service) ItemSale(date, item string) (*domain.ItemSale, error) {
	ds, err := s.datasetProvider.Snapshot()
	if err != nil {
		return nil, err
	}

	for _, i := range ds.ItemSales {
		if i.Date == date && strings.EqualFold(i.Item, item) {
			sale := i
			return &sale, nil
		}
	}

	return nil, domain.ErrResourceNotFound
}

// ItemStock devolve a quantidade em mãos de um item
func (s *Service) ItemStock(item string) (*domain.ItemStock, error) {
	ds, err := s.datasetProvider.Snapshot()
	if err != nil {
		return nil, err
	}

	for _, i := range ds.ItemStock {
		if strings.EqualFold(i.Item, item) {
			stock := i
			return &stock, nil
		}
	}

	return nil, domain.ErrResourceNotFound
}

// ItemSpecials devolve as promoções vigentes de um item
func (s *Service) ItemSpecials(item string) ([]domain.ItemSpecial, error) {
	ds, err := s.datasetProvider.Snapshot()
	if err != nil {
		return nil, err
	}

	var found []domain.ItemSpecial
	for _, i := range ds.ItemSpecials {
		if strings.EqualFold(i.Item, item) {
			found = append(found, i)
		}
	}

	if len(found) == 0 {
		return nil, domain.ErrResourceNotFound
	}

	return found, nil
}
