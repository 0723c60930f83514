// Package reporting implementa os relatórios derivados do snapshot: status de
// estoque, analytics de clientes e desempenho de lojas contra a meta.
package reporting

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/retailbot-api/infrastructure/dataset"
	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/pkg/utils"
)

// TopCustomersLimit é o tamanho do ranking de maiores compradores
const TopCustomersLimit = 5

// TopStoreProductsLimit é o tamanho do top de produtos por loja
const TopStoreProductsLimit = 3

// Reporter expõe os relatórios de estoque, clientes e lojas
type Reporter interface {
	InventoryStatus(filters domain.InventoryFilters) (*domain.InventoryStatusResult, error)
	CustomerAnalytics(filters domain.CustomerFilters) (*domain.CustomerAnalyticsResult, error)
	StorePerformance(ctx context.Context, filters domain.StoreFilters) (*domain.StorePerformanceResult, error)
}

type Service struct {
	datasetProvider dataset.Provider
}

func NewService(datasetProvider dataset.Provider) Reporter {
	return &Service{datasetProvider: datasetProvider}
}

// InventoryStatus projeta a posição de estoque do conjunto filtrado e os
// alertas de reposição. Os alertas varrem o inventário completo: um filtro de
// categoria nunca esconde um item abaixo do ponto de reposição.
func (s *Service) InventoryStatus(filters domain.InventoryFilters) (*domain.InventoryStatusResult, error) {
	ds, err := s.datasetProvider.Snapshot()
	if err != nil {
		return nil, err
	}

	result := &domain.InventoryStatusResult{
		Items:         make([]domain.InventoryItemStatus, 0),
		LowStockItems: make([]domain.InventoryItemStatus, 0),
	}

	for _, record := range ds.Inventory {
		status := projectInventoryItem(record)

		if status.LowStock {
			result.LowStockItems = append(result.LowStockItems, status)
		}

		if filters.Category != "" &&
			!strings.Contains(strings.ToLower(record.Category), strings.ToLower(filters.Category)) {
			continue
		}
		if filters.LowStockOnly && !status.LowStock {
			continue
		}

		result.Items = append(result.Items, status)
		result.Summary.TotalItems++
		result.Summary.TotalStockValue += status.StockValue
		if status.LowStock {
			result.Summary.LowStockCount++
		}
	}

	result.Summary.TotalStockValue = utils.RoundWithTwoDecimalPlace(result.Summary.TotalStockValue)
	result.Report = renderInventoryReport(result)

	return result, nil
}

func projectInventoryItem(record domain.InventoryRecord) domain.InventoryItemStatus {
	return domain.InventoryItemStatus{
		Product:      record.Product,
		Category:     record.Category,
		CurrentStock: record.CurrentStock,
		ReorderPoint: record.ReorderPoint,
		Cost:         record.Cost,
		StockValue:   utils.RoundWithTwoDecimalPlace(record.StockValue()),
		LowStock:     record.LowStock(),
	}
}

// renderInventoryReport monta o relatório textual consumido pela camada de
// linguagem natural
func renderInventoryReport(result *domain.InventoryStatusResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Inventory status: %d items, total stock value $%.2f\n",
		result.Summary.TotalItems, result.Summary.TotalStockValue)

	for _, item := range result.Items {
		marker := ""
		if item.LowStock {
			marker = " [LOW STOCK]"
		}
		fmt.Fprintf(&b, "- %s (%s): %d units, reorder at %d, stock value $%.2f%s\n",
			item.Product, item.Category, item.CurrentStock, item.ReorderPoint, item.StockValue, marker)
	}

	if len(result.LowStockItems) > 0 {
		fmt.Fprintf(&b, "Reorder alerts (%d):\n", len(result.LowStockItems))
		for _, item := range result.LowStockItems {
			fmt.Fprintf(&b, "- %s: %d units on hand, reorder point %d\n",
				item.Product, item.CurrentStock, item.ReorderPoint)
		}
	}

	return b.String()
}

// CustomerAnalytics deriva as métricas da base de clientes. A distribuição de
// fidelidade cobre a base completa; os demais números refletem o conjunto
// filtrado.
func (s *Service) CustomerAnalytics(filters domain.CustomerFilters) (*domain.CustomerAnalyticsResult, error) {
	ds, err := s.datasetProvider.Snapshot()
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Customer, 0, len(ds.Customers))
	distribution := make(map[string]int)

	for _, customer := range ds.Customers {
		distribution[customer.LoyaltyTier]++

		if filters.LoyaltyTier != "" && !strings.EqualFold(customer.LoyaltyTier, filters.LoyaltyTier) {
			continue
		}
		if customer.TotalPurchases < filters.MinPurchases {
			continue
		}

		filtered = append(filtered, customer)
	}

	analytics := domain.CustomerAnalytics{
		TotalCustomers:      len(filtered),
		LoyaltyDistribution: distribution,
		TopCustomers:        topCustomers(filtered),
	}

	for _, customer := range filtered {
		analytics.TotalRevenue += customer.TotalPurchases
	}
	analytics.TotalRevenue = utils.RoundWithTwoDecimalPlace(analytics.TotalRevenue)

	if len(filtered) > 0 {
		analytics.AverageCustomerValue = utils.RoundWithTwoDecimalPlace(analytics.TotalRevenue / float64(len(filtered)))
	}

	return &domain.CustomerAnalyticsResult{
		Customers: filtered,
		Analytics: analytics,
	}, nil
}

func topCustomers(customers []domain.Customer) []domain.TopCustomer {
	ranked := make([]domain.Customer, len(customers))
	copy(ranked, customers)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPurchases > ranked[j].TotalPurchases
	})

	if len(ranked) > TopCustomersLimit {
		ranked = ranked[:TopCustomersLimit]
	}

	top := make([]domain.TopCustomer, 0, len(ranked))
	for _, customer := range ranked {
		top = append(top, domain.TopCustomer{
			Name:           customer.Name,
			TotalPurchases: customer.TotalPurchases,
			Tier:           customer.LoyaltyTier,
		})
	}

	return top
}

// StorePerformance calcula o desempenho de cada loja contra a meta mensal.
// As lojas são processadas em paralelo sobre o mesmo snapshot imutável.
func (s *Service) StorePerformance(ctx context.Context, filters domain.StoreFilters) (*domain.StorePerformanceResult, error) {
	ds, err := s.datasetProvider.Snapshot()
	if err != nil {
		return nil, err
	}

	stores := make([]domain.Store, 0, len(ds.Stores))
	for _, store := range ds.Stores {
		if filters.StoreName != "" &&
			!strings.Contains(strings.ToLower(store.Name), strings.ToLower(filters.StoreName)) {
			continue
		}
		stores = append(stores, store)
	}

	performances := make([]domain.StorePerformance, len(stores))

	g, _ := errgroup.WithContext(ctx)
	for i, store := range stores {
		i, store := i, store
		g.Go(func() error {
			performances[i] = storePerformance(store, ds.Sales, filters)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &domain.StorePerformanceResult{
		StorePerformance: performances,
	}

	var best float64
	for _, p := range performances {
		result.Summary.TotalRevenue += p.Performance.Revenue
		if p.Performance.Revenue > best {
			best = p.Performance.Revenue
			result.Summary.BestPerformer = p.Store
		}
	}
	result.Summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(result.Summary.TotalRevenue)

	return result, nil
}

func storePerformance(store domain.Store, sales []domain.SaleRecord, filters domain.StoreFilters) domain.StorePerformance {
	perf := domain.StorePerformance{
		Store:         store.Name,
		Manager:       store.Manager,
		MonthlyTarget: store.MonthlyTarget,
		TopProducts:   make([]domain.StoreTopProduct, 0, TopStoreProductsLimit),
	}

	products := make([]domain.StoreTopProduct, 0)
	indexByProduct := make(map[string]int)

	for _, sale := range sales {
		if sale.Store != store.Name {
			continue
		}
		if filters.StartDate != "" && filters.EndDate != "" &&
			(sale.Date < filters.StartDate || sale.Date > filters.EndDate) {
			continue
		}

		perf.Performance.Revenue += sale.Total
		perf.Performance.Transactions++

		idx, seen := indexByProduct[sale.Product]
		if !seen {
			idx = len(products)
			indexByProduct[sale.Product] = idx
			products = append(products, domain.StoreTopProduct{Product: sale.Product})
		}
		products[idx].Quantity += sale.Quantity
		products[idx].Revenue += sale.Total
	}

	perf.Performance.Revenue = utils.RoundWithTwoDecimalPlace(perf.Performance.Revenue)
	if perf.Performance.Transactions > 0 {
		perf.Performance.AvgTransaction = utils.RoundWithTwoDecimalPlace(
			perf.Performance.Revenue / float64(perf.Performance.Transactions))
	}
	if store.MonthlyTarget > 0 {
		perf.Performance.TargetAchievement = utils.RoundWithOneDecimalPlace(
			(perf.Performance.Revenue / store.MonthlyTarget) * 100)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue > products[j].Revenue
	})
	if len(products) > TopStoreProductsLimit {
		products = products[:TopStoreProductsLimit]
	}
	perf.TopProducts = products

	return perf
}
