package reporting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retailbot-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/retailbot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func fixtureDataset() *domain.Dataset {
	return &domain.Dataset{
		Sales: []domain.SaleRecord{
			{Date: "2024-12-01", Store: "Downtown Store", Product: "Winter Jacket", Category: "Clothing", Quantity: 4, Total: 359.96},
			{Date: "2024-12-02", Store: "Downtown Store", Product: "Scarf", Category: "Clothing", Quantity: 3, Total: 59.97},
			{Date: "2024-12-02", Store: "Mall Location", Product: "Coffee Maker", Category: "Home & Kitchen", Quantity: 2, Total: 120.00},
			{Date: "2024-12-03", Store: "Downtown Store", Product: "Winter Jacket", Category: "Clothing", Quantity: 2, Total: 179.98},
		},
		Inventory: []domain.InventoryRecord{
			{Product: "Winter Jacket", Category: "Clothing", Cost: 45.00, CurrentStock: 20, ReorderPoint: 5},
			{Product: "Scarf", Category: "Clothing", Cost: 8.00, CurrentStock: 3, ReorderPoint: 10},
			{Product: "Coffee Maker", Category: "Home & Kitchen", Cost: 30.00, CurrentStock: 2, ReorderPoint: 3},
		},
		Customers: []domain.Customer{
			{Name: "Ana", LoyaltyTier: "Gold", TotalPurchases: 5200.00},
			{Name: "Bruno", LoyaltyTier: "Silver", TotalPurchases: 1800.50},
			{Name: "Carla", LoyaltyTier: "Gold", TotalPurchases: 3100.00},
			{Name: "Davi", LoyaltyTier: "Bronze", TotalPurchases: 420.00},
		},
		Stores: []domain.Store{
			{Name: "Downtown Store", Manager: "Paula", MonthlyTarget: 1000.00},
			{Name: "Mall Location", Manager: "Ricardo", MonthlyTarget: 2000.00},
		},
	}
}

func TestService_InventoryStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockProvider(ctrl)
	service := NewService(mockProvider)

	tests := []struct {
		name     string
		filters  domain.InventoryFilters
		validate func(t *testing.T, result *domain.InventoryStatusResult)
	}{
		{
			name:    "Sem filtros - deve projetar todo o inventário com valor de estoque",
			filters: domain.InventoryFilters{},
			validate: func(t *testing.T, result *domain.InventoryStatusResult) {
				assert.Len(t, result.Items, 3)
				assert.Equal(t, 3, result.Summary.TotalItems)
				// 20*45 + 3*8 + 2*30
				assert.Equal(t, 984.00, result.Summary.TotalStockValue)
				assert.Equal(t, 2, result.Summary.LowStockCount)

				jacket := result.Items[0]
				assert.Equal(t, "Winter Jacket", jacket.Product)
				assert.Equal(t, 900.00, jacket.StockValue)
				assert.False(t, jacket.LowStock)
			},
		},
		{
			name:    "Apenas estoque baixo - deve manter só itens no ponto de reposição",
			filters: domain.InventoryFilters{LowStockOnly: true},
			validate: func(t *testing.T, result *domain.InventoryStatusResult) {
				assert.Len(t, result.Items, 2)
				assert.Equal(t, "Scarf", result.Items[0].Product)
				assert.Equal(t, "Coffee Maker", result.Items[1].Product)
				assert.Equal(t, 2, result.Summary.LowStockCount)
			},
		},
		{
			name:    "Filtro de categoria - alertas continuam cobrindo o inventário completo",
			filters: domain.InventoryFilters{Category: "kitchen"},
			validate: func(t *testing.T, result *domain.InventoryStatusResult) {
				assert.Len(t, result.Items, 1)
				assert.Equal(t, "Coffee Maker", result.Items[0].Product)

				// Scarf está fora do filtro mas permanece nos alertas
				assert.Len(t, result.LowStockItems, 2)
				assert.Equal(t, "Scarf", result.LowStockItems[0].Product)
			},
		},
		{
			name:    "Relatório textual - deve listar itens e alertas de reposição",
			filters: domain.InventoryFilters{},
			validate: func(t *testing.T, result *domain.InventoryStatusResult) {
				assert.Contains(t, result.Report, "Inventory status: 3 items")
				assert.Contains(t, result.Report, "Winter Jacket (Clothing): 20 units")
				assert.Contains(t, result.Report, "[LOW STOCK]")
				assert.Contains(t, result.Report, "Reorder alerts (2):")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProvider.EXPECT().Snapshot().Return(fixtureDataset(), nil)

			result, err := service.InventoryStatus(tt.filters)

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestService_CustomerAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockProvider(ctrl)
	service := NewService(mockProvider)

	tests := []struct {
		name     string
		filters  domain.CustomerFilters
		validate func(t *testing.T, result *domain.CustomerAnalyticsResult)
	}{
		{
			name:    "Sem filtros - métricas sobre a base completa",
			filters: domain.CustomerFilters{},
			validate: func(t *testing.T, result *domain.CustomerAnalyticsResult) {
				assert.Len(t, result.Customers, 4)
				assert.Equal(t, 4, result.Analytics.TotalCustomers)
				assert.Equal(t, 10520.50, result.Analytics.TotalRevenue)
				assert.Equal(t, 2630.13, result.Analytics.AverageCustomerValue)

				assert.Equal(t, map[string]int{"Gold": 2, "Silver": 1, "Bronze": 1}, result.Analytics.LoyaltyDistribution)

				// Ranking por total de compras, maior primeiro
				assert.Equal(t, "Ana", result.Analytics.TopCustomers[0].Name)
				assert.Equal(t, "Carla", result.Analytics.TopCustomers[1].Name)
			},
		},
		{
			name:    "Filtro de tier - igualdade sem distinção de caixa",
			filters: domain.CustomerFilters{LoyaltyTier: "gold"},
			validate: func(t *testing.T, result *domain.CustomerAnalyticsResult) {
				assert.Len(t, result.Customers, 2)
				assert.Equal(t, 8300.00, result.Analytics.TotalRevenue)

				// A distribuição não é afetada pelo filtro
				assert.Equal(t, 4, result.Analytics.LoyaltyDistribution["Gold"]+
					result.Analytics.LoyaltyDistribution["Silver"]+
					result.Analytics.LoyaltyDistribution["Bronze"])
			},
		},
		{
			name:    "Filtro de compras mínimas - deve manter o limiar inclusivo",
			filters: domain.CustomerFilters{MinPurchases: 1800.50},
			validate: func(t *testing.T, result *domain.CustomerAnalyticsResult) {
				assert.Len(t, result.Customers, 3)
				for _, customer := range result.Customers {
					assert.GreaterOrEqual(t, customer.TotalPurchases, 1800.50)
				}
			},
		},
		{
			name:    "Filtro sem resultados - média zerada sem erro",
			filters: domain.CustomerFilters{LoyaltyTier: "Platinum"},
			validate: func(t *testing.T, result *domain.CustomerAnalyticsResult) {
				assert.Empty(t, result.Customers)
				assert.Equal(t, 0, result.Analytics.TotalCustomers)
				assert.Equal(t, 0.0, result.Analytics.AverageCustomerValue)
				assert.Empty(t, result.Analytics.TopCustomers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProvider.EXPECT().Snapshot().Return(fixtureDataset(), nil)

			result, err := service.CustomerAnalytics(tt.filters)

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestService_StorePerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockProvider(ctrl)
	service := NewService(mockProvider)

	tests := []struct {
		name     string
		filters  domain.StoreFilters
		validate func(t *testing.T, result *domain.StorePerformanceResult)
	}{
		{
			name:    "Sem filtros - deve medir todas as lojas contra a meta",
			filters: domain.StoreFilters{},
			validate: func(t *testing.T, result *domain.StorePerformanceResult) {
				assert.Len(t, result.StorePerformance, 2)

				downtown := result.StorePerformance[0]
				assert.Equal(t, "Downtown Store", downtown.Store)
				assert.Equal(t, "Paula", downtown.Manager)
				// 359.96 + 59.97 + 179.98
				assert.Equal(t, 599.91, downtown.Performance.Revenue)
				assert.Equal(t, 3, downtown.Performance.Transactions)
				assert.Equal(t, 199.97, downtown.Performance.AvgTransaction)
				assert.Equal(t, 60.0, downtown.Performance.TargetAchievement)

				// Top de produtos por receita, vendas do mesmo produto agregadas
				assert.Equal(t, "Winter Jacket", downtown.TopProducts[0].Product)
				assert.Equal(t, 6, downtown.TopProducts[0].Quantity)

				assert.Equal(t, 719.91, result.Summary.TotalRevenue)
				assert.Equal(t, "Downtown Store", result.Summary.BestPerformer)
			},
		},
		{
			name:    "Filtro de loja por substring - deve restringir o conjunto",
			filters: domain.StoreFilters{StoreName: "mall"},
			validate: func(t *testing.T, result *domain.StorePerformanceResult) {
				assert.Len(t, result.StorePerformance, 1)
				assert.Equal(t, "Mall Location", result.StorePerformance[0].Store)
				assert.Equal(t, 6.0, result.StorePerformance[0].Performance.TargetAchievement)
			},
		},
		{
			name:    "Range de datas - só vendas dentro do range contam",
			filters: domain.StoreFilters{StartDate: "2024-12-02", EndDate: "2024-12-03"},
			validate: func(t *testing.T, result *domain.StorePerformanceResult) {
				downtown := result.StorePerformance[0]
				// 59.97 + 179.98
				assert.Equal(t, 239.95, downtown.Performance.Revenue)
				assert.Equal(t, 2, downtown.Performance.Transactions)
			},
		},
		{
			name:    "Loja sem vendas no range - métricas zeradas sem erro",
			filters: domain.StoreFilters{StoreName: "mall", StartDate: "2024-12-10", EndDate: "2024-12-20"},
			validate: func(t *testing.T, result *domain.StorePerformanceResult) {
				mall := result.StorePerformance[0]
				assert.Equal(t, 0.0, mall.Performance.Revenue)
				assert.Equal(t, 0.0, mall.Performance.AvgTransaction)
				assert.Equal(t, 0.0, mall.Performance.TargetAchievement)
				assert.Empty(t, mall.TopProducts)
				assert.Empty(t, result.Summary.BestPerformer)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProvider.EXPECT().Snapshot().Return(fixtureDataset(), nil)

			result, err := service.StorePerformance(context.Background(), tt.filters)

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
