package tooling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/retailbot-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/internal/usecases/analyzing"
	"github.com/vfg2006/retailbot-api/internal/usecases/querying"
	"github.com/vfg2006/retailbot-api/internal/usecases/reporting"
)

func fixtureDataset() *domain.Dataset {
	return &domain.Dataset{
		Sales: []domain.SaleRecord{
			{Date: "2024-12-01", Store: "Downtown Store", Product: "Winter Jacket", Category: "Clothing", Quantity: 4, Total: 359.96},
			{Date: "2024-12-02", Store: "Mall Location", Product: "Coffee Maker", Category: "Home & Kitchen", Quantity: 2, Total: 120.00},
		},
		Inventory: []domain.InventoryRecord{
			{Product: "Winter Jacket", Category: "Clothing", Cost: 45.00, CurrentStock: 20, ReorderPoint: 5},
		},
		Customers: []domain.Customer{
			{Name: "Ana", LoyaltyTier: "Gold", TotalPurchases: 5200.00},
		},
		Stores: []domain.Store{
			{Name: "Downtown Store", Manager: "Paula", MonthlyTarget: 1000.00},
		},
		ItemStock: []domain.ItemStock{
			{Item: "Milk 1L", QOH: 180},
		},
	}
}

func newDispatcher(t *testing.T, snapshots int) *Dispatcher {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockProvider(ctrl)
	mockProvider.EXPECT().Snapshot().Return(fixtureDataset(), nil).Times(snapshots)

	return NewDispatcher(
		analyzing.NewService(mockProvider),
		querying.NewService(mockProvider),
		reporting.NewService(mockProvider),
	)
}

func TestDispatcher_Invoke(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		args     string
		validate func(t *testing.T, result any)
	}{
		{
			name: "getProductAnalytics - deve devolver o resultado do motor de analytics",
			tool: ToolGetProductAnalytics,
			args: `{"category":"cloth","sortBy":"quantity","sortOrder":"asc","topN":3}`,
			validate: func(t *testing.T, result any) {
				analytics, ok := result.(*domain.AnalyticsResult)
				assert.True(t, ok)
				assert.Len(t, analytics.TopProducts, 1)
				assert.Equal(t, "Winter Jacket", analytics.TopProducts[0].Product)
				assert.Equal(t, domain.SortByQuantity, analytics.Metadata.SortBy)
			},
		},
		{
			name: "getSalesData - filtros opcionais são repassados",
			tool: ToolGetSalesData,
			args: `{"store":"mall"}`,
			validate: func(t *testing.T, result any) {
				sales, ok := result.(*domain.SalesQueryResult)
				assert.True(t, ok)
				assert.Len(t, sales.Sales, 1)
				assert.Equal(t, "Coffee Maker", sales.Sales[0].Product)
			},
		},
		{
			name: "getSalesData - sem argumentos devolve tudo",
			tool: ToolGetSalesData,
			args: ``,
			validate: func(t *testing.T, result any) {
				sales, ok := result.(*domain.SalesQueryResult)
				assert.True(t, ok)
				assert.Len(t, sales.Sales, 2)
			},
		},
		{
			name: "getInventoryStatus - deve projetar o estoque",
			tool: ToolGetInventoryStatus,
			args: `{}`,
			validate: func(t *testing.T, result any) {
				inventory, ok := result.(*domain.InventoryStatusResult)
				assert.True(t, ok)
				assert.Len(t, inventory.Items, 1)
			},
		},
		{
			name: "getCustomerAnalytics - deve derivar as métricas de clientes",
			tool: ToolGetCustomerAnalytics,
			args: `{"loyaltyTier":"gold"}`,
			validate: func(t *testing.T, result any) {
				customers, ok := result.(*domain.CustomerAnalyticsResult)
				assert.True(t, ok)
				assert.Equal(t, 1, customers.Analytics.TotalCustomers)
			},
		},
		{
			name: "getStorePerformance - range de datas aninhado é repassado",
			tool: ToolGetStorePerformance,
			args: `{"storeName":"downtown","dateRange":{"start":"2024-12-01","end":"2024-12-31"}}`,
			validate: func(t *testing.T, result any) {
				stores, ok := result.(*domain.StorePerformanceResult)
				assert.True(t, ok)
				assert.Len(t, stores.StorePerformance, 1)
				assert.Equal(t, 359.96, stores.StorePerformance[0].Performance.Revenue)
			},
		},
		{
			name: "getItemStock - consulta legada por item",
			tool: ToolGetItemStock,
			args: `{"item":"Milk 1L"}`,
			validate: func(t *testing.T, result any) {
				stock, ok := result.(*domain.ItemStock)
				assert.True(t, ok)
				assert.Equal(t, 180, stock.QOH)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := newDispatcher(t, 1)

			result, err := dispatcher.Invoke(context.Background(), tt.tool, []byte(tt.args))

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestDispatcher_Invoke_Erros(t *testing.T) {
	tests := []struct {
		name      string
		tool      string
		args      string
		snapshots int
		wantErr   error
	}{
		{
			name:    "Ferramenta fora do catálogo",
			tool:    "getWeather",
			args:    `{}`,
			wantErr: ErrUnknownTool,
		},
		{
			name:    "Argumentos que não decodificam",
			tool:    ToolGetSalesData,
			args:    `{"store":`,
			wantErr: ErrInvalidArguments,
		},
		{
			name:    "Data fora do formato",
			tool:    ToolGetSalesData,
			args:    `{"startDate":"01/12/2024"}`,
			wantErr: ErrInvalidArguments,
		},
		{
			name:    "getDepartmentSales sem data",
			tool:    ToolGetDepartmentSales,
			args:    `{}`,
			wantErr: ErrInvalidArguments,
		},
		{
			name:    "getItemSales sem item",
			tool:    ToolGetItemSales,
			args:    `{"date":"2024-12-01"}`,
			wantErr: ErrInvalidArguments,
		},
		{
			name:      "Item inexistente propaga não encontrado",
			tool:      ToolGetItemStock,
			args:      `{"item":"Bread"}`,
			snapshots: 1,
			wantErr:   domain.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := newDispatcher(t, tt.snapshots)

			result, err := dispatcher.Invoke(context.Background(), tt.tool, []byte(tt.args))

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()

	assert.Len(t, defs, 9)

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		assert.NotEmpty(t, def.Description)
		assert.Equal(t, "object", def.Parameters.Type)
		names = append(names, def.Name)
	}

	assert.Contains(t, names, ToolGetProductAnalytics)
	assert.Contains(t, names, ToolGetDepartmentSales)

	// Ordem estável entre chamadas
	assert.Equal(t, names, func() []string {
		again := make([]string, 0)
		for _, def := range Definitions() {
			again = append(again, def.Name)
		}
		return again
	}())
}
