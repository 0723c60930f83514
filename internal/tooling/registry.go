// Package tooling expõe o catálogo de ferramentas de analytics para o
// orquestrador de IA e o despacho de invocações para os serviços de consulta.
package tooling

// Schema descreve os parâmetros de uma ferramenta em JSON Schema, no formato
// que os orquestradores de function calling consomem
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

type Property struct {
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	Default     any                 `json:"default,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
}

// Definition é uma ferramenta publicada no catálogo
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  Schema `json:"parameters"`
}

// Nomes das ferramentas publicadas
const (
	ToolGetSalesData         = "getSalesData"
	ToolGetInventoryStatus   = "getInventoryStatus"
	ToolGetCustomerAnalytics = "getCustomerAnalytics"
	ToolGetStorePerformance  = "getStorePerformance"
	ToolGetProductAnalytics  = "getProductAnalytics"
	ToolGetDepartmentSales   = "getDepartmentSales"
	ToolGetItemSales         = "getItemSales"
	ToolGetItemStock         = "getItemStock"
	ToolGetItemSpecials      = "getItemSpecials"
)

// Definitions devolve o catálogo estático de ferramentas. A ordem é estável
// para que o payload publicado não mude entre respostas.
func Definitions() []Definition {
	return []Definition{
		{
			Name:        ToolGetSalesData,
			Description: "Get sales data with optional filters by date range, store, product, or category. If no dates provided, returns all available data.",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"startDate": {Type: "string", Description: "Start date (YYYY-MM-DD) - optional"},
					"endDate":   {Type: "string", Description: "End date (YYYY-MM-DD) - optional"},
					"store":     {Type: "string", Description: "Store name"},
					"product":   {Type: "string", Description: "Product name"},
					"category":  {Type: "string", Description: "Product category"},
				},
			},
		},
		{
			Name:        ToolGetInventoryStatus,
			Description: "Get current inventory status and identify low stock items",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"category":     {Type: "string", Description: "Filter by product category"},
					"lowStockOnly": {Type: "boolean", Default: false, Description: "Show only low stock items"},
				},
			},
		},
		{
			Name:        ToolGetCustomerAnalytics,
			Description: "Get customer analytics including top customers and loyalty distribution",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"loyaltyTier":  {Type: "string", Description: "Filter by loyalty tier (Gold, Silver, Bronze)"},
					"minPurchases": {Type: "number", Description: "Minimum total purchase amount"},
				},
			},
		},
		{
			Name:        ToolGetStorePerformance,
			Description: "Get store performance metrics and compare against targets",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"storeName": {Type: "string", Description: "Specific store name"},
					"dateRange": {
						Type: "object",
						Properties: map[string]Property{
							"start": {Type: "string", Description: "Start date (YYYY-MM-DD)"},
							"end":   {Type: "string", Description: "End date (YYYY-MM-DD)"},
						},
						Required: []string{"start", "end"},
					},
				},
			},
		},
		{
			Name:        ToolGetProductAnalytics,
			Description: "Analyze product performance including best/worst sellers, profit margins, and various sorting options",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"category": {Type: "string", Description: "Filter by category"},
					"topN":     {Type: "number", Default: 5, Description: "Number of products to return"},
					"sortBy": {
						Type:        "string",
						Enum:        []string{"revenue", "quantity", "profit", "profitMargin"},
						Default:     "revenue",
						Description: "Sort products by: revenue, quantity, profit, or profitMargin",
					},
					"sortOrder": {
						Type:        "string",
						Enum:        []string{"asc", "desc"},
						Default:     "desc",
						Description: "Sort order: desc for highest first, asc for lowest first",
					},
				},
			},
		},
		{
			Name:        ToolGetDepartmentSales,
			Description: "Get sales data for all departments on a specific date",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"date": {Type: "string", Description: "Date in YYYY-MM-DD format"},
				},
				Required: []string{"date"},
			},
		},
		{
			Name:        ToolGetItemSales,
			Description: "Get sales data for a specific item on a specific date",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"date": {Type: "string", Description: "Date in YYYY-MM-DD format"},
					"item": {Type: "string", Description: "Item ID"},
				},
				Required: []string{"date", "item"},
			},
		},
		{
			Name:        ToolGetItemStock,
			Description: "Get current stock quantity for a specific item",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"item": {Type: "string", Description: "Item ID"},
				},
				Required: []string{"item"},
			},
		},
		{
			Name:        ToolGetItemSpecials,
			Description: "Get special promotions for a specific item",
			Parameters: Schema{
				Type: "object",
				Properties: map[string]Property{
					"item": {Type: "string", Description: "Item ID"},
				},
				Required: []string{"item"},
			},
		},
	}
}
