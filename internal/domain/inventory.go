package domain

// InventoryRecord é uma posição de estoque do dataset. Product é a chave de
// junção com as vendas (igualdade exata de nome).
type InventoryRecord struct {
	Product      string  `json:"product"`
	Category     string  `json:"category"`
	Cost         float64 `json:"cost"`
	CurrentStock int     `json:"current_stock"`
	ReorderPoint int     `json:"reorder_point"`
}

// LowStock informa se o item está no ponto de reposição ou abaixo dele
func (r InventoryRecord) LowStock() bool {
	return r.CurrentStock <= r.ReorderPoint
}

// StockValue é o valor do estoque corrente a preço de custo
func (r InventoryRecord) StockValue() float64 {
	return float64(r.CurrentStock) * r.Cost
}

// InventoryItemStatus é a projeção de um item de inventário na resposta de
// status de estoque
type InventoryItemStatus struct {
	Product      string  `json:"product"`
	Category     string  `json:"category"`
	CurrentStock int     `json:"currentStock"`
	ReorderPoint int     `json:"reorderPoint"`
	Cost         float64 `json:"cost"`
	StockValue   float64 `json:"stockValue"`
	LowStock     bool    `json:"lowStock"`
}

// InventorySummary resume a posição de estoque do conjunto filtrado
type InventorySummary struct {
	TotalItems      int     `json:"totalItems"`
	TotalStockValue float64 `json:"totalStockValue"`
	LowStockCount   int     `json:"lowStockCount"`
}

// InventoryStatusResult é a resposta da consulta de status de estoque.
// LowStockItems cobre o inventário completo, independente dos filtros, para
// que alertas de reposição nunca fiquem ocultos por um filtro de categoria.
type InventoryStatusResult struct {
	Items         []InventoryItemStatus `json:"items"`
	LowStockItems []InventoryItemStatus `json:"lowStockItems"`
	Summary       InventorySummary      `json:"summary"`
	Report        string                `json:"report"`
}

// InventoryFilters são os filtros da consulta de status de estoque
type InventoryFilters struct {
	Category     string
	LowStockOnly bool
}
