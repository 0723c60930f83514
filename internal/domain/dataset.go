package domain

import "errors"

// ErrDatasetUnavailable indica que nenhum snapshot do dataset foi carregado
// com sucesso até o momento. É a única falha dura do serviço de consultas.
var ErrDatasetUnavailable = errors.New("failed to load data")

// ErrResourceNotFound indica que a consulta por chave exata não encontrou o
// registro no snapshot corrente
var ErrResourceNotFound = errors.New("resource not found")

// Dataset é o snapshot imutável com todos os dados de varejo carregados em
// memória. Cada consulta lê um snapshot completo; nada é mutado após a carga.
type Dataset struct {
	Sales     []SaleRecord      `json:"sales"`
	Inventory []InventoryRecord `json:"inventory"`
	Customers []Customer        `json:"customers"`
	Stores    []Store           `json:"stores"`

	// Dados do dataset legado de smart retail
	DepartmentSales []DepartmentSale `json:"departmentSales"`
	ItemSales       []ItemSale       `json:"itemSales"`
	ItemStock       []ItemStock      `json:"itemStock"`
	ItemSpecials    []ItemSpecial    `json:"itemSpecials"`
}

// InventoryByProduct indexa o inventário por nome exato de produto.
// A chave é o nome como está no dataset, sem normalização.
func (d *Dataset) InventoryByProduct() map[string]InventoryRecord {
	byProduct := make(map[string]InventoryRecord, len(d.Inventory))
	for _, item := range d.Inventory {
		byProduct[item.Product] = item
	}
	return byProduct
}
