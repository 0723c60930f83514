package domain

// SaleRecord representa uma linha de transação de venda do dataset.
// Vários registros podem referenciar o mesmo produto.
type SaleRecord struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Store    string  `json:"store"`
	Product  string  `json:"product"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// SalesSummary resume um conjunto filtrado de vendas para interpretação pela IA
type SalesSummary struct {
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalQuantity        int     `json:"totalQuantity"`
	NumberOfTransactions int     `json:"numberOfTransactions"`
	AverageOrderValue    float64 `json:"averageOrderValue"`
}

// SalesQueryResult é a resposta da consulta de vendas com filtros opcionais
type SalesQueryResult struct {
	Sales   []SaleRecord `json:"sales"`
	Summary SalesSummary `json:"summary"`
}

// SalesFilters são os filtros opcionais aceitos pela consulta de vendas.
// Datas no formato YYYY-MM-DD (range inclusivo); os demais campos são
// filtros de substring sem distinção de maiúsculas/minúsculas.
type SalesFilters struct {
	StartDate string
	EndDate   string
	Store     string
	Product   string
	Category  string
}
