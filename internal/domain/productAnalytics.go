package domain

// SortKey define o campo de ordenação do ranking de produtos
type SortKey string

const (
	SortByRevenue      SortKey = "revenue"
	SortByQuantity     SortKey = "quantity"
	SortByProfit       SortKey = "profit"
	SortByProfitMargin SortKey = "profitMargin"
)

// SortOrder define a direção da ordenação
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ValidSortKey informa se a chave de ordenação é reconhecida
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortByRevenue, SortByQuantity, SortByProfit, SortByProfitMargin:
		return true
	}
	return false
}

// ProductMetric é o agregado derivado por produto.
// Quantity e Revenue são somas brutas (sem arredondamento) para preservar a
// conservação de receita; AvgPrice e Profit são arredondados para 2 casas e
// ProfitMargin para 1 casa na construção.
type ProductMetric struct {
	Product      string  `json:"product"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
	AvgPrice     float64 `json:"avgPrice"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}

// CategoryRollup é o agregado derivado por categoria
type CategoryRollup struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}

// AnalyticsSummary é o bloco de destaque do resultado de analytics
type AnalyticsSummary struct {
	TotalProducts int            `json:"totalProducts"`
	TotalRevenue  float64        `json:"totalRevenue"`
	BestSeller    string         `json:"bestSeller,omitempty"`
	HighestMargin *ProductMetric `json:"highestMargin,omitempty"`
}

// AnalyticsMetadata registra a ordenação solicitada
type AnalyticsMetadata struct {
	SortBy        SortKey   `json:"sortBy"`
	SortOrder     SortOrder `json:"sortOrder"`
	IsLowestFirst bool      `json:"isLowestFirst"`
}

// AnalyticsResult é o resultado completo do motor de analytics de produtos.
// Os nomes de campo são contrato com a camada de apresentação.
type AnalyticsResult struct {
	TopProducts         []ProductMetric   `json:"topProducts"`
	CategoryPerformance []CategoryRollup  `json:"categoryPerformance"`
	Summary             AnalyticsSummary  `json:"summary"`
	Metadata            AnalyticsMetadata `json:"metadata"`
}
