package domain

// Store é uma loja cadastrada no dataset
type Store struct {
	Name          string  `json:"name"`
	Manager       string  `json:"manager"`
	MonthlyTarget float64 `json:"monthly_target"`
}

// StoreTopProduct é um produto no top de vendas de uma loja
type StoreTopProduct struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// StoreMetrics são as métricas de desempenho de uma loja no período
type StoreMetrics struct {
	Revenue           float64 `json:"revenue"`
	Transactions      int     `json:"transactions"`
	AvgTransaction    float64 `json:"avgTransaction"`
	TargetAchievement float64 `json:"targetAchievement"` // percentual da meta mensal
}

// StorePerformance é o desempenho de uma loja contra a meta
type StorePerformance struct {
	Store         string            `json:"store"`
	Manager       string            `json:"manager"`
	MonthlyTarget float64           `json:"monthlyTarget"`
	Performance   StoreMetrics      `json:"performance"`
	TopProducts   []StoreTopProduct `json:"topProducts"`
}

// StorePerformanceSummary destaca os totais entre as lojas consultadas
type StorePerformanceSummary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	BestPerformer string  `json:"bestPerformer,omitempty"`
}

// StorePerformanceResult é a resposta da consulta de desempenho de lojas
type StorePerformanceResult struct {
	StorePerformance []StorePerformance      `json:"storePerformance"`
	Summary          StorePerformanceSummary `json:"summary"`
}

// StoreFilters são os filtros da consulta de desempenho de lojas.
// O range de datas é opcional; quando presente, ambas as datas são exigidas.
type StoreFilters struct {
	StoreName string
	StartDate string
	EndDate   string
}
