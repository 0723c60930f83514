package domain

// Customer é o perfil de cliente do dataset
type Customer struct {
	Name           string  `json:"name"`
	LoyaltyTier    string  `json:"loyalty_tier"`
	TotalPurchases float64 `json:"total_purchases"`
}

// TopCustomer é a projeção de um cliente no ranking de maiores compradores
type TopCustomer struct {
	Name           string  `json:"name"`
	TotalPurchases float64 `json:"totalPurchases"`
	Tier           string  `json:"tier"`
}

// CustomerAnalytics são as métricas derivadas da base de clientes
type CustomerAnalytics struct {
	TotalCustomers       int            `json:"totalCustomers"`
	TotalRevenue         float64        `json:"totalRevenue"`
	AverageCustomerValue float64        `json:"averageCustomerValue"`
	LoyaltyDistribution  map[string]int `json:"loyaltyDistribution"`
	TopCustomers         []TopCustomer  `json:"topCustomers"`
}

// CustomerAnalyticsResult combina clientes filtrados e métricas
type CustomerAnalyticsResult struct {
	Customers []Customer        `json:"customers"`
	Analytics CustomerAnalytics `json:"analytics"`
}

// CustomerFilters são os filtros da consulta de clientes
type CustomerFilters struct {
	LoyaltyTier  string
	MinPurchases float64
}
