// Package analyzing implementa o motor de analytics de produtos: agregação,
// junção com custo de inventário e ranking configurável.
package analyzing

import (
	"sort"
	"strings"

	"github.com/vfg2006/retailbot-api/infrastructure/dataset"
	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/pkg/utils"
)

// DefaultTopN é o tamanho padrão do ranking de produtos
const DefaultTopN = 5

// AnalyticsParams são os parâmetros da consulta de analytics de produtos.
// Campos vazios/zerados assumem os defaults em normalize.
type AnalyticsParams struct {
	Category  string
	TopN      int
	SortBy    domain.SortKey
	SortOrder domain.SortOrder
}

// ProductAnalyzer expõe o motor de analytics de produtos
type ProductAnalyzer interface {
	ProductAnalytics(params AnalyticsParams) (*domain.AnalyticsResult, error)
}

type Service struct {
	datasetProvider dataset.Provider
}

func NewService(datasetProvider dataset.Provider) ProductAnalyzer {
	return &Service{datasetProvider: datasetProvider}
}

func (p *AnalyticsParams) normalize() {
	if p.TopN < 1 {
		p.TopN = DefaultTopN
	}

	if !domain.ValidSortKey(p.SortBy) {
		p.SortBy = domain.SortByRevenue
	}

	if p.SortOrder != domain.SortAsc {
		p.SortOrder = domain.SortDesc
	}
}

// ProductAnalytics agrega as vendas por produto, junta o custo do inventário
// e produz o ranking, o rollup por categoria e o bloco de destaques.
// A única falha possível é o snapshot do dataset indisponível; um conjunto
// filtrado vazio produz um resultado válido com listas vazias.
func (s *Service) ProductAnalytics(params AnalyticsParams) (*domain.AnalyticsResult, error) {
	params.normalize()

	ds, err := s.datasetProvider.Snapshot()
	if err != nil {
		return nil, err
	}

	sales := filterByCategory(ds.Sales, params.Category)
	products := aggregateProducts(sales, ds.InventoryByProduct())

	sortProducts(products, params.SortBy, params.SortOrder)

	topProducts := products
	if len(topProducts) > params.TopN {
		topProducts = topProducts[:params.TopN]
	}

	result := &domain.AnalyticsResult{
		TopProducts:         topProducts,
		CategoryPerformance: rollupCategories(products),
		Summary:             buildSummary(products, topProducts, params),
		Metadata: domain.AnalyticsMetadata{
			SortBy:        params.SortBy,
			SortOrder:     params.SortOrder,
			IsLowestFirst: params.SortOrder == domain.SortAsc,
		},
	}

	return result, nil
}

// filterByCategory aplica o filtro de categoria por substring, sem distinção
// de maiúsculas/minúsculas. Filtro vazio mantém todas as vendas.
func filterByCategory(sales []domain.SaleRecord, category string) []domain.SaleRecord {
	if category == "" {
		return sales
	}

	needle := strings.ToLower(category)
	filtered := make([]domain.SaleRecord, 0, len(sales))
	for _, sale := range sales {
		if strings.Contains(strings.ToLower(sale.Category), needle) {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}

// aggregateProducts agrupa as vendas por produto em uma única passada,
// preservando a ordem do primeiro encontro. A categoria atribuída é a do
// primeiro registro visto para o produto (política documentada: registros
// posteriores com categoria divergente não são reconciliados).
// O custo vem do inventário completo por igualdade exata de nome; 0 quando
// ausente. Quantity e Revenue ficam sem arredondamento para manter a
// conservação de receita; os campos derivados são arredondados aqui.
func aggregateProducts(sales []domain.SaleRecord, inventory map[string]domain.InventoryRecord) []domain.ProductMetric {
	products := make([]domain.ProductMetric, 0)
	indexByProduct := make(map[string]int)

	for _, sale := range sales {
		idx, seen := indexByProduct[sale.Product]
		if !seen {
			idx = len(products)
			indexByProduct[sale.Product] = idx
			products = append(products, domain.ProductMetric{
				Product:  sale.Product,
				Category: sale.Category,
			})
		}

		products[idx].Quantity += sale.Quantity
		products[idx].Revenue += sale.Total
		products[idx].Transactions++
	}

	for i := range products {
		cost := inventory[products[i].Product].Cost

		avgPrice := products[i].Revenue / float64(products[i].Quantity)
		profit := (avgPrice - cost) * float64(products[i].Quantity)

		profitMargin := 0.0
		if cost > 0 {
			profitMargin = ((avgPrice - cost) / avgPrice) * 100
		}

		products[i].AvgPrice = utils.RoundWithTwoDecimalPlace(avgPrice)
		products[i].Profit = utils.RoundWithTwoDecimalPlace(profit)
		products[i].ProfitMargin = utils.RoundWithOneDecimalPlace(profitMargin)
	}

	return products
}

// sortValue extrai a chave numérica de ordenação de um produto
func sortValue(m domain.ProductMetric, key domain.SortKey) float64 {
	switch key {
	case domain.SortByQuantity:
		return float64(m.Quantity)
	case domain.SortByProfit:
		return m.Profit
	case domain.SortByProfitMargin:
		return m.ProfitMargin
	default:
		return m.Revenue
	}
}

// sortProducts ordena o slice de forma estável: empates preservam a ordem do
// primeiro encontro no conjunto de vendas
func sortProducts(products []domain.ProductMetric, key domain.SortKey, order domain.SortOrder) {
	sort.SliceStable(products, func(i, j int) bool {
		vi, vj := sortValue(products[i], key), sortValue(products[j], key)
		if order == domain.SortAsc {
			return vi < vj
		}
		return vi > vj
	})
}

// rollupCategories agrega o conjunto completo de produtos (pós filtro de
// categoria, sem corte de topN) por categoria, na ordem do primeiro encontro
func rollupCategories(products []domain.ProductMetric) []domain.CategoryRollup {
	rollups := make([]domain.CategoryRollup, 0)
	indexByCategory := make(map[string]int)

	for _, p := range products {
		idx, seen := indexByCategory[p.Category]
		if !seen {
			idx = len(rollups)
			indexByCategory[p.Category] = idx
			rollups = append(rollups, domain.CategoryRollup{Category: p.Category})
		}

		rollups[idx].Revenue += p.Revenue
		rollups[idx].Quantity += p.Quantity
	}

	return rollups
}

func buildSummary(products, topProducts []domain.ProductMetric, params AnalyticsParams) domain.AnalyticsSummary {
	summary := domain.AnalyticsSummary{
		TotalProducts: len(products),
	}

	for _, p := range products {
		summary.TotalRevenue += p.Revenue
	}

	if len(topProducts) > 0 {
		summary.BestSeller = bestSellerLabel(topProducts[0].Product, params)
	}

	// A maior margem é calculada sobre o conjunto completo, independente da
	// ordenação solicitada; empates ficam com o primeiro encontrado
	for i := range products {
		if summary.HighestMargin == nil || products[i].ProfitMargin > summary.HighestMargin.ProfitMargin {
			metric := products[i]
			summary.HighestMargin = &metric
		}
	}

	return summary
}

// bestSellerLabel rotula o primeiro colocado do ranking. Em ordem ascendente
// o primeiro colocado é na verdade o pior, e o rótulo deixa isso explícito
// para a camada de linguagem natural.
func bestSellerLabel(product string, params AnalyticsParams) string {
	if params.SortOrder == domain.SortAsc {
		switch params.SortBy {
		case domain.SortByQuantity:
			return product + " (least sold)"
		case domain.SortByRevenue:
			return product + " (lowest revenue)"
		}
	}

	return product
}
