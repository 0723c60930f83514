package tooling

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/internal/usecases/analyzing"
	"github.com/vfg2006/retailbot-api/internal/usecases/querying"
	"github.com/vfg2006/retailbot-api/internal/usecases/reporting"
	"github.com/vfg2006/retailbot-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrUnknownTool indica invocação de ferramenta fora do catálogo
	ErrUnknownTool = errors.New("ferramenta desconhecida")
	// ErrInvalidArguments indica argumentos que não decodificam ou violam o schema
	ErrInvalidArguments = errors.New("argumentos inválidos")
)

// Dispatcher roteia invocações de ferramentas para os serviços de consulta.
// Cada invocação recebe um ID próprio para correlação nos logs.
type Dispatcher struct {
	analyzer analyzing.ProductAnalyzer
	querier  querying.SalesQuerier
	reporter reporting.Reporter
}

func NewDispatcher(
	analyzer analyzing.ProductAnalyzer,
	querier querying.SalesQuerier,
	reporter reporting.Reporter,
) *Dispatcher {
	return &Dispatcher{
		analyzer: analyzer,
		querier:  querier,
		reporter: reporter,
	}
}

type salesDataArgs struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Store     string `json:"store"`
	Product   string `json:"product"`
	Category  string `json:"category"`
}

type inventoryStatusArgs struct {
	Category     string `json:"category"`
	LowStockOnly bool   `json:"lowStockOnly"`
}

type customerAnalyticsArgs struct {
	LoyaltyTier  string  `json:"loyaltyTier"`
	MinPurchases float64 `json:"minPurchases"`
}

type storePerformanceArgs struct {
	StoreName string `json:"storeName"`
	DateRange *struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"dateRange"`
}

type productAnalyticsArgs struct {
	Category  string `json:"category"`
	TopN      int    `json:"topN"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

type dateArgs struct {
	Date string `json:"date"`
}

type dateItemArgs struct {
	Date string `json:"date"`
	Item string `json:"item"`
}

type itemArgs struct {
	Item string `json:"item"`
}

// Invoke executa a ferramenta nomeada com os argumentos JSON crus e devolve o
// resultado estruturado do serviço correspondente
func (d *Dispatcher) Invoke(ctx context.Context, name string, rawArgs []byte) (any, error) {
	invocationID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tool":          name,
		"invocation_id": invocationID,
	}).Info("Invocando ferramenta de analytics")

	if logrus.IsLevelEnabled(logrus.DebugLevel) && len(rawArgs) > 0 {
		logrus.Debugf("Argumentos da ferramenta %s: %s", name, utils.PrettyJson(rawArgs))
	}

	result, err := d.dispatch(ctx, name, rawArgs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tool":          name,
			"invocation_id": invocationID,
		}).Warnf("Invocação de ferramenta falhou: %v", err)
		return nil, err
	}

	return result, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, rawArgs []byte) (any, error) {
	if len(rawArgs) == 0 {
		rawArgs = []byte("{}")
	}

	switch name {
	case ToolGetSalesData:
		args := salesDataArgs{}
		if err := decodeArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		if err := validateDates(args.StartDate, args.EndDate); err != nil {
			return nil, err
		}
		return d.querier.SalesData(domain.SalesFilters{
			StartDate: args.StartDate,
			EndDate:   args.EndDate,
			Store:     args.Store,
			Product:   args.Product,
			Category:  args.Category,
		})

	case ToolGetInventoryStatus:
		args := inventoryStatusArgs{}
		if err := decodeArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		return d.reporter.InventoryStatus(domain.InventoryFilters{
			Category:     args.Category,
			LowStockOnly: args.LowStockOnly,
		})

	case ToolGetCustomerAnalytics:
		args := customerAnalyticsArgs{}
		if err := decodeArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		return d.reporter.CustomerAnalytics(domain.CustomerFilters{
			LoyaltyTier:  args.LoyaltyTier,
			MinPurchases: args.MinPurchases,
		})

	case ToolGetStorePerformance:
		args := storePerformanceArgs{}
		if err := decodeArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		filters := domain.StoreFilters{StoreName: args.StoreName}
		if args.DateRange != nil {
			if err := validateDates(args.DateRange.Start, args.DateRange.End); err != nil {
				return nil, err
			}
			filters.StartDate = args.DateRange.Start
			filters.EndDate = args.DateRange.End
		}
		return d.reporter.StorePerformance(ctx, filters)

	case ToolGetProductAnalytics:
		args := productAnalyticsArgs{}
		if err := decodeArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		return d.analyzer.ProductAnalytics(analyzing.AnalyticsParams{
			Category:  args.Category,
			TopN:      args.TopN,
			SortBy:    domain.SortKey(args.SortBy),
			SortOrder: domain.SortOrder(args.SortOrder),
		})

	case ToolGetDepartmentSales:
		args := dateArgs{}
		if err := decodeArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		if args.Date == "" {
			return nil, fmt.Errorf("%w: date é obrigatório", ErrInvalidArguments)
		}
		return d.querier.DepartmentSales(args.Date)

	case ToolGetItemSales:
		args := dateItemArgs{}
		if err := decodeArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		if args.Date == "" || args.Item == "" {
			return nil, fmt.Errorf("%w: date e item são obrigatórios", ErrInvalidArguments)
		}
		return d.querier.ItemSale(args.Date, args.Item)

	case ToolGetItemStock:
		args := itemArgs{}
		if err := decodeArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		if args.Item == "" {
			return nil, fmt.Errorf("%w: item é obrigatório", ErrInvalidArguments)
		}
		return d.querier.ItemStock(args.Item)

	case ToolGetItemSpecials:
		args := itemArgs{}
		if err := decodeArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		if args.Item == "" {
			return nil, fmt.Errorf("%w: item é obrigatório", ErrInvalidArguments)
		}
		return d.querier.ItemSpecials(args.Item)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
}

func decodeArgs(rawArgs []byte, target any) error {
	if err := json.Unmarshal(rawArgs, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}

func validateDates(dates ...string) error {
	for _, date := range dates {
		if err := utils.ValidateDateString(date); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
	}
	return nil
}
