package handler

import (
	"net/http"

	"github.com/vfg2006/retailbot-api/internal/api/handler/router"
	"github.com/vfg2006/retailbot-api/internal/tooling"
	"github.com/vfg2006/retailbot-api/internal/usecases/analyzing"
	"github.com/vfg2006/retailbot-api/internal/usecases/authenticating"
	"github.com/vfg2006/retailbot-api/internal/usecases/querying"
	"github.com/vfg2006/retailbot-api/internal/usecases/reporting"
	"github.com/vfg2006/retailbot-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Tools(dispatcher *tooling.Dispatcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tools",
			Method:      http.MethodGet,
			Handler:     ListTools(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tools/:name/invoke",
			Method:      http.MethodPost,
			Handler:     InvokeTool(dispatcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ProductAnalytics(service analyzing.ProductAnalyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/products",
			Method:      http.MethodGet,
			Handler:     GetProductAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(service querying.SalesQuerier) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     GetSalesData(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/departments/sales",
			Method:      http.MethodGet,
			Handler:     GetDepartmentSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:item/sales",
			Method:      http.MethodGet,
			Handler:     GetItemSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:item/stock",
			Method:      http.MethodGet,
			Handler:     GetItemStock(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:item/specials",
			Method:      http.MethodGet,
			Handler:     GetItemSpecials(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/inventory/status",
			Method:      http.MethodGet,
			Handler:     GetInventoryStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/analytics",
			Method:      http.MethodGet,
			Handler:     GetCustomerAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/stores/performance",
			Method:      http.MethodGet,
			Handler:     GetStorePerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
