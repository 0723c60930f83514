// Package router embrulha o httprouter com registro declarativo de rotas
// por família de handlers.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route descreve uma rota da API e os middlewares aplicados somente a ela
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type ConfigRouter func(*Router)

// WithRoutes registra um grupo de rotas de uma família de handlers
func WithRoutes(routes ...Route) ConfigRouter {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

type Router struct {
	router *httprouter.Router
}

func New(configs ...ConfigRouter) Router {
	r := &Router{router: httprouter.New()}

	for _, config := range configs {
		config(r)
	}

	return *r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas aplicando os middlewares do último para o
// primeiro, de modo que o primeiro da lista envolva os demais
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
