package router

import (
	"net/http"
	"todoapi/internal/handlers/root"
	"todoapi/internal/handlers/todo"
	"todoapi/shared/constant"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Root root.Handler
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Root.Router(router)
	r.DomainHandlers.Todo.Router(router)

	router.Get(constant.ResponseDocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, constant.ResponseDocsPath+"/index.html", http.StatusMovedPermanently)
	})
	router.Get(constant.ResponseDocsPath+"/*", httpSwagger.Handler())
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
