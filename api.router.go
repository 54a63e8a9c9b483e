package main

import (
	"github.com/julienschmidt/httprouter"
)

// SetupRoutes injects inventory and ops related endpoints if required.
func (api *APIHandler) SetupRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.RedirectTrailingSlash = true
	router.NotFound = api.NotFound()
	api.SetupInventoryRoutes(router, m)
	if api.config.OpsEndpointsEnable {
		api.SetupOpsRoutes(router, m)
	}
	return router
}

// SetupInventoryRoutes injects the author and book api endpoints.
func (api *APIHandler) SetupInventoryRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.GET("/", m.public(api.Index))
	router.GET("/health", m.public(api.Health))

	router.POST("/api/v1/authors", m.public(api.CreateAuthor))
	router.GET("/api/v1/authors", m.public(api.GetAllAuthors))
	router.GET("/api/v1/authors/:id", m.public(api.GetOneAuthor))
	router.PUT("/api/v1/authors/:id", m.public(api.UpdateAuthor))
	router.DELETE("/api/v1/authors/:id", m.public(api.DeleteOneAuthor))

	router.POST("/api/v1/books", m.public(api.CreateBook))
	router.GET("/api/v1/books", m.public(api.GetAllBooks))
	router.GET("/api/v1/books/:id", m.public(api.GetOneBook))
	router.PUT("/api/v1/books/:id", m.public(api.UpdateBook))
	router.DELETE("/api/v1/books/:id", m.public(api.DeleteOneBook))
	return router
}
