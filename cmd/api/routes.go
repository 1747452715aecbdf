// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router
// wrapped in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	requestID → logRequest → recoverPanic → router
//
// Current endpoints:
//
//	GET    /                 – welcome message and endpoint map
//	GET    /v1/healthcheck   – service status
//	POST   /v1/books         – create a new book
//	GET    /v1/books         – list all books
//	GET    /v1/books/:id     – retrieve a single book by ID
//	PUT    /v1/books/:id     – update an existing book (partial merge)
//	PATCH  /v1/books/:id     – update an existing book (partial merge)
//	DELETE /v1/books/:id     – delete a book by ID
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.welcomeHandler)
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)

	// Book CRUD routes
	router.HandlerFunc(http.MethodPost, "/v1/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/v1/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/v1/books/:id", app.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/v1/books/:id", app.updateBookHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/books/:id", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/books/:id", app.deleteBookHandler)

	// recoverPanic sits inside logRequest so a recovered panic is still
	// logged as a 500 with its request id.
	return app.requestID(app.logRequest(app.recoverPanic(router)))
}
