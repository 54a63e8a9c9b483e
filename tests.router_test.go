package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

// newRouterTestInventory provides a fully stubbed inventory so every
// routed handler can run during routing checks.
func newRouterTestInventory() *MockInventory {
	return &MockInventory{
		CreateAuthorFunc:  func(ctx context.Context, author Author) (Author, error) { return author, nil },
		GetOneAuthorFunc:  func(ctx context.Context, id string) (Author, error) { return Author{ID: id}, nil },
		UpdateAuthorFunc:  func(ctx context.Context, id string, author Author) (Author, error) { return author, nil },
		DeleteAuthorFunc:  func(ctx context.Context, id string) error { return nil },
		GetAllAuthorsFunc: func(ctx context.Context) ([]Author, error) { return []Author{}, nil },
		CreateBookFunc:    func(ctx context.Context, book Book) (BookWithAuthor, error) { return BookWithAuthor{Book: book}, nil },
		GetOneBookFunc:    func(ctx context.Context, id string) (BookWithAuthor, error) { return BookWithAuthor{}, nil },
		UpdateBookFunc:    func(ctx context.Context, id string, book Book) (BookWithAuthor, error) { return BookWithAuthor{Book: book}, nil },
		DeleteBookFunc:    func(ctx context.Context, id string) error { return nil },
		GetAllBooksFunc:   func(ctx context.Context) ([]BookWithAuthor, error) { return []BookWithAuthor{}, nil },
	}
}

// TestSetupInventoryRoutes ensures all expected author and book
// endpoints are implemented.
func TestSetupInventoryRoutes(t *testing.T) {
	testCases := []struct {
		name        string
		request     *http.Request
		implemented bool
	}{
		{
			"index endpoint",
			httptest.NewRequest(http.MethodGet, "/", nil),
			true,
		},
		{
			"health endpoint",
			httptest.NewRequest(http.MethodGet, "/health", nil),
			true,
		},
		{
			"create author endpoint",
			httptest.NewRequest(http.MethodPost, "/api/v1/authors", nil),
			true,
		},
		{
			"fetch all authors endpoint",
			httptest.NewRequest(http.MethodGet, "/api/v1/authors", nil),
			true,
		},
		{
			"fetch all authors endpoint with slash",
			httptest.NewRequest(http.MethodGet, "/api/v1/authors/", nil),
			true,
		},
		{
			"fetch single author endpoint",
			httptest.NewRequest(http.MethodGet, "/api/v1/authors/a:cb8f2136-fae4-4200-85d9-3533c7f8c70d", nil),
			true,
		},
		{
			"update author endpoint",
			httptest.NewRequest(http.MethodPut, "/api/v1/authors/a:cb8f2136-fae4-4200-85d9-3533c7f8c70d", nil),
			true,
		},
		{
			"delete author endpoint",
			httptest.NewRequest(http.MethodDelete, "/api/v1/authors/a:cb8f2136-fae4-4200-85d9-3533c7f8c70d", nil),
			true,
		},
		{
			"create book endpoint",
			httptest.NewRequest(http.MethodPost, "/api/v1/books", nil),
			true,
		},
		{
			"fetch all books endpoint",
			httptest.NewRequest(http.MethodGet, "/api/v1/books", nil),
			true,
		},
		{
			"fetch single book endpoint",
			httptest.NewRequest(http.MethodGet, "/api/v1/books/b:cb8f2136-fae4-4200-85d9-3533c7f8c70d", nil),
			true,
		},
		{
			"update book endpoint",
			httptest.NewRequest(http.MethodPut, "/api/v1/books/b:cb8f2136-fae4-4200-85d9-3533c7f8c70d", nil),
			true,
		},
		{
			"delete book endpoint",
			httptest.NewRequest(http.MethodDelete, "/api/v1/books/b:cb8f2136-fae4-4200-85d9-3533c7f8c70d", nil),
			true,
		},
		{
			"invalid api endpoint",
			httptest.NewRequest(http.MethodGet, "/api/v1", nil),
			false,
		},
		{
			"invalid authors endpoint",
			httptest.NewRequest(http.MethodGet, "/authors", nil),
			false,
		},
		{
			"invalid books endpoint",
			httptest.NewRequest(http.MethodGet, "/books", nil),
			false,
		},
	}

	api := newTestAPIHandler(newRouterTestInventory(), true)
	router := httprouter.New()
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	api.SetupInventoryRoutes(router, m)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)
			if tc.implemented {
				assert.NotEqual(t, 404, w.Code)
			} else {
				assert.Equal(t, 404, w.Code)
			}
		})
	}
}

// TestSetupOpsRoutes ensures all expected operations endpoints are implemented.
func TestSetupOpsRoutes(t *testing.T) {
	testCases := []struct {
		name        string
		request     *http.Request
		implemented bool
	}{
		{
			"fetch configs endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/configs", nil),
			true,
		},
		{
			"fetch stats endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/stats", nil),
			true,
		},
		{
			"maintenance mode endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/maintenance", nil),
			true,
		},
		{
			"memory stats endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/debug/vars", nil),
			true,
		},
		{
			"invalid ops endpoint",
			httptest.NewRequest(http.MethodGet, "/ops", nil),
			false,
		},
		{
			"unknown ops endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/unknown", nil),
			false,
		},
		{
			"disabled profiler endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/debug/pprof/", nil),
			false,
		},
	}

	api := newTestAPIHandler(&MockInventory{}, true)
	router := httprouter.New()
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	api.SetupOpsRoutes(router, m)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)
			if tc.implemented {
				assert.NotEqual(t, 404, w.Code)
			} else {
				assert.Equal(t, 404, w.Code)
			}
		})
	}
}

// TestSetupRoutes ensures the ops endpoints are only wired when enabled
// and that unknown routes get the json not found envelope.
func TestSetupRoutes(t *testing.T) {
	testCases := []struct {
		name               string
		opsEndpointsEnable bool
		request            *http.Request
		implemented        bool
	}{
		{
			"ops disable:fetch configs endpoint",
			false,
			httptest.NewRequest(http.MethodGet, "/ops/configs", nil),
			false,
		},
		{
			"ops enable:fetch configs endpoint",
			true,
			httptest.NewRequest(http.MethodGet, "/ops/configs", nil),
			true,
		},
		{
			"ops enable:disabled profiler endpoint",
			true,
			httptest.NewRequest(http.MethodGet, "/ops/debug/pprof/", nil),
			false,
		},
		{
			"ops disable:create author endpoint",
			false,
			httptest.NewRequest(http.MethodPost, "/api/v1/authors", nil),
			true,
		},
		{
			"ops disable:fetch all books endpoint",
			false,
			httptest.NewRequest(http.MethodGet, "/api/v1/books", nil),
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestAPIHandler(newRouterTestInventory(), true)
			api.config.OpsEndpointsEnable = tc.opsEndpointsEnable
			router := httprouter.New()
			m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
			api.SetupRoutes(router, m)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)
			if tc.implemented {
				assert.NotEqual(t, 404, w.Code)
			} else {
				assert.Equal(t, 404, w.Code)
			}
		})
	}
}

// TestSetupRoutes_NotFoundEnvelope ensures an unknown route receives
// the same json error envelope as any other failure.
func TestSetupRoutes_NotFoundEnvelope(t *testing.T) {
	api := newTestAPIHandler(&MockInventory{}, true)
	router := httprouter.New()
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	api.SetupRoutes(router, m)

	req := httptest.NewRequest(http.MethodGet, "/definitely/not/there", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	m2 := decodeBody(t, res)
	assert.Equal(t, CodeNotFound, m2["code"])
	assert.Equal(t, "route not found", m2["message"])
}
