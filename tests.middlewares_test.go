package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

// TestMiddlewaresStacks ensures we get both public and ops middlewares
// stacks with exact number of elements in those stacks.
func TestMiddlewaresStacks(t *testing.T) {
	api := newTestAPIHandler(&MockInventory{}, true)
	pub, ops := api.MiddlewaresStacks()
	assert.Equal(t, 7, len(*pub))
	assert.Equal(t, 4, len(*ops))
}

// TestChain ensures each middleware in the stack is called as well the handler.
func TestChain(t *testing.T) {
	var ca, cb, cc, ch bool
	queue := make(chan int, 4)

	middlewareA := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			queue <- 1
			ca = true
			next(w, r, ps)
		}
	}
	middlewareB := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			queue <- 2
			cb = true
			next(w, r, ps)
		}
	}
	middlewareC := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			queue <- 3
			cc = true
			next(w, r, ps)
		}
	}
	middlewares := Middlewares{
		middlewareA,
		middlewareB,
		middlewareC,
	}

	handler := func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		queue <- 4
		ch = true
	}

	chained := (&middlewares).Chain(handler)
	req := httptest.NewRequest("GET", "/api/v1/books", nil)
	w := httptest.NewRecorder()
	chained(w, req, nil)

	t.Run("check calling", func(t *testing.T) {
		assert.Equal(t, true, ca)
		assert.Equal(t, true, cb)
		assert.Equal(t, true, cc)
		assert.Equal(t, true, ch)
	})

	t.Run("check ordering", func(t *testing.T) {
		assert.Equal(t, 1, <-queue)
		assert.Equal(t, 2, <-queue)
		assert.Equal(t, 3, <-queue)
		assert.Equal(t, 4, <-queue)
	})
}

// TestRequestsCounterMiddleware ensures the request counter increment.
func TestRequestsCounterMiddleware(t *testing.T) {
	api := newTestAPIHandler(&MockInventory{}, true)
	req := httptest.NewRequest("GET", "/api/v1/books", nil)
	w := httptest.NewRecorder()
	var called bool
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		called = true
	}
	wrapped := api.RequestsCounterMiddleware(handler)
	wrapped(w, req, nil)
	assert.Equal(t, true, called)
	assert.Equal(t, uint64(1), api.stats.called)
}

// TestRequestIDMiddleware ensures a request id lands in the context
// before the handler runs.
func TestRequestIDMiddleware(t *testing.T) {
	api := newTestAPIHandler(&MockInventory{}, true)
	req := httptest.NewRequest("GET", "/api/v1/books", nil)
	w := httptest.NewRecorder()
	var got string
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		got = GetValueFromContext(req.Context(), RequestIDContextKey)
	}
	wrapped := api.RequestIDMiddleware(handler)
	wrapped(w, req, nil)
	assert.Equal(t, "r:xx", got)
}

// TestStatusRecorderMiddleware ensures the final status code lands in
// the per-status statistics.
func TestStatusRecorderMiddleware(t *testing.T) {
	api := newTestAPIHandler(&MockInventory{}, true)
	req := httptest.NewRequest("GET", "/api/v1/books", nil)
	w := httptest.NewRecorder()
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		w.WriteHeader(http.StatusConflict)
	}
	wrapped := api.StatusRecorderMiddleware(handler)
	wrapped(w, req, nil)
	assert.Equal(t, uint64(1), api.stats.status[http.StatusConflict])
}

// TestMaintenanceModeMiddleware ensures public requests are
// short-circuited with a 503 only while the mode is enabled.
func TestMaintenanceModeMiddleware(t *testing.T) {
	api := newTestAPIHandler(&MockInventory{}, true)
	var called bool
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		called = true
	}
	wrapped := api.MaintenanceModeMiddleware(handler)

	req := httptest.NewRequest("GET", "/api/v1/books", nil)
	w := httptest.NewRecorder()
	wrapped(w, req, nil)
	assert.True(t, called)

	called = false
	api.mode.enabled.Store(true)
	req = httptest.NewRequest("GET", "/api/v1/books", nil)
	w = httptest.NewRecorder()
	wrapped(w, req, nil)
	assert.False(t, called)
	assert.Equal(t, http.StatusServiceUnavailable, w.Result().StatusCode)
}

// TestCORSMiddleware ensures the cors headers are applied.
func TestCORSMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/books", nil)
	w := httptest.NewRecorder()
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {}
	CORSMiddleware(handler)(w, req, nil)
	assert.Equal(t, "*", w.Result().Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Result().Header.Get("Access-Control-Allow-Methods"))
}

// TestPanicRecoveryMiddleware ensures a handler panic turns into a 500
// error envelope instead of crashing the server.
func TestPanicRecoveryMiddleware(t *testing.T) {
	api := newTestAPIHandler(&MockInventory{}, true)
	req := httptest.NewRequest("GET", "/api/v1/books", nil)
	w := httptest.NewRecorder()
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		panic("boom")
	}
	wrapped := api.PanicRecoveryMiddleware(handler)
	assert.NotPanics(t, func() { wrapped(w, req, nil) })

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	m := decodeBody(t, res)
	assert.Equal(t, CodeInternalError, m["code"])
}
