package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
}

func TestCORSMiddlewareInjectsHeadersOnEveryResponse(t *testing.T) {
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodDelete} {
		for _, path := range []string{"/", "/wallet-approval.html", "/deep/nested/path"} {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
			assertCORSHeaders(t, rec.Header())
		}
	}
}

func TestCORSMiddlewareAnswersPreflight(t *testing.T) {
	inner := false
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/wallet-approval.html", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, inner, "preflight must not reach the file server")
	assertCORSHeaders(t, rec.Header())
}

func TestLoggingResponseWriterCapturesStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := &loggingResponseWriter{ResponseWriter: rec}

	lrw.WriteHeader(http.StatusTeapot)
	n, err := lrw.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, lrw.status)
	assert.Equal(t, 5, lrw.bytes)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLoggingResponseWriterDefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := &loggingResponseWriter{ResponseWriter: rec}

	lrw.Write([]byte("implicit 200"))

	assert.Equal(t, http.StatusOK, lrw.status)
}

func TestLoggingMiddlewarePassesThrough(t *testing.T) {
	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
