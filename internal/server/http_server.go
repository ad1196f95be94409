package server

import (
	"context"
	"net/http"
)

// listener is the slice of *http.Server the daemon's two listeners (ops API
// and metrics) actually touch, kept as an interface so tests can exercise
// the wiring without binding ports.
type listener interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// stdListener adapts *http.Server to the listener seam.
type stdListener struct {
	srv *http.Server
}

func (l stdListener) ListenAndServe() error              { return l.srv.ListenAndServe() }
func (l stdListener) Shutdown(ctx context.Context) error { return l.srv.Shutdown(ctx) }
func (l stdListener) Addr() string                       { return l.srv.Addr }
func (l stdListener) Handler() http.Handler              { return l.srv.Handler }
