// Package web is a small wrapper around gin that lets handlers return
// errors and keeps a request-scoped context.Context alongside the gin one.
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is the signature every application handler implements.
type Handler func(c *Context) error

// Middleware wraps a Handler with additional behavior.
type Middleware func(Handler) Handler

type App struct {
	*gin.Engine
	shutdown chan struct{}
}

func NewApp() *App {
	return &App{
		Engine:   gin.New(),
		shutdown: make(chan struct{}),
	}
}

func (a *App) handle(method, path string, handler Handler, middlewares ...Middleware) {
	// Middlewares run in the order they were given.
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			handler = middlewares[i](handler)
		}
	}

	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := &Context{
			Context: c,
			Ctx:     c.Request.Context(),
		}

		if err := handler(ctx); err != nil {
			_ = ctx.RespondError(err)
		}
	})
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodGet, path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPost, path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPut, path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPatch, path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodDelete, path, handler, middlewares...)
}

// Context carries the gin context plus the context.Context handlers and
// repositories should use. Claims are attached to Ctx by the auth middleware.
type Context struct {
	*gin.Context
	Ctx context.Context

	queryErrors []string
	paramErrors []string
}
