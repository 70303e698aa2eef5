package middleware

import (
	pkgLog "smart-todo-backend/pkg/log"
)

// Middleware bundles the HTTP middleware handlers.
type Middleware struct {
	l pkgLog.Logger
}

// New creates the middleware bundle.
func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
