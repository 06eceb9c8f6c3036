package lambda

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

type route struct {
	method  string
	path    string
	handler HandlerFunc
}

// Router dispatches requests on exact method and path matches. Anything
// unmatched falls through to a 404 with the standard headers.
type Router struct {
	routes []route
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Handle registers a handler for the given method and path.
func (r *Router) Handle(method, path string, handler HandlerFunc) {
	r.routes = append(r.routes, route{method: method, path: path, handler: handler})
}

// Dispatch routes the request to the first matching handler. A panic in a
// handler is logged and converted into the generic 500 body, so every
// response leaving the router is well-formed and carries the standard
// headers.
func (r *Router) Dispatch(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logrus.WithField("panic", fmt.Sprintf("%v", recovered)).Error("Unexpected error")
			resp = NewJSONResponse(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
			err = nil
		}
	}()

	for _, rt := range r.routes {
		if rt.method == req.Method && rt.path == req.Path {
			return rt.handler(ctx, req)
		}
	}

	return NewJSONResponse(http.StatusNotFound, map[string]string{"message": "Not Found"}), nil
}
