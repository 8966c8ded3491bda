package frontproxy

import (
	"context"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/julienschmidt/httprouter"
)

var (
	methods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
)

// AsHandler sends /books and everything below it to booksCalls, any
// other path goes to todoCalls.
func AsHandler(ctx context.Context, todoCalls *url.URL, booksCalls *url.URL) http.Handler {
	router := httprouter.New()

	todoProxy := httputil.NewSingleHostReverseProxy(todoCalls)
	booksProxy := httputil.NewSingleHostReverseProxy(booksCalls)

	for _, m := range methods {
		router.Handler(m, "/books", booksProxy)
		router.Handler(m, "/books/*rest", booksProxy)
	}

	// delegate to todoProxy if not found
	router.NotFound = todoProxy
	router.HandleMethodNotAllowed = false

	return router
}
