package frontproxy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"sync"
	"testing"

	"github.com/steinfletcher/apitest"
)

type pathCounter struct {
	sync.Mutex
	calls map[string]int
}

func (p *pathCounter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.Lock()
	p.calls[r.URL.RequestURI()]++
	p.Unlock()
	w.WriteHeader(http.StatusOK)
}

func TestRouter(t *testing.T) {
	books := &pathCounter{calls: map[string]int{}}
	booksServer := httptest.NewServer(books)
	defer booksServer.Close()

	todo := &pathCounter{calls: map[string]int{}}
	todoServer := httptest.NewServer(todo)
	defer todoServer.Close()

	booksCalls, _ := url.Parse(booksServer.URL)
	todoCalls, _ := url.Parse(todoServer.URL)
	handler := AsHandler(context.Background(), todoCalls, booksCalls)

	apitest.Handler(handler).Get("/books").Expect(t).Status(http.StatusOK).End()
	apitest.Handler(handler).Get("/books/3").Expect(t).Status(http.StatusOK).End()
	apitest.Handler(handler).Get("/books/").Query("book_rating", "5").Expect(t).Status(http.StatusOK).End()
	apitest.Handler(handler).Delete("/books/3").Expect(t).Status(http.StatusOK).End()
	apitest.Handler(handler).Get("/todo/").Expect(t).Status(http.StatusOK).End()
	apitest.Handler(handler).Post("/auth/token").Expect(t).Status(http.StatusOK).End()
	apitest.Handler(handler).Get("/healthz").Expect(t).Status(http.StatusOK).End()

	if !reflect.DeepEqual(books.calls, map[string]int{
		"/books":                1,
		"/books/3":              2,
		"/books/?book_rating=5": 1,
	}) {
		t.Fatalf("Invalid calls to books service: %v", books.calls)
	}
	if !reflect.DeepEqual(todo.calls, map[string]int{
		"/todo/":      1,
		"/auth/token": 1,
		"/healthz":    1,
	}) {
		t.Fatalf("Invalid calls to todo service: %v", todo.calls)
	}
}
