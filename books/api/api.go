package api

import (
	"context"
	"net/http"

	"github.com/andrebq/todoapp/books"
	"github.com/andrebq/todoapp/internal/httpserver"
	"github.com/andrebq/todoapp/internal/validation"
	"github.com/julienschmidt/httprouter"
)

func AsHandler(ctx context.Context, c *books.Catalog) http.Handler {
	router := httprouter.New()
	router.GET("/books", listBooks(c))
	router.GET("/books/", queryBooks(c))
	router.GET("/books/:id", getBook(c))
	router.POST("/books", createBook(c))
	router.PUT("/books/:id", updateBook(c))
	router.DELETE("/books/:id", deleteBook(c))
	return router
}

func listBooks(c *books.Catalog) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		httpserver.WriteJSON(w, http.StatusOK, c.All())
	}
}

// queryBooks filters by book_rating or published_date, in that order.
func queryBooks(c *books.Catalog) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		q := r.URL.Query()
		switch {
		case q.Has("book_rating"):
			rating, err := httpserver.IntBetween("book_rating", q.Get("book_rating"), 0, 6)
			if err != nil {
				httpserver.WriteError(w, r, err)
				return
			}
			httpserver.WriteJSON(w, http.StatusOK, c.ByRating(rating))
		case q.Has("published_date"):
			year, err := httpserver.IntBetween("published_date", q.Get("published_date"), 1999, 2031)
			if err != nil {
				httpserver.WriteError(w, r, err)
				return
			}
			httpserver.WriteJSON(w, http.StatusOK, c.ByPublishedDate(year))
		default:
			httpserver.WriteError(w, r, validation.Field("query", "required", "", "either book_rating or published_date is required"))
		}
	}
}

func getBook(c *books.Catalog) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := httpserver.PathID(ps, "id")
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		b, err := c.Get(id)
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		httpserver.WriteJSON(w, http.StatusOK, b)
	}
}

func createBook(c *books.Catalog) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var b books.Book
		if err := httpserver.DecodeJSON(r, &b); err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		httpserver.WriteJSON(w, http.StatusCreated, c.Create(b))
	}
}

func updateBook(c *books.Catalog) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := httpserver.PathID(ps, "id")
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		var b books.Book
		if err := httpserver.DecodeJSON(r, &b); err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		if err := c.Replace(id, b); err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteBook(c *books.Catalog) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := httpserver.PathID(ps, "id")
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		if err := c.Delete(id); err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
