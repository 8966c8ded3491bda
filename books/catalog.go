// Package books is an in-memory catalog, nothing in it survives a restart.
package books

import (
	"fmt"
	"sync"
)

type (
	Book struct {
		ID            int64  `json:"id"`
		Title         string `json:"title" validate:"required,min=3"`
		Author        string `json:"author" validate:"required,min=1"`
		Description   string `json:"description" validate:"required,min=1,max=100"`
		Rating        int    `json:"rating" validate:"gt=0,lt=6"`
		PublishedDate int    `json:"published_date" validate:"gt=1999,lt=2031"`
	}

	Catalog struct {
		mu    sync.RWMutex
		books []Book
	}

	NotFound struct {
		ID int64
	}
)

func (n NotFound) Error() string {
	return fmt.Sprintf("book %v not found", n.ID)
}

// DefaultBooks is the catalog used when no seed script is given.
func DefaultBooks() []Book {
	return []Book{
		{ID: 1, Title: "Computer Science Pro", Author: "Fatin", Description: "A nice book", Rating: 5, PublishedDate: 2018},
		{ID: 2, Title: "fast with fastAPI", Author: "Fatin", Description: "A great book", Rating: 5, PublishedDate: 2019},
		{ID: 3, Title: "Master Endpoints", Author: "Fatin", Description: "An awesome book", Rating: 5, PublishedDate: 2020},
		{ID: 4, Title: "HP1", Author: "Author 1", Description: "Book Description", Rating: 2, PublishedDate: 2021},
		{ID: 5, Title: "HP2", Author: "Author 2", Description: "Book Description", Rating: 3, PublishedDate: 2022},
		{ID: 6, Title: "HP3", Author: "Author 3", Description: "Book Description", Rating: 1, PublishedDate: 2023},
	}
}

func NewCatalog(initial []Book) *Catalog {
	c := &Catalog{books: make([]Book, len(initial))}
	copy(c.books, initial)
	return c
}

func (c *Catalog) All() []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(func(Book) bool { return true })
}

func (c *Catalog) Get(id int64) (Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, b := range c.books {
		if b.ID == id {
			return b, nil
		}
	}
	return Book{}, NotFound{ID: id}
}

func (c *Catalog) ByRating(rating int) []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(func(b Book) bool { return b.Rating == rating })
}

func (c *Catalog) ByPublishedDate(year int) []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(func(b Book) bool { return b.PublishedDate == year })
}

// Create appends b with the id after the last book, any id in b is ignored.
func (c *Catalog) Create(b Book) Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	b.ID = 1
	if len(c.books) > 0 {
		b.ID = c.books[len(c.books)-1].ID + 1
	}
	c.books = append(c.books, b)
	return b
}

// Replace overwrites every field of book id.
func (c *Catalog) Replace(id int64, b Book) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.books {
		if c.books[i].ID == id {
			b.ID = id
			c.books[i] = b
			return nil
		}
	}
	return NotFound{ID: id}
}

func (c *Catalog) Delete(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.books {
		if c.books[i].ID == id {
			c.books = append(c.books[:i], c.books[i+1:]...)
			return nil
		}
	}
	return NotFound{ID: id}
}

func (c *Catalog) filter(keep func(Book) bool) []Book {
	out := []Book{}
	for _, b := range c.books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
