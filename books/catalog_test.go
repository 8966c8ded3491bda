package books

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogQueries(t *testing.T) {
	c := NewCatalog(DefaultBooks())
	require.Len(t, c.All(), 6)

	b, err := c.Get(3)
	require.NoError(t, err)
	require.Equal(t, "Master Endpoints", b.Title)

	_, err = c.Get(99)
	require.True(t, errors.Is(err, NotFound{ID: 99}))

	require.Len(t, c.ByRating(5), 3)
	require.Empty(t, c.ByRating(4))
	require.NotNil(t, c.ByRating(4))

	byYear := c.ByPublishedDate(2022)
	require.Len(t, byYear, 1)
	require.Equal(t, "HP2", byYear[0].Title)
}

func TestCatalogMutations(t *testing.T) {
	c := NewCatalog(nil)
	first := c.Create(Book{ID: 77, Title: "A new book", Author: "Fatin", Description: "desc", Rating: 5, PublishedDate: 2027})
	require.Equal(t, int64(1), first.ID, "client ids are ignored")
	second := c.Create(Book{Title: "Another", Author: "Fatin", Description: "desc", Rating: 4, PublishedDate: 2028})
	require.Equal(t, int64(2), second.ID)

	err := c.Replace(2, Book{Title: "Renamed", Author: "X", Description: "d", Rating: 1, PublishedDate: 2001})
	require.NoError(t, err)
	got, err := c.Get(2)
	require.NoError(t, err)
	require.Equal(t, Book{ID: 2, Title: "Renamed", Author: "X", Description: "d", Rating: 1, PublishedDate: 2001}, got)
	require.True(t, errors.Is(c.Replace(9, got), NotFound{ID: 9}))

	require.NoError(t, c.Delete(1))
	require.True(t, errors.Is(c.Delete(1), NotFound{ID: 1}))
	require.Len(t, c.All(), 1)
}

func TestCatalogIsolation(t *testing.T) {
	seed := DefaultBooks()
	c := NewCatalog(seed)
	seed[0].Title = "changed"
	all := c.All()
	all[1].Title = "changed"
	b, _ := c.Get(1)
	require.Equal(t, "Computer Science Pro", b.Title)
	b, _ = c.Get(2)
	require.Equal(t, "fast with fastAPI", b.Title)
}

func TestCatalogConcurrentCreate(t *testing.T) {
	c := NewCatalog(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Create(Book{Title: "Parallel", Author: "A", Description: "d", Rating: 3, PublishedDate: 2010})
		}()
	}
	wg.Wait()
	seen := map[int64]bool{}
	for _, b := range c.All() {
		require.False(t, seen[b.ID], "duplicated id %v", b.ID)
		seen[b.ID] = true
	}
	require.Len(t, seen, 50)
}
