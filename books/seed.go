package books

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrebq/todoapp/internal/lua/luadefaults"
	"github.com/andrebq/todoapp/internal/validation"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

type (
	seedFile struct {
		Books []Book
	}
)

var (
	errSeedNotTable = errors.New("seed script must return a table with a `books` field")
)

// LoadSeed runs the Lua script at path and returns the books it declares.
//
// The script must return a table like:
//
//	return {
//		books = {
//			{ title = "HP1", author = "Author 1", description = "Book Description", rating = 2, published_date = 2021 },
//		},
//	}
//
// Books without an id get the next sequential one.
func LoadSeed(ctx context.Context, path string) ([]Book, error) {
	L := luadefaults.NewSandbox()
	defer L.Close()
	L.SetContext(ctx)
	err := L.DoFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to run seed script %v, cause %w", path, err)
	}
	return seedFromStack(L)
}

// ParseSeed is like LoadSeed but takes the script source.
func ParseSeed(ctx context.Context, code string) ([]Book, error) {
	L := luadefaults.NewSandbox()
	defer L.Close()
	L.SetContext(ctx)
	err := L.DoString(code)
	if err != nil {
		return nil, fmt.Errorf("unable to run seed script, cause %w", err)
	}
	return seedFromStack(L)
}

func seedFromStack(L *lua.LState) ([]Book, error) {
	tbl, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, errSeedNotTable
	}
	var seed seedFile
	err := gluamapper.Map(tbl, &seed)
	if err != nil {
		return nil, fmt.Errorf("unable to map seed table to books, cause %w", err)
	}
	var last int64
	seen := map[int64]bool{}
	for i := range seed.Books {
		b := &seed.Books[i]
		if b.ID == 0 {
			b.ID = last + 1
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("seed book %v uses duplicated id %v", i+1, b.ID)
		}
		seen[b.ID] = true
		last = b.ID
		if err := validation.Struct(b); err != nil {
			return nil, fmt.Errorf("seed book %v is invalid, cause %w", i+1, err)
		}
	}
	return seed.Books, nil
}
