package store

import "fmt"

type (
	NotFound struct {
		Kind string
		Key  interface{}
	}

	DuplicateUser struct {
		Username string
	}
)

func (n NotFound) Error() string {
	return fmt.Sprintf("%v %v not found", n.Kind, n.Key)
}

func (d DuplicateUser) Error() string {
	return fmt.Sprintf("user %v already exists", d.Username)
}
