package httpserver

import (
	"fmt"
	"strconv"

	"github.com/andrebq/todoapp/internal/validation"
	"github.com/julienschmidt/httprouter"
)

// PathID reads a positive integer id from the route parameter name.
func PathID(ps httprouter.Params, name string) (int64, error) {
	raw := ps.ByName(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validation.Field(name, "int", "", fmt.Sprintf("%v must be an integer", name))
	}
	if id <= 0 {
		return 0, validation.Field(name, "gt", "0", fmt.Sprintf("%v must be greater than 0", name))
	}
	return id, nil
}

// IntBetween parses raw and checks gt < value < lt.
func IntBetween(name, raw string, gt, lt int) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.Field(name, "int", "", fmt.Sprintf("%v must be an integer", name))
	}
	if v <= gt {
		return 0, validation.Field(name, "gt", strconv.Itoa(gt), fmt.Sprintf("%v must be greater than %v", name, gt))
	}
	if v >= lt {
		return 0, validation.Field(name, "lt", strconv.Itoa(lt), fmt.Sprintf("%v must be less than %v", name, lt))
	}
	return v, nil
}
