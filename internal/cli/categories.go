package cli

import (
	"fmt"

	"github.com/Jyoti0525/habitflow/internal/categories"
)

type CategoriesCmd struct{}

func (c *CategoriesCmd) Run(ctx *Context) error {
	for _, cat := range categories.All() {
		fmt.Printf("%s %-10s %s\n", CategoryDot(cat.Color), cat.Name, cat.Color)
	}
	return nil
}
