package source

import (
	"context"
	"fmt"
)

var demoTitles = []string{
	"Marmalade", "Pickles", "Biscuit", "Noodle", "Pumpkin",
	"Sardine", "Waffles", "Juniper", "Tofu", "Clementine",
}

// Demo returns a source of built-in items. It honours cancellation but never
// fails otherwise.
func Demo() Source {
	return Func(func(ctx context.Context) ([]Item, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items := make([]Item, len(demoTitles))
		for i, title := range demoTitles {
			items[i] = Item{
				ID:       fmt.Sprintf("kitten-%02d", i+1),
				Title:    title,
				Body:     fmt.Sprintf("Kitten %d of %d.\nUse ← and → to turn the cube.", i+1, len(demoTitles)),
				ImageURL: fmt.Sprintf("https://placekitten.com/%d/%d", 580+i, 400),
			}
		}
		return items, nil
	})
}
