// Package drawer renders mix recipes as graphs.
package drawer

import "github.com/askiada/go-ryb/pkg/ryb"

// Drawer is an interface that defines the methods for drawing a mix recipe.
type Drawer interface {
	// AddSource adds a source color of the mix with its weight.
	AddSource(name string, c ryb.Color[float64], weight float64) error
	// SetResult sets the mixed color and links every source to it.
	SetResult(c ryb.Color[float64]) error
	// Draw creates a file with the mix graph.
	Draw() error
}
