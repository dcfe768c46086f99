// Package config builds the grid of nodes and wires it together.
package config

import (
	"fmt"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tisgrid/cgra"
	"github.com/sarchlab/tisgrid/core"
)

// ServiceOrder decides in which order the nodes are serviced within a tick.
type ServiceOrder int

const (
	// RowMajor services (0,0), (1,0), ... then the next row.
	RowMajor ServiceOrder = iota
	// ColumnMajor services (0,0), (0,1), ... then the next column.
	ColumnMajor
)

func (o ServiceOrder) String() string {
	switch o {
	case RowMajor:
		return "row"
	case ColumnMajor:
		return "column"
	default:
		panic("invalid service order")
	}
}

// ParseServiceOrder converts "row" or "column" into a ServiceOrder.
func ParseServiceOrder(name string) (ServiceOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "row":
		return RowMajor, nil
	case "column", "col":
		return ColumnMajor, nil
	default:
		return 0, fmt.Errorf("unknown service order %q", name)
	}
}

// GridBuilder can build grids.
type GridBuilder struct {
	width, height int
	order         ServiceOrder
	custom        []cgra.Coord
}

// WithWidth sets the number of columns.
func (b GridBuilder) WithWidth(width int) GridBuilder {
	b.width = width
	return b
}

// WithHeight sets the number of rows.
func (b GridBuilder) WithHeight(height int) GridBuilder {
	b.height = height
	return b
}

// WithServiceOrder sets one of the predefined service orders.
func (b GridBuilder) WithServiceOrder(order ServiceOrder) GridBuilder {
	b.order = order
	b.custom = nil
	return b
}

// WithCustomOrder sets an explicit service order. The list must name every
// node of the grid exactly once.
func (b GridBuilder) WithCustomOrder(order []cgra.Coord) GridBuilder {
	b.custom = order
	return b
}

// Build creates a grid.
func (b GridBuilder) Build(name string) *Grid {
	if b.width <= 0 || b.height <= 0 {
		panic(fmt.Sprintf("invalid grid size %dx%d", b.width, b.height))
	}

	g := &Grid{
		HookableBase: sim.NewHookableBase(),
		Name:         name,
		Width:        b.width,
		Height:       b.height,
		Tiles:        make([][]*core.Node, b.height),
	}

	for y := 0; y < b.height; y++ {
		g.Tiles[y] = make([]*core.Node, b.width)
		for x := 0; x < b.width; x++ {
			n := core.NewBuilder().
				WithCoord(x, y).
				WithIndex(len(g.cells)).
				Build(fmt.Sprintf("%s.Node_%d_%d", name, x, y))
			g.Tiles[y][x] = n
			g.cells = append(g.cells, n)
		}
	}

	b.wire(g)
	g.order = b.serviceOrder(g)

	return g
}

func (b GridBuilder) wire(g *Grid) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			n := g.Tiles[y][x]
			for _, side := range cgra.Sides {
				nb := n.Coord().Neighbour(side)
				if !g.inside(nb) {
					continue
				}

				n.SetLink(side, g.Tiles[nb.Y][nb.X].Index())
			}
		}
	}
}

func (b GridBuilder) serviceOrder(g *Grid) []*core.Node {
	order := make([]*core.Node, 0, b.width*b.height)

	if b.custom != nil {
		seen := make(map[cgra.Coord]bool)
		for _, c := range b.custom {
			if !g.inside(c) || seen[c] {
				panic(fmt.Sprintf("invalid service order entry %v", c))
			}

			seen[c] = true
			order = append(order, g.Tiles[c.Y][c.X])
		}

		if len(order) != b.width*b.height {
			panic("service order does not cover every node")
		}

		return order
	}

	switch b.order {
	case RowMajor:
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				order = append(order, g.Tiles[y][x])
			}
		}
	case ColumnMajor:
		for x := 0; x < b.width; x++ {
			for y := 0; y < b.height; y++ {
				order = append(order, g.Tiles[y][x])
			}
		}
	default:
		panic("invalid service order")
	}

	return order
}
