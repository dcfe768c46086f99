package config

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tisgrid/cgra"
	"github.com/sarchlab/tisgrid/core"
)

// A Grid owns every node and edge stream in a single arena. Nodes only refer
// to each other by arena index; all value transfers go through Pull. Nodes
// can be retrieved using g.Tiles[y][x].
type Grid struct {
	*sim.HookableBase

	Name          string
	Width, Height int
	Tiles         [][]*core.Node

	cells []core.Endpoint
	order []*core.Node
	sinks []*sink
	tick  uint64
}

// GetSize returns the width and height of the grid.
func (g *Grid) GetSize() (int, int) {
	return g.Width, g.Height
}

func (g *Grid) inside(c cgra.Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Node returns the node at the given coordinate.
func (g *Grid) Node(x, y int) *core.Node {
	if !g.inside(cgra.Coord{X: x, Y: y}) {
		panic(fmt.Sprintf("no node at (%d,%d) in a %dx%d grid",
			x, y, g.Width, g.Height))
	}

	return g.Tiles[y][x]
}

// GetTile returns the node at the given coordinate.
func (g *Grid) GetTile(x, y int) cgra.Tile {
	return g.Node(x, y)
}

// Nodes returns the nodes in service order.
func (g *Grid) Nodes() []*core.Node {
	return g.order
}

// ServiceOrder returns the coordinates in the order they are serviced.
func (g *Grid) ServiceOrder() []cgra.Coord {
	coords := make([]cgra.Coord, len(g.order))
	for i, n := range g.order {
		coords[i] = n.Coord()
	}

	return coords
}

// MapProgram loads a program into the node at (x, y). A program that fails
// to assemble leaves the node invalid; the rest of the grid is unaffected.
func (g *Grid) MapProgram(program []string, x, y int) error {
	n := g.Node(x, y)

	err := n.MapProgram(program)
	if err != nil {
		g.InvokeHook(sim.HookCtx{
			Domain: g,
			Pos:    cgra.HookPosAssemblyFailed,
			Item:   cgra.Tile(n),
			Detail: err,
		})
	}

	return err
}

// CurrentTick returns the number of ticks run so far.
func (g *Grid) CurrentTick() uint64 {
	return g.tick
}

// Step runs one tick: every node once in service order, then every sink.
// Each node's state is logged at debug level once the tick is done.
func (g *Grid) Step() {
	g.tick++

	for _, n := range g.order {
		n.Tick(g)
	}

	for _, s := range g.sinks {
		s.service(g)
	}

	for _, n := range g.order {
		core.LogState(n)
	}

	g.InvokeHook(sim.HookCtx{
		Domain: g,
		Pos:    cgra.HookPosTick,
		Item:   g.tick,
	})
}

// Pull implements core.Fabric. It is the only place where one endpoint's
// state changes because of another.
func (g *Grid) Pull(consumer int, side cgra.Side) (int, bool) {
	dst := g.cells[consumer]

	link := dst.Link(side)
	if link == core.NoLink {
		return 0, false
	}

	src := g.cells[link]

	v, ok := src.Offer(consumer)
	if !ok {
		return 0, false
	}

	src.ConsumeOffer()

	msg := cgra.MoveMsgBuilder{}.
		WithSrc(src.Coord()).
		WithDst(dst.Coord()).
		WithSide(side.Opposite()).
		WithTick(g.tick).
		WithData(v).
		Build()

	g.InvokeHook(sim.HookCtx{
		Domain: g,
		Pos:    cgra.HookPosHandoff,
		Item:   msg,
	})

	return v, true
}

func (g *Grid) edgeNode(side cgra.Side, index int) *core.Node {
	switch side {
	case cgra.Up:
		return g.Node(index, 0)
	case cgra.Down:
		return g.Node(index, g.Height-1)
	case cgra.Left:
		return g.Node(0, index)
	case cgra.Right:
		return g.Node(g.Width-1, index)
	default:
		panic("invalid side")
	}
}

// AttachSource connects a stream of values to the open port on the given side
// of an edge node.
func (g *Grid) AttachSource(side cgra.Side, index int, values []int) cgra.Stream {
	n := g.edgeNode(side, index)

	s := &source{
		coord:  n.Coord().Neighbour(side),
		side:   side.Opposite(),
		target: n.Index(),
		values: values,
	}

	n.SetLink(side, len(g.cells))
	g.cells = append(g.cells, s)

	return s
}

// AttachSink connects a collector to the open port on the given side of an
// edge node. A capacity of 0 collects forever.
func (g *Grid) AttachSink(side cgra.Side, index int, capacity int) cgra.Stream {
	n := g.edgeNode(side, index)

	s := &sink{
		coord:    n.Coord().Neighbour(side),
		index:    len(g.cells),
		side:     side.Opposite(),
		target:   n.Index(),
		capacity: capacity,
	}

	n.SetLink(side, s.index)
	g.cells = append(g.cells, s)
	g.sinks = append(g.sinks, s)

	return s
}
