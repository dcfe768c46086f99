// Package cgra defines the commonly used data structures for node grids.
package cgra

import (
	"fmt"
	"strings"
)

// Side defines the side of a node.
type Side int

const (
	Up Side = iota
	Right
	Down
	Left
)

// Sides lists every side in the order the grid wires them.
var Sides = [...]Side{Up, Right, Down, Left}

// Name returns the name of the side.
func (s Side) Name() string {
	switch s {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		panic("invalid side")
	}
}

func (s Side) String() string {
	return s.Name()
}

// Opposite returns the side that faces s on the neighbouring node.
func (s Side) Opposite() Side {
	switch s {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		panic("invalid side")
	}
}

// Delta returns the coordinate offset of the neighbour on side s. Rows grow
// downwards, so UP is y-1.
func (s Side) Delta() (dx, dy int) {
	switch s {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		panic("invalid side")
	}
}

// ParseSide converts a side name into a Side. Matching is case-insensitive.
func ParseSide(name string) (Side, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "UP":
		return Up, true
	case "RIGHT":
		return Right, true
	case "DOWN":
		return Down, true
	case "LEFT":
		return Left, true
	}

	return 0, false
}

// Coord is the position of a node in the grid.
type Coord struct {
	X, Y int
}

// Neighbour returns the coordinate next to c on the given side.
func (c Coord) Neighbour(s Side) Coord {
	dx, dy := s.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Tile defines a node in the grid.
type Tile interface {
	MapProgram(program []string) error
	GetTileX() int
	GetTileY() int
	Valid() bool
	String() string
}

// Stream is the driver's view of a value stream attached to a grid edge.
type Stream interface {
	// Values returns the values handed over so far. For a source, these are
	// the values already consumed by the grid.
	Values() []int
	Done() bool
}

// A Device is a grid of nodes.
type Device interface {
	GetSize() (width, height int)
	GetTile(x, y int) Tile

	// MapProgram loads source lines into the node at (x, y).
	MapProgram(program []string, x, y int) error

	// AttachSource connects a stream that offers values to the edge node at
	// index on the given side. Index counts rows for LEFT/RIGHT and columns
	// for UP/DOWN.
	AttachSource(side Side, index int, values []int) Stream

	// AttachSink connects a stream that pulls values out of the edge node at
	// index on the given side.
	AttachSink(side Side, index int, capacity int) Stream

	// Step advances the whole device by one tick.
	Step()
	CurrentTick() uint64
}
