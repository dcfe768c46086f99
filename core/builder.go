package core

import "github.com/sarchlab/tisgrid/cgra"

// Builder can create new nodes.
type Builder struct {
	coord cgra.Coord
	index int
}

// WithCoord sets the position of the node in the grid.
func (b Builder) WithCoord(x, y int) Builder {
	b.coord = cgra.Coord{X: x, Y: y}
	return b
}

// WithIndex sets the arena index the grid addresses the node by.
func (b Builder) WithIndex(index int) Builder {
	b.index = index
	return b
}

func NewBuilder() Builder {
	return Builder{}
}

// Build creates a node with an empty program. Such a node is valid but idle.
func (b Builder) Build(name string) *Node {
	n := &Node{
		name:  name,
		coord: b.coord,
		index: b.index,
		valid: true,
		state: nodeState{Code: newProgram(nil)},
	}

	for i := range n.links {
		n.links[i] = NoLink
	}

	return n
}
