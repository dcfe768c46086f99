package core

import (
	"fmt"

	"github.com/sarchlab/tisgrid/cgra"
)

// NoLink marks a side with nothing attached.
const NoLink = -1

// Mode summarizes what a node is doing.
type Mode int

const (
	Idle Mode = iota
	Run
	Write
	Read
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "IDLE"
	case Run:
		return "RUN"
	case Write:
		return "WRITE"
	case Read:
		return "READ"
	default:
		panic("invalid mode")
	}
}

// Endpoint is anything that lives in the grid arena and can hand values to a
// linked neighbour.
type Endpoint interface {
	Coord() cgra.Coord
	Link(side cgra.Side) int

	// Offer returns the value the endpoint holds for the endpoint at index
	// to, if any.
	Offer(to int) (value int, ok bool)

	// ConsumeOffer tells the endpoint that its offered value was taken.
	ConsumeOffer()
}

// Node is one programmable cell of the grid.
type Node struct {
	name  string
	coord cgra.Coord
	index int
	links [4]int

	state  nodeState
	valid  bool
	asmErr error

	ticks     uint64
	idleTicks uint64
}

// Name returns the name of the node.
func (n *Node) Name() string {
	return n.name
}

// Coord returns the position of the node.
func (n *Node) Coord() cgra.Coord {
	return n.coord
}

// Index returns the arena index of the node.
func (n *Node) Index() int {
	return n.index
}

func (n *Node) GetTileX() int {
	return n.coord.X
}

func (n *Node) GetTileY() int {
	return n.coord.Y
}

// Link returns the arena index of the endpoint on the given side, or NoLink.
func (n *Node) Link(side cgra.Side) int {
	return n.links[side]
}

// SetLink wires the side to an arena index. A side can only be wired once.
func (n *Node) SetLink(side cgra.Side, index int) {
	if n.links[side] != NoLink {
		panic(fmt.Sprintf("%s: link %s already set", n.name, side.Name()))
	}

	n.links[side] = index
}

// MapProgram assembles the source lines and loads them into the node. A node
// whose program does not assemble becomes invalid and never runs.
func (n *Node) MapProgram(program []string) error {
	prog, err := Assemble(program)

	n.state = nodeState{Code: prog}
	n.valid = err == nil
	n.asmErr = err
	n.ticks = 0
	n.idleTicks = 0

	if err != nil {
		n.state.Code = newProgram(program)
	}

	return err
}

// Valid reports whether the node's program assembled.
func (n *Node) Valid() bool {
	return n.valid
}

// AssemblyError returns the error the program failed with, if any.
func (n *Node) AssemblyError() error {
	return n.asmErr
}

// Program returns the assembled program.
func (n *Node) Program() *Program {
	return n.state.Code
}

func (n *Node) ACC() int {
	return n.state.ACC
}

func (n *Node) BAK() int {
	return n.state.BAK
}

func (n *Node) PC() int {
	return n.state.PC
}

// Mode returns the current mode of the node.
func (n *Node) Mode() Mode {
	switch {
	case !n.valid || n.state.Code.Empty():
		return Idle
	case n.state.receiving:
		return Read
	case n.state.sending:
		return Write
	default:
		return Run
	}
}

// Handoff is a snapshot of the node's pending port activity.
type Handoff struct {
	Sending       bool
	SendingTo     cgra.Side
	Receiving     bool
	ReceivingFrom cgra.Side
	Delivery      string
	HasOutgoing   bool
	Outgoing      int
}

func (h Handoff) String() string {
	s := ""

	if h.Receiving {
		s += fmt.Sprintf("%s->%s", h.ReceivingFrom.Name(), h.Delivery)
	}

	if h.Sending {
		if s != "" {
			s += " "
		}

		if h.HasOutgoing {
			s += fmt.Sprintf("%d->%s", h.Outgoing, h.SendingTo.Name())
		} else {
			s += fmt.Sprintf("->%s", h.SendingTo.Name())
		}
	}

	if s == "" {
		return "-"
	}

	return s
}

// Handoff returns the pending hand-off of the node.
func (n *Node) Handoff() Handoff {
	return Handoff{
		Sending:       n.state.sending,
		SendingTo:     n.state.sendingTo,
		Receiving:     n.state.receiving,
		ReceivingFrom: n.state.receivingFrom,
		Delivery:      n.state.deliver.String(),
		HasOutgoing:   n.state.hasOutgoing,
		Outgoing:      n.state.outgoing,
	}
}

// IdlePercent returns the share of ticks the node spent blocked on a port.
func (n *Node) IdlePercent() float64 {
	if n.ticks == 0 {
		return 0
	}

	return float64(n.idleTicks) * 100 / float64(n.ticks)
}

// Offer implements Endpoint.
func (n *Node) Offer(to int) (int, bool) {
	if !n.valid || !n.state.sending || !n.state.hasOutgoing {
		return 0, false
	}

	if n.links[n.state.sendingTo] != to {
		return 0, false
	}

	return n.state.outgoing, true
}

// ConsumeOffer implements Endpoint. The producer's pc moves on only now.
func (n *Node) ConsumeOffer() {
	if !n.state.hasOutgoing {
		panic(fmt.Sprintf("%s: no value offered", n.name))
	}

	instEmulator{}.consume(&n.state)
}

// Tick services the node for one tick. A pending hand-off takes the whole
// tick; otherwise the instruction at pc is executed.
func (n *Node) Tick(fabric Fabric) (madeProgress bool) {
	if !n.valid || n.state.Code.Empty() {
		return false
	}

	n.ticks++

	emu := instEmulator{fabric: fabric, self: n.index}

	if n.state.pending() {
		if n.state.receiving && emu.pull(&n.state) {
			return true
		}

		n.idleTicks++

		return false
	}

	n.state.PC = n.state.Code.settle(n.state.PC)
	emu.RunInst(n.state.Code.Instructions[n.state.PC], &n.state)

	return true
}

func (n *Node) String() string {
	s := fmt.Sprintf("Node at %v ACC: %d BAK: %d pc: %d",
		n.coord, n.state.ACC, n.state.BAK, n.state.PC)

	if !n.valid {
		s += " INVALID CODE"
	}

	return s
}
