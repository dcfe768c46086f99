package core

import (
	"fmt"

	"github.com/sarchlab/tisgrid/cgra"
)

// Fabric moves values between nodes. The grid implements it; a node never
// touches another node's state directly.
type Fabric interface {
	// Pull asks the endpoint linked to side of the consumer for its offered
	// value. On success the producer has already been told to consume it.
	Pull(consumer int, side cgra.Side) (value int, ok bool)
}

// delivery says where a pulled value goes.
type delivery int

const (
	deliverNone delivery = iota
	deliverACC
	deliverDiscard
	deliverForward
	deliverAdd
	deliverSub
	deliverJRO
)

func (d delivery) String() string {
	switch d {
	case deliverACC:
		return "ACC"
	case deliverDiscard:
		return "NIL"
	case deliverForward:
		return "forward"
	case deliverAdd:
		return "ADD"
	case deliverSub:
		return "SUB"
	case deliverJRO:
		return "JRO"
	default:
		return "-"
	}
}

type nodeState struct {
	ACC, BAK int
	PC       int
	Code     *Program

	sending   bool
	sendingTo cgra.Side

	receiving     bool
	receivingFrom cgra.Side
	deliver       delivery

	hasOutgoing bool
	outgoing    int
}

func (s *nodeState) pending() bool {
	return s.sending || s.receiving
}

func (s *nodeState) resetHandoff() {
	s.sending = false
	s.receiving = false
	s.deliver = deliverNone
	s.hasOutgoing = false
	s.outgoing = 0
}

type instEmulator struct {
	fabric Fabric
	self   int
}

// RunInst decodes and executes the instruction at the state's pc.
func (i instEmulator) RunInst(inst Instruction, state *nodeState) {
	switch inst.Op {
	case NOP:
		i.advancePC(state)
	case SAV:
		state.BAK = state.ACC
		i.advancePC(state)
	case SWP:
		state.ACC = state.BAK
		i.advancePC(state)
	case NEG:
		state.ACC = -state.ACC
		i.advancePC(state)
	case ADD:
		i.runArith(inst.Args[0], deliverAdd, state)
	case SUB:
		i.runArith(inst.Args[0], deliverSub, state)
	case JMP:
		i.jumpTo(inst.Args[0].Label, state)
	case JEZ:
		i.runBranch(inst.Args[0].Label, state.ACC == 0, state)
	case JNZ:
		i.runBranch(inst.Args[0].Label, state.ACC != 0, state)
	case JGZ:
		i.runBranch(inst.Args[0].Label, state.ACC > 0, state)
	case JLZ:
		i.runBranch(inst.Args[0].Label, state.ACC < 0, state)
	case JRO:
		i.runArith(inst.Args[0], deliverJRO, state)
	case MOV:
		i.runMov(inst.Args[0], inst.Args[1], state)
	default:
		panic(fmt.Sprintf("unknown opcode %v", inst.Op))
	}
}

func (i instEmulator) advancePC(state *nodeState) {
	state.PC = state.Code.nextLine(state.PC)
}

func (i instEmulator) jumpTo(label string, state *nodeState) {
	state.PC = state.Code.Labels[label]
}

func (i instEmulator) runBranch(label string, taken bool, state *nodeState) {
	if taken {
		i.jumpTo(label, state)
		return
	}

	i.advancePC(state)
}

// readImmediate returns the value of a literal or a non-port register.
func (i instEmulator) readImmediate(src Operand, state *nodeState) (int, bool) {
	switch src.Kind {
	case OperandLiteral:
		return src.Literal, true
	case OperandRegister:
		switch src.Reg {
		case ACC:
			return state.ACC, true
		case NIL:
			return 0, true
		}
	}

	return 0, false
}

func (i instEmulator) runArith(src Operand, d delivery, state *nodeState) {
	if v, ok := i.readImmediate(src, state); ok {
		i.complete(v, d, state)
		return
	}

	side, _ := src.Reg.Port()
	i.startReceive(side, d, state)
}

func (i instEmulator) runMov(src, dst Operand, state *nodeState) {
	d := deliverACC

	if side, ok := dst.Reg.Port(); ok {
		state.sending = true
		state.sendingTo = side
		d = deliverForward
	} else if dst.Reg == NIL {
		d = deliverDiscard
	}

	if v, ok := i.readImmediate(src, state); ok {
		i.complete(v, d, state)
		return
	}

	side, _ := src.Reg.Port()
	i.startReceive(side, d, state)
}

func (i instEmulator) startReceive(side cgra.Side, d delivery, state *nodeState) {
	state.receiving = true
	state.receivingFrom = side
	state.deliver = d

	i.pull(state)
}

// pull makes one attempt to take the value offered on receivingFrom.
func (i instEmulator) pull(state *nodeState) bool {
	if i.fabric == nil {
		return false
	}

	v, ok := i.fabric.Pull(i.self, state.receivingFrom)
	if !ok {
		return false
	}

	d := state.deliver
	state.receiving = false
	state.deliver = deliverNone

	i.complete(v, d, state)

	return true
}

// complete finishes an instruction once its value is known.
func (i instEmulator) complete(v int, d delivery, state *nodeState) {
	switch d {
	case deliverACC:
		state.ACC = v
		i.advancePC(state)
	case deliverDiscard:
		i.advancePC(state)
	case deliverAdd:
		state.ACC += v
		i.advancePC(state)
	case deliverSub:
		state.ACC -= v
		i.advancePC(state)
	case deliverJRO:
		state.PC = state.Code.relativeLine(state.PC, v)
	case deliverForward:
		state.outgoing = v
		state.hasOutgoing = true
	default:
		panic(fmt.Sprintf("invalid delivery %v", d))
	}
}

// consume is applied to the producer when a consumer takes its value.
func (i instEmulator) consume(state *nodeState) {
	state.sending = false
	state.hasOutgoing = false
	state.outgoing = 0
	i.advancePC(state)
}
