package core

import (
	"fmt"

	"github.com/sarchlab/tisgrid/cgra"
)

// Opcode represents the operation code for an instruction.
type Opcode int

const (
	NOP Opcode = iota
	SAV
	SWP
	NEG
	ADD
	SUB
	JMP
	JEZ
	JNZ
	JGZ
	JLZ
	JRO
	MOV
)

var opcodeNames = [...]string{
	NOP: "NOP",
	SAV: "SAV",
	SWP: "SWP",
	NEG: "NEG",
	ADD: "ADD",
	SUB: "SUB",
	JMP: "JMP",
	JEZ: "JEZ",
	JNZ: "JNZ",
	JGZ: "JGZ",
	JLZ: "JLZ",
	JRO: "JRO",
	MOV: "MOV",
}

// tokens per instruction, opcode included
var opcodeArity = [...]int{
	NOP: 1,
	SAV: 1,
	SWP: 1,
	NEG: 1,
	ADD: 2,
	SUB: 2,
	JMP: 2,
	JEZ: 2,
	JNZ: 2,
	JGZ: 2,
	JLZ: 2,
	JRO: 2,
	MOV: 3,
}

func (o Opcode) String() string {
	if o < 0 || int(o) >= len(opcodeNames) {
		return fmt.Sprintf("Opcode(%d)", int(o))
	}

	return opcodeNames[o]
}

// Arity returns the number of tokens the instruction takes, counting the
// opcode itself.
func (o Opcode) Arity() int {
	return opcodeArity[o]
}

// IsLabelJump reports whether the opcode takes a label as its target.
func (o Opcode) IsLabelJump() bool {
	switch o {
	case JMP, JEZ, JNZ, JGZ, JLZ:
		return true
	default:
		return false
	}
}

// ParseOpcode looks up an upper-case opcode name.
func ParseOpcode(name string) (Opcode, bool) {
	for op, n := range opcodeNames {
		if n == name {
			return Opcode(op), true
		}
	}

	return 0, false
}

// Register names a value location an instruction can read or write. The four
// port registers stand for the links to the neighbours.
type Register int

const (
	ACC Register = iota
	NIL
	UP
	RIGHT
	DOWN
	LEFT
)

var registerNames = map[string]Register{
	"ACC":   ACC,
	"NIL":   NIL,
	"UP":    UP,
	"RIGHT": RIGHT,
	"DOWN":  DOWN,
	"LEFT":  LEFT,
}

// Port returns the side a port register refers to.
func (r Register) Port() (cgra.Side, bool) {
	switch r {
	case UP:
		return cgra.Up, true
	case RIGHT:
		return cgra.Right, true
	case DOWN:
		return cgra.Down, true
	case LEFT:
		return cgra.Left, true
	default:
		return 0, false
	}
}

func (r Register) String() string {
	switch r {
	case ACC:
		return "ACC"
	case NIL:
		return "NIL"
	}

	side, ok := r.Port()
	if !ok {
		return fmt.Sprintf("Register(%d)", int(r))
	}

	return side.Name()
}

// OperandKind tells which field of an Operand is meaningful.
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandLiteral
	OperandRegister
	OperandLabel
)

// Operand is one argument of an instruction.
type Operand struct {
	Kind    OperandKind
	Literal int
	Reg     Register
	Label   string
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandLiteral:
		return fmt.Sprintf("%d", o.Literal)
	case OperandRegister:
		return o.Reg.String()
	case OperandLabel:
		return o.Label
	default:
		return ""
	}
}

// Instruction is a decoded, immutable instruction.
type Instruction struct {
	Op   Opcode
	Args [2]Operand
}

func (i Instruction) String() string {
	s := i.Op.String()

	for n := 0; n < i.Op.Arity()-1; n++ {
		if n == 0 {
			s += " " + i.Args[n].String()
		} else {
			s += ", " + i.Args[n].String()
		}
	}

	return s
}
