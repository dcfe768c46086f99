package core

import (
	"strconv"
	"strings"
)

const commentMarker = "#"

// Assemble turns source lines into a Program. Every line keeps its line
// number, so labels and blank lines still occupy a slot the pc can rest on.
// Assembly stops at the first error, which is returned wrapped in ErrSyntax.
func Assemble(lines []string) (*Program, error) {
	prog := newProgram(lines)

	bodies := make([]string, len(lines))

	for n, line := range lines {
		body, err := prog.defineLabel(n, stripComment(line))
		if err != nil {
			return nil, ErrSyntax{LineNo: n + 1, Line: line, Err: err}
		}

		bodies[n] = body
	}

	for n, body := range bodies {
		if body == "" {
			continue
		}

		inst, err := prog.decode(body)
		if err != nil {
			return nil, ErrSyntax{LineNo: n + 1, Line: lines[n], Err: err}
		}

		prog.addInstruction(n, inst)
	}

	return prog, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, commentMarker); i >= 0 {
		line = line[:i]
	}

	return strings.TrimSpace(line)
}

// defineLabel binds a leading "NAME:" to line n and returns whatever follows
// the colon.
func (p *Program) defineLabel(n int, line string) (string, error) {
	colon := strings.Index(line, ":")
	if colon < 0 {
		return line, nil
	}

	name := strings.ToUpper(strings.TrimSpace(line[:colon]))
	if name == "" || strings.ContainsAny(name, " \t,") {
		return "", ErrLabelInvalid
	}

	if _, ok := p.Labels[name]; ok {
		return "", ErrLabelDuplicate
	}

	p.Labels[name] = n

	return strings.TrimSpace(line[colon+1:]), nil
}

func tokenize(body string) []string {
	return strings.Fields(strings.ToUpper(strings.ReplaceAll(body, ",", " ")))
}

func (p *Program) decode(body string) (inst Instruction, err error) {
	words := tokenize(body)
	if len(words) == 0 {
		return inst, ErrArity
	}

	op, ok := ParseOpcode(words[0])
	if !ok {
		return inst, ErrOperand{Operand: words[0], Err: ErrOpcodeInvalid}
	}

	if len(words) != op.Arity() {
		return inst, ErrArity
	}

	inst.Op = op

	switch op {
	case NOP, SAV, SWP, NEG:
	case ADD, SUB, JRO:
		inst.Args[0], err = value(words[1])
	case JMP, JEZ, JNZ, JGZ, JLZ:
		inst.Args[0], err = p.target(words[1])
	case MOV:
		inst.Args[0], err = value(words[1])
		if err != nil {
			break
		}

		inst.Args[1], err = register(words[2])
	default:
		err = ErrOpcodeInvalid
	}

	return inst, err
}

func value(word string) (Operand, error) {
	if v, err := strconv.Atoi(word); err == nil {
		return Operand{Kind: OperandLiteral, Literal: v}, nil
	}

	return register(word)
}

func register(word string) (Operand, error) {
	if r, ok := registerNames[word]; ok {
		return Operand{Kind: OperandRegister, Reg: r}, nil
	}

	switch word {
	case "ANY", "LAST":
		return Operand{}, ErrOperand{Operand: word, Err: ErrRegisterUnsupported}
	}

	return Operand{}, ErrOperand{Operand: word, Err: ErrRegisterInvalid}
}

func (p *Program) target(word string) (Operand, error) {
	if _, err := strconv.Atoi(word); err == nil {
		return Operand{}, ErrOperand{Operand: word, Err: ErrTargetInvalid}
	}

	if _, ok := p.Labels[word]; !ok {
		return Operand{}, ErrLabelMissing(word)
	}

	return Operand{Kind: OperandLabel, Label: word}, nil
}
