package core

// Program is the assembled form of a node's source. Line numbers are 0-based
// indices into Lines. Only some lines carry an instruction.
type Program struct {
	Lines        []string
	Instructions map[int]Instruction
	Labels       map[string]int

	order []int
	index map[int]int
}

func newProgram(lines []string) *Program {
	return &Program{
		Lines:        lines,
		Instructions: make(map[int]Instruction),
		Labels:       make(map[string]int),
		index:        make(map[int]int),
	}
}

func (p *Program) addInstruction(line int, inst Instruction) {
	p.Instructions[line] = inst
	p.index[line] = len(p.order)
	p.order = append(p.order, line)
}

// Empty reports whether the program has no instruction at all.
func (p *Program) Empty() bool {
	return p == nil || len(p.order) == 0
}

// NumInstructions returns the number of instruction-bearing lines.
func (p *Program) NumInstructions() int {
	if p == nil {
		return 0
	}

	return len(p.order)
}

// InstructionAt returns the instruction on a line, if any.
func (p *Program) InstructionAt(line int) (Instruction, bool) {
	inst, ok := p.Instructions[line]
	return inst, ok
}

func (p *Program) lastLine() int {
	return len(p.Lines) - 1
}

// nextLine steps one line forward, wrapping past the end, and then keeps
// stepping over lines that hold no instruction.
func (p *Program) nextLine(line int) int {
	if p.Empty() {
		return line
	}

	for {
		line++
		if line > p.lastLine() {
			line = 0
		}

		if _, ok := p.Instructions[line]; ok {
			return line
		}
	}
}

// settle moves a pc resting on a label or blank line to the next instruction.
func (p *Program) settle(line int) int {
	if _, ok := p.Instructions[line]; ok {
		return line
	}

	return p.nextLine(line)
}

// relativeLine returns the line offset instructions away from line, clamped
// to the first and last instruction.
func (p *Program) relativeLine(line, offset int) int {
	target := p.index[line] + offset

	if target < 0 {
		target = 0
	}

	if target > len(p.order)-1 {
		target = len(p.order) - 1
	}

	return p.order[target]
}
