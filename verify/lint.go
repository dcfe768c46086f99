package verify

import (
	"errors"
	"fmt"

	"github.com/sarchlab/tisgrid/cgra"
	"github.com/sarchlab/tisgrid/core"
	"github.com/sarchlab/tisgrid/layout"
)

// portUse lists the sides a program reads from and writes to.
type portUse struct {
	reads  map[cgra.Side]int // side -> first line using it, 1-based
	writes map[cgra.Side]int
}

func portsOf(prog *core.Program) portUse {
	use := portUse{
		reads:  make(map[cgra.Side]int),
		writes: make(map[cgra.Side]int),
	}

	note := func(m map[cgra.Side]int, arg core.Operand, line int) {
		if arg.Kind != core.OperandRegister {
			return
		}

		side, ok := arg.Reg.Port()
		if !ok {
			return
		}

		if prev, seen := m[side]; !seen || line < prev {
			m[side] = line
		}
	}

	for line, inst := range prog.Instructions {
		switch inst.Op {
		case core.ADD, core.SUB, core.JRO:
			note(use.reads, inst.Args[0], line+1)
		case core.MOV:
			note(use.reads, inst.Args[0], line+1)
			note(use.writes, inst.Args[1], line+1)
		}
	}

	return use
}

// RunLint performs static checks on a layout. It validates that programs
// assemble (ASM), that nodes lie in the grid (STRUCT) and that every port
// in use has a partner (PORT). Returns the issues found, or an empty list.
func RunLint(l *layout.Layout, arch *ArchInfo) []Issue {
	var issues []Issue

	inside := func(c cgra.Coord) bool {
		return c.X >= 0 && c.X < arch.Columns && c.Y >= 0 && c.Y < arch.Rows
	}

	uses := make(map[cgra.Coord]portUse)

	for _, n := range l.Nodes {
		if !inside(n.Coord) {
			issues = append(issues, Issue{
				Type:     IssueStruct,
				Severity: SeverityError,
				X:        n.Coord.X,
				Y:        n.Coord.Y,
				Line:     -1,
				Message: fmt.Sprintf("node %v out of bounds in a %dx%d grid",
					n.Coord, arch.Columns, arch.Rows),
			})

			continue
		}

		prog, err := core.Assemble(n.Lines)
		if err != nil {
			issues = append(issues, asmIssue(n.Coord, err))
			continue
		}

		uses[n.Coord] = portsOf(prog)
	}

	for _, n := range l.Nodes {
		use, ok := uses[n.Coord]
		if !ok {
			continue
		}

		issues = append(issues,
			checkPorts(n.Coord, use.writes, "writes", "reads", inside, uses, true)...)
		issues = append(issues,
			checkPorts(n.Coord, use.reads, "reads", "writes", inside, uses, false)...)
	}

	return issues
}

func asmIssue(c cgra.Coord, err error) Issue {
	line := -1

	var se core.ErrSyntax
	if errors.As(err, &se) {
		line = se.LineNo
	}

	return Issue{
		Type:     IssueAsm,
		Severity: SeverityError,
		X:        c.X,
		Y:        c.Y,
		Line:     line,
		Message:  err.Error(),
		Details:  map[string]interface{}{"error": err},
	}
}

func checkPorts(
	c cgra.Coord,
	sides map[cgra.Side]int,
	verb, partnerVerb string,
	inside func(cgra.Coord) bool,
	uses map[cgra.Coord]portUse,
	sending bool,
) []Issue {
	var issues []Issue

	for _, side := range cgra.Sides {
		line, used := sides[side]
		if !used {
			continue
		}

		nb := c.Neighbour(side)

		if !inside(nb) {
			issues = append(issues, Issue{
				Type:     IssuePort,
				Severity: SeverityWarning,
				X:        c.X,
				Y:        c.Y,
				Line:     line,
				Message: fmt.Sprintf("%v %s %s on the grid edge; it needs a stream",
					c, verb, side.Name()),
				Details: map[string]interface{}{"side": side.Name(), "edge": true},
			})

			continue
		}

		partner, ok := uses[nb]
		if ok {
			back := partner.reads
			if !sending {
				back = partner.writes
			}

			if _, matched := back[side.Opposite()]; matched {
				continue
			}
		}

		issues = append(issues, Issue{
			Type:     IssuePort,
			Severity: SeverityError,
			X:        c.X,
			Y:        c.Y,
			Line:     line,
			Message: fmt.Sprintf("%v %s %s but %v never %s %s",
				c, verb, side.Name(), nb, partnerVerb, side.Opposite().Name()),
			Details: map[string]interface{}{"side": side.Name(), "neighbour": nb},
		})
	}

	return issues
}
