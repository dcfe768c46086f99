// Package layout loads the programs of a grid from a layout file.
//
// The text form is a list of blocks, each headed by the coordinate of a node:
//
//	[0, 0]
//	MOV 5, RIGHT
//	[1, 0]
//	MOV LEFT, ACC
//
// Blank lines are dropped. The YAML form lists the same blocks under "nodes".
package layout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/sarchlab/tisgrid/cgra"
)

var (
	ErrOrphanLine    = errors.New("code before the first node header")
	ErrHeader        = errors.New("malformed node header")
	ErrDuplicateNode = errors.New("node defined twice")
)

// ErrLine locates a layout error. LineNo is 1-based.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return fmt.Sprintf("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}

// Node is the source of one node.
type Node struct {
	Coord cgra.Coord
	Lines []string
}

// Layout is an ordered list of node sources.
type Layout struct {
	Nodes []Node
}

// Bounds returns the smallest grid size that holds every node.
func (l *Layout) Bounds() (width, height int) {
	for _, n := range l.Nodes {
		if n.Coord.X+1 > width {
			width = n.Coord.X + 1
		}

		if n.Coord.Y+1 > height {
			height = n.Coord.Y + 1
		}
	}

	return width, height
}

// Find returns the source of the node at c.
func (l *Layout) Find(c cgra.Coord) (Node, bool) {
	for _, n := range l.Nodes {
		if n.Coord == c {
			return n, true
		}
	}

	return Node{}, false
}

// MapOnto loads every program into the device and returns the assembly errors
// by coordinate. Nodes that fail stay invalid on the device.
func (l *Layout) MapOnto(device cgra.Device) map[cgra.Coord]error {
	errs := make(map[cgra.Coord]error)

	for _, n := range l.Nodes {
		err := device.MapProgram(n.Lines, n.Coord.X, n.Coord.Y)
		if err != nil {
			errs[n.Coord] = err
		}
	}

	return errs
}

func (l *Layout) add(n Node) error {
	if _, ok := l.Find(n.Coord); ok {
		return ErrDuplicateNode
	}

	l.Nodes = append(l.Nodes, n)

	return nil
}

var headerRe = regexp.MustCompile(`^\[\s*(-?\d+)\s*,\s*(-?\d+)\s*\]$`)

func parseHeader(line string) (cgra.Coord, error) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return cgra.Coord{}, ErrHeader
	}

	x, err := strconv.Atoi(m[1])
	if err != nil {
		return cgra.Coord{}, ErrHeader
	}

	y, err := strconv.Atoi(m[2])
	if err != nil {
		return cgra.Coord{}, ErrHeader
	}

	return cgra.Coord{X: x, Y: y}, nil
}

// Parse reads the text form.
func Parse(r io.Reader) (*Layout, error) {
	l := &Layout{}
	current := -1

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "["):
			c, err := parseHeader(line)
			if err == nil {
				err = l.add(Node{Coord: c})
			}

			if err != nil {
				return nil, ErrLine{LineNo: lineNo, Line: raw, Err: err}
			}

			current = len(l.Nodes) - 1
		case current < 0:
			return nil, ErrLine{LineNo: lineNo, Line: raw, Err: ErrOrphanLine}
		default:
			l.Nodes[current].Lines = append(l.Nodes[current].Lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return l, nil
}

// Load reads a layout file. Files ending in .yaml or .yml use the YAML form.
func Load(file string) (*Layout, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var l *Layout

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		l, err = ParseYAML(f)
	default:
		l, err = Parse(f)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return l, nil
}
