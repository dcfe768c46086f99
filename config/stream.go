package config

import (
	"github.com/sarchlab/tisgrid/cgra"
	"github.com/sarchlab/tisgrid/core"
)

// source sits outside the grid and offers its values one by one to the edge
// node it is attached to.
type source struct {
	coord  cgra.Coord
	side   cgra.Side
	target int
	values []int
	next   int
}

func (s *source) Coord() cgra.Coord {
	return s.coord
}

func (s *source) Link(side cgra.Side) int {
	if side != s.side {
		return core.NoLink
	}

	return s.target
}

func (s *source) Offer(to int) (int, bool) {
	if to != s.target || s.next >= len(s.values) {
		return 0, false
	}

	return s.values[s.next], true
}

func (s *source) ConsumeOffer() {
	s.next++
}

func (s *source) Values() []int {
	return s.values[:s.next]
}

func (s *source) Done() bool {
	return s.next >= len(s.values)
}

// sink sits outside the grid and pulls from the edge node it is attached to.
type sink struct {
	coord    cgra.Coord
	index    int
	side     cgra.Side
	target   int
	capacity int
	values   []int
}

func (s *sink) Coord() cgra.Coord {
	return s.coord
}

func (s *sink) Link(side cgra.Side) int {
	if side != s.side {
		return core.NoLink
	}

	return s.target
}

func (s *sink) Offer(int) (int, bool) {
	return 0, false
}

func (s *sink) ConsumeOffer() {
	panic("a sink never offers values")
}

func (s *sink) service(fabric core.Fabric) {
	if s.Done() {
		return
	}

	v, ok := fabric.Pull(s.index, s.side)
	if ok {
		s.values = append(s.values, v)
	}
}

func (s *sink) Values() []int {
	return s.values
}

func (s *sink) Done() bool {
	return s.capacity > 0 && len(s.values) >= s.capacity
}
