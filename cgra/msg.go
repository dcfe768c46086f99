package cgra

import "github.com/sarchlab/akita/v4/sim"

// MoveMsg records one value handed from a producer to a consumer.
type MoveMsg struct {
	ID   string
	Src  Coord
	Dst  Coord
	Side Side
	Tick uint64
	Data int
}

// MoveMsgBuilder is a factory for MoveMsg.
type MoveMsgBuilder struct {
	src, dst Coord
	side     Side
	tick     uint64
	data     int
}

// WithSrc sets the coordinate of the producer.
func (m MoveMsgBuilder) WithSrc(src Coord) MoveMsgBuilder {
	m.src = src
	return m
}

// WithDst sets the coordinate of the consumer.
func (m MoveMsgBuilder) WithDst(dst Coord) MoveMsgBuilder {
	m.dst = dst
	return m
}

// WithSide sets the side the value left the producer through.
func (m MoveMsgBuilder) WithSide(side Side) MoveMsgBuilder {
	m.side = side
	return m
}

// WithTick sets the tick in which the hand-off completed.
func (m MoveMsgBuilder) WithTick(tick uint64) MoveMsgBuilder {
	m.tick = tick
	return m
}

// WithData sets the data of the msg.
func (m MoveMsgBuilder) WithData(data int) MoveMsgBuilder {
	m.data = data
	return m
}

// Build creates a MoveMsg.
func (m MoveMsgBuilder) Build() *MoveMsg {
	return &MoveMsg{
		ID:   sim.GetIDGenerator().Generate(),
		Src:  m.src,
		Dst:  m.dst,
		Side: m.side,
		Tick: m.tick,
		Data: m.data,
	}
}
