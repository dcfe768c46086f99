package core

import (
	"context"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tisgrid/cgra"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// LogState writes the node's registers and hand-off state at debug level.
func LogState(n *Node) {
	slog.Debug("StateCheckpoint",
		"X", n.coord.X, "Y", n.coord.Y,
		"ACC", n.state.ACC,
		"BAK", n.state.BAK,
		"PC", n.state.PC,
		"Mode", n.Mode().String(),
		"Handoff", n.Handoff().String(),
	)
}

// TraceHook forwards grid events to the trace log.
type TraceHook struct{}

// Func implements sim.Hook.
func (h TraceHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case cgra.HookPosHandoff:
		msg := ctx.Item.(*cgra.MoveMsg)
		Trace("Handoff",
			"ID", msg.ID,
			"Tick", msg.Tick,
			"Data", msg.Data,
			"Side", msg.Side.Name(),
			"SrcX", msg.Src.X, "SrcY", msg.Src.Y,
			"DstX", msg.Dst.X, "DstY", msg.Dst.Y,
		)
	case cgra.HookPosAssemblyFailed:
		tile := ctx.Item.(cgra.Tile)
		Trace("AssemblyFailed",
			"X", tile.GetTileX(), "Y", tile.GetTileY(),
			"Error", ctx.Detail,
		)
	case cgra.HookPosTick:
		slog.Debug("Tick", "Tick", ctx.Item)
	}
}
