package cgra

import "github.com/sarchlab/akita/v4/sim"

// HookPosHandoff marks a completed hand-off. The hook item is a *MoveMsg.
var HookPosHandoff = &sim.HookPos{Name: "Handoff"}

// HookPosAssemblyFailed marks a node whose program failed to assemble. The
// hook item is the Tile and the detail is the error.
var HookPosAssemblyFailed = &sim.HookPos{Name: "AssemblyFailed"}

// HookPosTick marks the end of a grid tick. The hook item is the tick number.
var HookPosTick = &sim.HookPos{Name: "Tick"}
