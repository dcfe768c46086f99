package config

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// StateTable renders the state of every node.
func (g *Grid) StateTable() string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s @ tick %d", g.Name, g.tick))
	t.AppendHeader(table.Row{
		"Node", "Mode", "ACC", "BAK", "PC", "Instruction", "Hand-off", "Idle %",
	})

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			n := g.Tiles[y][x]

			inst := "-"
			if !n.Valid() {
				inst = "INVALID CODE"
			} else if i, ok := n.Program().InstructionAt(n.PC()); ok {
				inst = i.String()
			}

			t.AppendRow(table.Row{
				n.Coord().String(),
				n.Mode().String(),
				n.ACC(),
				n.BAK(),
				n.PC(),
				inst,
				n.Handoff().String(),
				fmt.Sprintf("%.1f", n.IdlePercent()),
			})
		}
	}

	return t.Render()
}
