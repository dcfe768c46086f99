package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/tisgrid/cgra"
	"github.com/sarchlab/tisgrid/config"
	"github.com/sarchlab/tisgrid/core"
	"github.com/sarchlab/tisgrid/layout"
)

// Stall is a node still blocked on a port after the trial run.
type Stall struct {
	Coord       cgra.Coord
	Mode        core.Mode
	Handoff     string
	IdlePercent float64
}

// VerificationReport represents a complete verification report
type VerificationReport struct {
	ProgramCount int
	Issues       []Issue
	ErrorCount   int
	Arch         *ArchInfo

	SimulationRan   bool
	SimulationTicks uint64
	Stalls          []Stall
}

// OK reports whether the layout is free of errors.
func (r *VerificationReport) OK() bool {
	return r.ErrorCount == 0
}

// GenerateReport runs the lint and, if it found no errors, a trial run of at
// most maxTicks ticks.
func GenerateReport(l *layout.Layout, arch *ArchInfo, maxTicks int) *VerificationReport {
	report := &VerificationReport{
		ProgramCount: len(l.Nodes),
		Arch:         arch,
	}

	report.Issues = RunLint(l, arch)
	report.ErrorCount = len(Errors(report.Issues))

	if !report.OK() || arch.Columns <= 0 || arch.Rows <= 0 {
		return report
	}

	g := config.GridBuilder{}.
		WithWidth(arch.Columns).
		WithHeight(arch.Rows).
		Build("Verify")
	l.MapOnto(g)

	for i := 0; i < maxTicks; i++ {
		g.Step()
	}

	report.SimulationRan = true
	report.SimulationTicks = g.CurrentTick()

	for _, n := range g.Nodes() {
		switch n.Mode() {
		case core.Read, core.Write:
			report.Stalls = append(report.Stalls, Stall{
				Coord:       n.Coord(),
				Mode:        n.Mode(),
				Handoff:     n.Handoff().String(),
				IdlePercent: n.IdlePercent(),
			})
		}
	}

	return report
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "LAYOUT VERIFICATION REPORT")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Grid: %dx%d %s, %d programs\n",
		r.Arch.Columns, r.Arch.Rows, r.Arch.Topology, r.ProgramCount)

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "No lint issues found.")
	} else {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Type", "Severity", "Node", "Line", "Message"})

		for _, issue := range r.Issues {
			line := "-"
			if issue.Line > 0 {
				line = fmt.Sprint(issue.Line)
			}

			t.AppendRow(table.Row{
				issue.Type,
				issue.Severity,
				cgra.Coord{X: issue.X, Y: issue.Y}.String(),
				line,
				issue.Message,
			})
		}

		fmt.Fprintln(w, t.Render())
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: TRIAL RUN")
	fmt.Fprintln(w, separator)

	switch {
	case !r.SimulationRan:
		fmt.Fprintln(w, "Skipped: the lint found errors.")
	case len(r.Stalls) == 0:
		fmt.Fprintf(w, "No node blocked after %d ticks.\n", r.SimulationTicks)
	default:
		fmt.Fprintf(w, "%d nodes blocked after %d ticks:\n",
			len(r.Stalls), r.SimulationTicks)

		t := table.NewWriter()
		t.AppendHeader(table.Row{"Node", "Mode", "Hand-off", "Idle %"})

		for _, s := range r.Stalls {
			t.AppendRow(table.Row{
				s.Coord.String(),
				s.Mode.String(),
				s.Handoff,
				fmt.Sprintf("%.1f", s.IdlePercent),
			})
		}

		fmt.Fprintln(w, t.Render())
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "VERIFICATION SUMMARY")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Lint Result: %d issues (%d errors)\n",
		len(r.Issues), r.ErrorCount)
}
