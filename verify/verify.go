// Package verify checks a layout before it is simulated.
//
// Two stages are run:
//
// 1. Static lint (lint.go)
//   - ASM checks: every program assembles
//   - STRUCT checks: every node lies inside the grid
//   - PORT checks: every port a program uses faces a node that uses the
//     matching port the other way; ports on the grid edge are reported as
//     warnings since a stream may be attached there
//
// 2. Trial run (report.go): the layout is loaded into a real grid and run for
// a bounded number of ticks. Nodes still blocked on a port at the end are
// listed as stalled. A stall is not an error; many kernels wait for input
// forever once their streams are drained.
//
// # Usage Example
//
//	l, _ := layout.Load("grid.tis")
//	arch := verify.ArchInfoFor(l, 0, 0)
//
//	issues := verify.RunLint(l, arch)
//	for _, issue := range issues {
//	    log.Printf("[%s] (%d,%d) line %d: %s",
//	        issue.Type, issue.X, issue.Y, issue.Line, issue.Message)
//	}
//
//	report := verify.GenerateReport(l, arch, 1000)
//	report.WriteReport(os.Stdout)
package verify

import (
	"github.com/sarchlab/tisgrid/layout"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueAsm    IssueType = "ASM"    // Program does not assemble
	IssueStruct IssueType = "STRUCT" // Node outside the grid
	IssuePort   IssueType = "PORT"   // Port without a partner
)

// Severity tells whether an issue blocks a run.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Issue represents a single lint issue
type Issue struct {
	Type     IssueType
	Severity Severity
	X, Y     int // Node coordinate
	Line     int // 1-based source line, or -1 if not applicable
	Message  string
	Details  map[string]interface{}
}

// ArchInfo describes the grid the layout is checked against.
type ArchInfo struct {
	Rows     int
	Columns  int
	Topology string
}

// ArchInfoFor returns the grid a layout runs on. Zero dimensions are taken
// from the layout's bounds.
func ArchInfoFor(l *layout.Layout, columns, rows int) *ArchInfo {
	w, h := l.Bounds()

	if columns <= 0 {
		columns = w
	}

	if rows <= 0 {
		rows = h
	}

	return &ArchInfo{
		Rows:     rows,
		Columns:  columns,
		Topology: "mesh",
	}
}

// Errors returns the issues that block a run.
func Errors(issues []Issue) []Issue {
	var errs []Issue

	for _, issue := range issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}

	return errs
}
