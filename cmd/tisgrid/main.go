// tisgrid runs and checks layouts of assembly-programmed node grids.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/xid"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tisgrid/api"
	"github.com/sarchlab/tisgrid/config"
	"github.com/sarchlab/tisgrid/core"
	"github.com/sarchlab/tisgrid/layout"
	"github.com/sarchlab/tisgrid/verify"
	"github.com/tebeka/atexit"
	"gopkg.in/urfave/cli.v1"
)

var errLintFailed = errors.New("lint found errors")

var (
	layoutFlag = cli.StringFlag{
		Name:  "layout",
		Usage: "Layout file ([x,y] blocks, or YAML with a .yaml extension)",
	}
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	widthFlag = cli.IntFlag{
		Name:  "width",
		Usage: "Number of grid columns (0 takes the layout's bounds)",
	}
	heightFlag = cli.IntFlag{
		Name:  "height",
		Usage: "Number of grid rows (0 takes the layout's bounds)",
	}
	ticksFlag = cli.IntFlag{
		Name:  "ticks",
		Usage: "Maximum number of ticks to run",
	}
	orderFlag = cli.StringFlag{
		Name:  "order",
		Usage: "Service order within a tick: row or column",
	}
	traceFlag = cli.StringFlag{
		Name:  "trace",
		Usage: "Write a JSON trace of every hand-off to this file",
	}
	quietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "Do not print the final state table",
	}
)

var (
	runCommand = cli.Command{
		Action: runLayout,
		Name:   "run",
		Usage:  "Run a layout and print the final node states",
		Flags: []cli.Flag{
			layoutFlag, configFileFlag, widthFlag, heightFlag,
			ticksFlag, orderFlag, traceFlag, quietFlag,
		},
	}
	lintCommand = cli.Command{
		Action: lintLayout,
		Name:   "lint",
		Usage:  "Check a layout and report problems",
		Flags:  []cli.Flag{layoutFlag, widthFlag, heightFlag, ticksFlag},
	}
	dumpConfigCommand = cli.Command{
		Action:    dumpConfig,
		Name:      "dumpconfig",
		Usage:     "Show configuration values",
		ArgsUsage: "",
		Flags: []cli.Flag{
			configFileFlag, widthFlag, heightFlag, ticksFlag, orderFlag, traceFlag,
		},
	}
)

// makeConfig merges the defaults, the TOML file and the flags, in that order.
func makeConfig(ctx *cli.Context) (config.SimConfig, error) {
	cfg := config.DefaultSimConfig()

	if file := ctx.String(configFileFlag.Name); file != "" {
		var err error

		cfg, err = config.LoadSimConfig(file)
		if err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet(widthFlag.Name) {
		cfg.Grid.Width = ctx.Int(widthFlag.Name)
	}

	if ctx.IsSet(heightFlag.Name) {
		cfg.Grid.Height = ctx.Int(heightFlag.Name)
	}

	if ctx.IsSet(ticksFlag.Name) {
		cfg.Run.MaxTicks = ctx.Int(ticksFlag.Name)
	}

	if ctx.IsSet(orderFlag.Name) {
		cfg.Grid.Order = ctx.String(orderFlag.Name)
	}

	if ctx.IsSet(traceFlag.Name) {
		cfg.Run.TraceFile = ctx.String(traceFlag.Name)
	}

	return cfg, cfg.Validate()
}

func loadLayout(ctx *cli.Context) (*layout.Layout, error) {
	file := ctx.String(layoutFlag.Name)
	if file == "" {
		return nil, errors.New("missing --layout")
	}

	return layout.Load(file)
}

func setupTrace(file string) error {
	if file == "" {
		return nil
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	atexit.Register(func() {
		f.Sync()
		f.Close()
	})

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: core.LevelTrace,
	})
	slog.SetDefault(slog.New(handler).With("RunID", xid.New().String()))

	return nil
}

func runLayout(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	l, err := loadLayout(ctx)
	if err != nil {
		return err
	}

	arch := verify.ArchInfoFor(l, cfg.Grid.Width, cfg.Grid.Height)
	for _, issue := range verify.RunLint(l, arch) {
		if issue.Type == verify.IssueStruct {
			return errors.New(issue.Message)
		}
	}

	if err := setupTrace(cfg.Run.TraceFile); err != nil {
		return err
	}

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(cfg.Freq()).
		WithMaxTicks(uint64(cfg.Run.MaxTicks)).
		Build("Driver")

	grid := config.GridBuilder{}.
		WithWidth(arch.Columns).
		WithHeight(arch.Rows).
		WithServiceOrder(cfg.ServiceOrder()).
		Build("Grid")
	grid.AcceptHook(core.TraceHook{})

	driver.RegisterDevice(grid)

	for _, n := range l.Nodes {
		program := strings.Join(n.Lines, "\n")

		err := driver.MapProgram(program, [2]int{n.Coord.X, n.Coord.Y})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", n.Coord, err)
		}
	}

	if err := driver.Run(); err != nil {
		return err
	}

	core.Trace("Run",
		"Behavior", "Finished",
		"Ticks", driver.Ticks(),
	)

	if !ctx.Bool(quietFlag.Name) {
		fmt.Println(grid.StateTable())
	}

	return nil
}

func lintLayout(ctx *cli.Context) error {
	l, err := loadLayout(ctx)
	if err != nil {
		return err
	}

	ticks := 100
	if ctx.IsSet(ticksFlag.Name) {
		ticks = ctx.Int(ticksFlag.Name)
	}

	arch := verify.ArchInfoFor(l, ctx.Int(widthFlag.Name), ctx.Int(heightFlag.Name))

	report := verify.GenerateReport(l, arch, ticks)
	report.WriteReport(os.Stdout)

	if !report.OK() {
		color.New(color.FgRed, color.Bold).Println("FAIL")
		return errLintFailed
	}

	color.New(color.FgGreen, color.Bold).Println("PASS")

	return nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	out, err := cfg.Dump()
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)

	return err
}

func main() {
	app := cli.NewApp()
	app.Name = "tisgrid"
	app.Usage = "simulate grids of small assembly-programmed nodes"
	app.Commands = []cli.Command{
		runCommand,
		lintCommand,
		dumpConfigCommand,
	}

	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, errLintFailed) {
			fmt.Fprintln(os.Stderr, err)
		}

		atexit.Exit(1)
	}

	atexit.Exit(0)
}
