package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tisgrid/api"
	"github.com/sarchlab/tisgrid/cgra"
	"github.com/sarchlab/tisgrid/config"
	"github.com/sarchlab/tisgrid/core"
	"github.com/sarchlab/tisgrid/util"
	"github.com/tebeka/atexit"
)

//go:embed accumulate.tasm
var accumulateKernel string

const forward = "MOV LEFT, RIGHT"

func main() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: core.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithMaxTicks(200).
		Build("Driver")

	device := config.GridBuilder{}.
		WithWidth(2).
		WithHeight(1).
		Build("Device")
	device.AcceptHook(core.TraceHook{})

	driver.RegisterDevice(device)

	src := valgen.Series(6, valgen.MakeAlternatingGen(3))
	dst := make([]int, len(src))

	driver.FeedIn(src, cgra.Left, [2]int{0, 1}, 1)
	driver.Collect(dst, cgra.Right, [2]int{0, 1}, 1)

	if err := driver.MapProgram(accumulateKernel, [2]int{0, 0}); err != nil {
		panic(err)
	}

	if err := driver.MapProgram(forward, [2]int{1, 0}); err != nil {
		panic(err)
	}

	if err := driver.Run(); err != nil {
		panic(err)
	}

	fmt.Println(src)
	fmt.Println(dst)
	fmt.Println(device.StateTable())

	atexit.Exit(0)
}
