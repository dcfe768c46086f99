package main

import (
	_ "embed"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tisgrid/api"
	"github.com/sarchlab/tisgrid/cgra"
	"github.com/sarchlab/tisgrid/config"
	"github.com/sarchlab/tisgrid/util"
	"github.com/tebeka/atexit"
)

//go:embed passthrough.tasm
var passThroughKernel string

func passThrough(driver api.Driver) {
	length := 8
	src := valgen.Series(length, valgen.MakeIncreasingGen(-1))
	dst := make([]int, length)

	driver.FeedIn(src, cgra.Left, [2]int{0, 4}, 4)
	driver.Collect(dst, cgra.Right, [2]int{0, 4}, 4)

	for x := 0; x < 1; x++ {
		for y := 0; y < 4; y++ {
			err := driver.MapProgram(passThroughKernel, [2]int{x, y})
			if err != nil {
				panic(err)
			}
		}
	}

	if err := driver.Run(); err != nil {
		panic(err)
	}

	fmt.Println(src)
	fmt.Println(dst)
}

func main() {
	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Driver")

	device := config.GridBuilder{}.
		WithWidth(1).
		WithHeight(4).
		Build("Device")

	driver.RegisterDevice(device)

	passThrough(driver)

	atexit.Exit(0)
}
