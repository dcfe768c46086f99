// Package api defines the driver API for the node grid.
package api

import (
	"fmt"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tisgrid/cgra"
	"github.com/sarchlab/tisgrid/core"
)

// Driver provides the interface to control a grid.
type Driver interface {
	// RegisterDevice registers the grid the driver steps.
	RegisterDevice(device cgra.Device)

	// FeedIn provides the data to the grid. The data is fed into the ports in
	// portRange, [start, end). The stride is the difference between the
	// indices of the data that is sent to adjacent ports in the same round.
	// It panics unless stride is positive and data holds at least one round.
	FeedIn(data []int, side cgra.Side, portRange [2]int, stride int)

	// Collect collects the data from the grid. The data is collected from
	// the ports in portRange, [start, end). The stride is the difference
	// between the indices of the data that is collected from adjacent ports
	// in the same round.
	Collect(data []int, side cgra.Side, portRange [2]int, stride int)

	// MapProgram maps the provided program to the node at the given
	// coordinate. The node is left invalid if the program does not assemble.
	MapProgram(program string, node [2]int) error

	// Run runs until every Collect is satisfied or the tick budget is used.
	Run() error

	// Ticks returns the number of grid ticks run so far.
	Ticks() uint64
}

type driverImpl struct {
	*sim.TickingComponent

	device cgra.Device

	feedInTasks  []*feedInTask
	collectTasks []*collectTask
	collecting   bool

	maxTicks uint64
	ticks    uint64
}

// Tick advances the grid by one tick.
func (d *driverImpl) Tick() (madeProgress bool) {
	if d.ticks >= d.maxTicks {
		return false
	}

	d.device.Step()
	d.ticks++

	d.doFeedIn()
	d.doCollect()

	if d.collecting && len(d.collectTasks) == 0 {
		core.Trace("Driver",
			"Behavior", "Collected",
			"Ticks", d.ticks,
		)

		return false
	}

	if d.ticks >= d.maxTicks {
		core.Trace("Driver",
			"Behavior", "TickBudgetUsed",
			"Ticks", d.ticks,
		)

		return false
	}

	return true
}

func (d *driverImpl) doFeedIn() {
	for i := len(d.feedInTasks) - 1; i >= 0; i-- {
		if d.feedInTasks[i].isFinished() {
			d.feedInTasks = append(
				d.feedInTasks[:i], d.feedInTasks[i+1:]...)
		}
	}
}

func (d *driverImpl) doCollect() bool {
	madeProgress := false

	for _, task := range d.collectTasks {
		madeProgress = d.doOneCollectTask(task) || madeProgress
	}

	d.removeFinishedCollectTasks()

	return madeProgress
}

func (d *driverImpl) doOneCollectTask(task *collectTask) bool {
	madeProgress := false

	for i, stream := range task.streams {
		values := stream.Values()
		for round := task.copied[i]; round < len(values); round++ {
			task.data[round*task.stride+i] = values[round]
			madeProgress = true
		}

		task.copied[i] = len(values)
	}

	return madeProgress
}

func (d *driverImpl) removeFinishedCollectTasks() {
	for i := len(d.collectTasks) - 1; i >= 0; i-- {
		if d.collectTasks[i].isFinished() {
			d.collectTasks = append(
				d.collectTasks[:i], d.collectTasks[i+1:]...)
		}
	}
}

// RegisterDevice registers a device to the driver.
func (d *driverImpl) RegisterDevice(device cgra.Device) {
	d.device = device
}

type feedInTask struct {
	streams []cgra.Stream
}

func (t *feedInTask) isFinished() bool {
	for _, s := range t.streams {
		if !s.Done() {
			return false
		}
	}

	return true
}

// FeedIn attaches one source per port. Port i receives data[i],
// data[stride+i], data[2*stride+i], and so on.
func (d *driverImpl) FeedIn(
	data []int,
	side cgra.Side,
	portRange [2]int,
	stride int,
) {
	rounds := roundsOf(data, stride)
	task := &feedInTask{}

	for i := 0; i < portRange[1]-portRange[0]; i++ {
		values := make([]int, rounds)
		for round := 0; round < rounds; round++ {
			values[round] = data[round*stride+i]
		}

		task.streams = append(task.streams,
			d.device.AttachSource(side, portRange[0]+i, values))
	}

	d.feedInTasks = append(d.feedInTasks, task)
}

// roundsOf returns how many values each port carries. A sink with no
// rounds would collect forever, so that is rejected too.
func roundsOf(data []int, stride int) int {
	if stride <= 0 {
		panic(fmt.Sprintf("invalid stride %d", stride))
	}

	rounds := len(data) / stride
	if rounds == 0 {
		panic(fmt.Sprintf("%d values cannot fill one round of stride %d",
			len(data), stride))
	}

	return rounds
}

type collectTask struct {
	data    []int
	streams []cgra.Stream
	copied  []int
	stride  int
}

func (t *collectTask) isFinished() bool {
	for i, s := range t.streams {
		if !s.Done() || t.copied[i] < len(s.Values()) {
			return false
		}
	}

	return true
}

// Collect attaches one sink per port. Port i fills data[i],
// data[stride+i], data[2*stride+i], and so on.
func (d *driverImpl) Collect(
	data []int,
	side cgra.Side,
	portRange [2]int,
	stride int,
) {
	rounds := roundsOf(data, stride)
	task := &collectTask{
		data:   data,
		stride: stride,
	}

	for i := 0; i < portRange[1]-portRange[0]; i++ {
		task.streams = append(task.streams,
			d.device.AttachSink(side, portRange[0]+i, rounds))
		task.copied = append(task.copied, 0)
	}

	d.collectTasks = append(d.collectTasks, task)
	d.collecting = true
}

// MapProgram splits the program into lines and loads it into a node.
func (d *driverImpl) MapProgram(program string, node [2]int) error {
	lines := strings.Split(strings.TrimRight(program, "\n"), "\n")

	err := d.device.MapProgram(lines, node[0], node[1])
	if err != nil {
		core.Trace("MapProgram",
			"X", node[0],
			"Y", node[1],
			"Error", err,
		)
	}

	return err
}

// Run starts ticking and blocks until the engine has no more events.
func (d *driverImpl) Run() error {
	d.TickNow()

	return d.Engine.Run()
}

// Ticks returns the number of grid ticks run so far.
func (d *driverImpl) Ticks() uint64 {
	return d.ticks
}
