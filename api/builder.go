package api

import "github.com/sarchlab/akita/v4/sim"

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine   sim.Engine
	freq     sim.Freq
	maxTicks uint64
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithMaxTicks bounds the number of ticks a run may take.
func (b DriverBuilder) WithMaxTicks(maxTicks uint64) DriverBuilder {
	b.maxTicks = maxTicks
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	d := &driverImpl{
		maxTicks: b.maxTicks,
	}

	if d.maxTicks == 0 {
		d.maxTicks = 1000
	}

	freq := b.freq
	if freq == 0 {
		freq = 1 * sim.GHz
	}

	d.TickingComponent = sim.NewTickingComponent(name, b.engine, freq, d)

	return d
}
