package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"github.com/sarchlab/akita/v4/sim"
)

// GridConfig describes the shape of the grid.
type GridConfig struct {
	Width  int
	Height int
	Order  string
}

// RunConfig bounds and paces a simulation run.
type RunConfig struct {
	MaxTicks  int
	FreqGHz   float64
	TraceFile string
}

// SimConfig is the content of a simulation TOML file.
type SimConfig struct {
	Grid GridConfig
	Run  RunConfig
}

// DefaultSimConfig returns the configuration used when no file is given.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Grid: GridConfig{
			Width:  4,
			Height: 3,
			Order:  RowMajor.String(),
		},
		Run: RunConfig{
			MaxTicks: 1000,
			FreqGHz:  1,
		},
	}
}

// Keys are the Go field names, and unknown keys are errors.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// LoadSimConfig reads a TOML file on top of the defaults.
func LoadSimConfig(file string) (SimConfig, error) {
	cfg := DefaultSimConfig()

	f, err := os.Open(file)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	err = DecodeSimConfig(bufio.NewReader(f), &cfg)

	var lineErr *toml.LineError
	if errors.As(err, &lineErr) {
		err = errors.New(file + ", " + err.Error())
	}

	return cfg, err
}

// DecodeSimConfig decodes TOML into cfg. Keys missing from the input keep
// their value in cfg.
func DecodeSimConfig(r io.Reader, cfg *SimConfig) error {
	err := tomlSettings.NewDecoder(r).Decode(cfg)
	if err != nil {
		return err
	}

	return cfg.Validate()
}

// Validate checks that the configuration can build a grid. A zero width or
// height means the layout decides.
func (c SimConfig) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("invalid grid size %dx%d", c.Grid.Width, c.Grid.Height)
	}

	if c.Run.MaxTicks <= 0 {
		return fmt.Errorf("MaxTicks must be positive, got %d", c.Run.MaxTicks)
	}

	if c.Run.FreqGHz <= 0 {
		return fmt.Errorf("FreqGHz must be positive, got %v", c.Run.FreqGHz)
	}

	_, err := ParseServiceOrder(c.Grid.Order)

	return err
}

// ServiceOrder returns the parsed service order.
func (c SimConfig) ServiceOrder() ServiceOrder {
	order, err := ParseServiceOrder(c.Grid.Order)
	if err != nil {
		panic(err)
	}

	return order
}

// Freq returns the driver frequency.
func (c SimConfig) Freq() sim.Freq {
	return sim.Freq(c.Run.FreqGHz) * sim.GHz
}

// Dump encodes the configuration as TOML.
func (c SimConfig) Dump() ([]byte, error) {
	return tomlSettings.Marshal(&c)
}
