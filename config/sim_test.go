package config_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tisgrid/config"
)

var _ = Describe("SimConfig", func() {
	It("should have defaults", func() {
		cfg := config.DefaultSimConfig()

		Expect(cfg.Grid.Width).To(Equal(4))
		Expect(cfg.Grid.Height).To(Equal(3))
		Expect(cfg.Run.MaxTicks).To(Equal(1000))
		Expect(cfg.ServiceOrder()).To(Equal(config.RowMajor))
		Expect(cfg.Freq()).To(Equal(1 * sim.GHz))
		Expect(cfg.Validate()).To(Succeed())
	})

	It("should override only the given keys", func() {
		cfg := config.DefaultSimConfig()

		err := config.DecodeSimConfig(strings.NewReader(`
[Grid]
Width = 2
Order = "column"

[Run]
MaxTicks = 50
`), &cfg)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Grid.Width).To(Equal(2))
		Expect(cfg.Grid.Height).To(Equal(3))
		Expect(cfg.ServiceOrder()).To(Equal(config.ColumnMajor))
		Expect(cfg.Run.MaxTicks).To(Equal(50))
	})

	It("should reject unknown keys", func() {
		cfg := config.DefaultSimConfig()

		err := config.DecodeSimConfig(strings.NewReader("[Grid]\nDepth = 3\n"), &cfg)

		Expect(err).To(HaveOccurred())
	})

	It("should reject an unknown order", func() {
		cfg := config.DefaultSimConfig()

		err := config.DecodeSimConfig(strings.NewReader("[Grid]\nOrder = \"spiral\"\n"), &cfg)

		Expect(err).To(HaveOccurred())
	})

	It("should reject a non-positive tick budget", func() {
		cfg := config.DefaultSimConfig()
		cfg.Run.MaxTicks = 0

		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("should dump a config that decodes to itself", func() {
		cfg := config.DefaultSimConfig()
		cfg.Run.TraceFile = "trace.json"
		cfg.Run.FreqGHz = 1.5

		out, err := cfg.Dump()
		Expect(err).NotTo(HaveOccurred())

		var back config.SimConfig
		Expect(config.DecodeSimConfig(bytes.NewReader(out), &back)).To(Succeed())
		Expect(back).To(Equal(cfg))
	})
})
