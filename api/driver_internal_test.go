package api

import (
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tisgrid/cgra"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl   *gomock.Controller
		mockDevice *MockDevice
		driver     *driverImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())

		mockDevice = NewMockDevice(mockCtrl)

		driver = &driverImpl{
			device:   mockDevice,
			maxTicks: 10,
		}
		driver.TickingComponent =
			sim.NewTickingComponent("Driver", nil, 1, driver)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should handle FeedIn API", func() {
		s1 := NewMockStream(mockCtrl)
		s2 := NewMockStream(mockCtrl)
		s3 := NewMockStream(mockCtrl)

		mockDevice.EXPECT().AttachSource(cgra.Up, 0, []int{1, 4}).Return(s1)
		mockDevice.EXPECT().AttachSource(cgra.Up, 1, []int{2, 5}).Return(s2)
		mockDevice.EXPECT().AttachSource(cgra.Up, 2, []int{3, 6}).Return(s3)

		data := []int{1, 2, 3, 4, 5, 6}

		driver.FeedIn(data, cgra.Up, [2]int{0, 3}, 3)

		Expect(driver.feedInTasks).To(HaveLen(1))
		Expect(driver.feedInTasks[0].streams).
			To(Equal([]cgra.Stream{s1, s2, s3}))
	})

	It("should reject a non-positive stride", func() {
		Expect(func() {
			driver.FeedIn([]int{1, 2}, cgra.Up, [2]int{0, 1}, 0)
		}).To(PanicWith(ContainSubstring("invalid stride 0")))
		Expect(func() {
			driver.Collect(make([]int, 2), cgra.Down, [2]int{0, 1}, -1)
		}).To(PanicWith(ContainSubstring("invalid stride -1")))
		Expect(driver.feedInTasks).To(BeEmpty())
		Expect(driver.collectTasks).To(BeEmpty())
	})

	It("should reject a collect too short for one round", func() {
		Expect(func() {
			driver.Collect(make([]int, 2), cgra.Right, [2]int{0, 3}, 3)
		}).To(PanicWith(ContainSubstring("one round of stride 3")))
		Expect(driver.collecting).To(BeFalse())
	})

	It("should handle Collect API", func() {
		s1 := NewMockStream(mockCtrl)
		s2 := NewMockStream(mockCtrl)

		mockDevice.EXPECT().AttachSink(cgra.Right, 1, 3).Return(s1)
		mockDevice.EXPECT().AttachSink(cgra.Right, 2, 3).Return(s2)

		data := make([]int, 6)

		driver.Collect(data, cgra.Right, [2]int{1, 3}, 2)

		Expect(driver.collectTasks).To(HaveLen(1))
		Expect(driver.collectTasks[0].streams).
			To(Equal([]cgra.Stream{s1, s2}))
		Expect(driver.collectTasks[0].copied).To(Equal([]int{0, 0}))
		Expect(driver.collecting).To(BeTrue())
	})

	It("should drop finished feed in tasks", func() {
		s1 := NewMockStream(mockCtrl)
		s1.EXPECT().Done().Return(true)

		driver.feedInTasks = []*feedInTask{
			{streams: []cgra.Stream{s1}},
		}

		mockDevice.EXPECT().Step()

		Expect(driver.Tick()).To(BeTrue())
		Expect(driver.feedInTasks).To(BeEmpty())
	})

	It("should do collect", func() {
		s1 := NewMockStream(mockCtrl)
		s2 := NewMockStream(mockCtrl)

		data := make([]int, 4)

		driver.collectTasks = []*collectTask{
			{
				data:    data,
				streams: []cgra.Stream{s1, s2},
				copied:  []int{0, 0},
				stride:  2,
			},
		}
		driver.collecting = true

		s1.EXPECT().Values().Return([]int{7}).AnyTimes()
		s2.EXPECT().Values().Return([]int{8}).AnyTimes()
		s1.EXPECT().Done().Return(false).AnyTimes()
		mockDevice.EXPECT().Step()

		Expect(driver.Tick()).To(BeTrue())
		Expect(data).To(Equal([]int{7, 8, 0, 0}))
		Expect(driver.collectTasks).To(HaveLen(1))
	})

	It("should stop once everything is collected", func() {
		s1 := NewMockStream(mockCtrl)

		data := make([]int, 2)

		driver.collectTasks = []*collectTask{
			{
				data:    data,
				streams: []cgra.Stream{s1},
				copied:  []int{1},
				stride:  1,
			},
		}
		driver.collecting = true
		data[0] = 3

		s1.EXPECT().Values().Return([]int{3, 4}).AnyTimes()
		s1.EXPECT().Done().Return(true).AnyTimes()
		mockDevice.EXPECT().Step()

		Expect(driver.Tick()).To(BeFalse())
		Expect(data).To(Equal([]int{3, 4}))
		Expect(driver.collectTasks).To(BeEmpty())
	})

	It("should stop at the tick budget", func() {
		driver.maxTicks = 2

		mockDevice.EXPECT().Step().Times(2)

		Expect(driver.Tick()).To(BeTrue())
		Expect(driver.Tick()).To(BeFalse())
		Expect(driver.Tick()).To(BeFalse())
		Expect(driver.Ticks()).To(Equal(uint64(2)))
	})

	It("should split a program into lines", func() {
		mockDevice.EXPECT().
			MapProgram([]string{"MOV UP, ACC", "", "NOP"}, 1, 2).
			Return(nil)

		err := driver.MapProgram("MOV UP, ACC\n\nNOP\n", [2]int{1, 2})

		Expect(err).NotTo(HaveOccurred())
	})
})
