package node

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/edu-rossrobotics/cyphalnode/can"
)

var _ = Describe("IngressRing", func() {
	var ring *ingressRing

	BeforeEach(func() {
		ring = newIngressRing(8)
	})

	It("should drain frames in arrival order", func() {
		for i := 0; i < 4; i++ {
			ok := ring.enqueue(can.MakeFrame(
				uint32(i), []byte{byte(i)}, can.Microsecond(i)))
			Expect(ok).To(BeTrue())
		}

		var drained []uint32
		ring.drain(func(f can.Frame) {
			drained = append(drained, f.ID)
		})

		Expect(drained).To(Equal([]uint32{0, 1, 2, 3}))
	})

	It("should be empty after draining", func() {
		ring.enqueue(can.MakeFrame(1, nil, 0))
		ring.drain(func(can.Frame) {})

		count := 0
		ring.drain(func(can.Frame) { count++ })
		Expect(count).To(Equal(0))
	})

	It("should drop frames when full and count the drops", func() {
		rejected := false
		for i := 0; i < 100; i++ {
			if !ring.enqueue(can.MakeFrame(uint32(i), nil, 0)) {
				rejected = true
				break
			}
		}

		Expect(rejected).To(BeTrue())
		Expect(ring.droppedCount()).To(BeNumerically(">=", uint64(1)))
	})

	It("should accept new frames again after a drain", func() {
		for i := 0; i < 100; i++ {
			ring.enqueue(can.MakeFrame(uint32(i), nil, 0))
		}
		ring.drain(func(can.Frame) {})

		Expect(ring.enqueue(can.MakeFrame(42, nil, 0))).To(BeTrue())

		var drained []uint32
		ring.drain(func(f can.Frame) {
			drained = append(drained, f.ID)
		})
		Expect(drained).To(Equal([]uint32{42}))
	})
})
