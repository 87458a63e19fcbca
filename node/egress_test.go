package node

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/edu-rossrobotics/cyphalnode/can"
)

func frameWithID(id uint32) []can.Frame {
	return []can.Frame{can.MakeFrame(id, nil, 0)}
}

var _ = Describe("EgressQueue", func() {
	var q *egressQueue

	BeforeEach(func() {
		q = newEgressQueue(8)
	})

	It("should transmit lower priority values first", func() {
		Expect(q.push(frameWithID(1), can.PriorityLow)).To(Succeed())
		Expect(q.push(frameWithID(2), can.PriorityHigh)).To(Succeed())
		Expect(q.push(frameWithID(3), can.PriorityLow)).To(Succeed())

		var order []uint32
		for {
			frame, ok := q.peek()
			if !ok {
				break
			}
			order = append(order, frame.ID)
			q.pop()
		}

		Expect(order).To(Equal([]uint32{2, 1, 3}))
	})

	It("should keep equal-priority frames in enqueue order", func() {
		for i := 0; i < 5; i++ {
			Expect(q.push(frameWithID(uint32(i)), can.PriorityNominal)).
				To(Succeed())
		}

		for i := 0; i < 5; i++ {
			frame, ok := q.peek()
			Expect(ok).To(BeTrue())
			Expect(frame.ID).To(Equal(uint32(i)))
			q.pop()
		}
	})

	It("should keep multi-frame transfers in order within a priority", func() {
		frames := []can.Frame{
			can.MakeFrame(10, nil, 0),
			can.MakeFrame(11, nil, 0),
			can.MakeFrame(12, nil, 0),
		}
		Expect(q.push(frames, can.PriorityNominal)).To(Succeed())

		for _, want := range []uint32{10, 11, 12} {
			frame, _ := q.peek()
			Expect(frame.ID).To(Equal(want))
			q.pop()
		}
	})

	It("should reject a transfer that does not fit, enqueuing nothing", func() {
		Expect(q.push(frameWithID(1), can.PriorityNominal)).To(Succeed())

		frames := make([]can.Frame, 8)
		Expect(q.push(frames, can.PriorityNominal)).
			To(MatchError(ErrTxQueueFull))
		Expect(q.size()).To(Equal(1))
	})

	It("should report empty state through peek", func() {
		_, ok := q.peek()
		Expect(ok).To(BeFalse())
		Expect(q.size()).To(Equal(0))

		q.pop()
		Expect(q.size()).To(Equal(0))
	})
})
