package node

import (
	"errors"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"

	"github.com/edu-rossrobotics/cyphalnode/can"
)

// DefaultRxQueueCapacity is the ingress ring capacity used when the
// builder is not given one.
const DefaultRxQueueCapacity = 32

// ingressRing decouples frame arrival from protocol processing. The
// producer side may run in an interrupt or other high-priority context
// concurrently with the consumer; the ring is a bounded lock-free
// single-producer single-consumer queue, so neither side ever blocks.
type ingressRing struct {
	ring    lfq.SPSC[can.Frame]
	dropped atomix.Uint32
}

func newIngressRing(capacity int) *ingressRing {
	r := &ingressRing{}
	r.ring.Init(capacity)

	return r
}

// enqueue inserts one frame without blocking. On a full ring the frame is
// dropped, the drop counter is incremented, and false is returned.
func (r *ingressRing) enqueue(frame can.Frame) bool {
	slot := frame
	if err := r.ring.Enqueue(&slot); err != nil {
		if errors.Is(err, iox.ErrWouldBlock) {
			r.dropped.Add(1)
		}

		return false
	}

	return true
}

// drain dequeues every buffered frame in arrival order, invoking fn once
// per frame, until the ring is empty.
func (r *ingressRing) drain(fn func(frame can.Frame)) {
	for {
		frame, err := r.ring.Dequeue()
		if err != nil {
			return
		}

		fn(frame)
	}
}

// droppedCount returns the number of frames dropped on a full ring since
// construction. Safe to read from any context.
func (r *ingressRing) droppedCount() uint64 {
	return uint64(r.dropped.Load())
}
