package node

import (
	"container/heap"
	"errors"

	"code.hybscloud.com/atomix"

	"github.com/edu-rossrobotics/cyphalnode/can"
)

// ErrTxQueueFull reports that serializing a transfer would exceed the
// egress queue's frame capacity. No frame of the transfer is enqueued.
var ErrTxQueueFull = errors.New("node: egress queue full")

// egressEntry is one frame pending transmission. seq preserves enqueue
// order among frames of equal priority.
type egressEntry struct {
	frame    can.Frame
	priority can.Priority
	seq      uint64
}

// egressQueue is a bounded priority queue of outgoing frames. Lower
// priority values transmit first; frames of equal priority transmit in
// enqueue order. Mutated only from the cooperative context; depth mirrors
// the heap length so size can be read from any context.
type egressQueue struct {
	capacity int
	nextSeq  uint64
	entries  egressHeap
	depth    atomix.Uint32
}

func newEgressQueue(capacity int) *egressQueue {
	q := &egressQueue{capacity: capacity}
	heap.Init(&q.entries)

	return q
}

// push inserts the frames of one serialized transfer, all or nothing: if
// the batch would exceed capacity, nothing is enqueued and ErrTxQueueFull
// is returned.
func (q *egressQueue) push(frames []can.Frame, priority can.Priority) error {
	if len(q.entries)+len(frames) > q.capacity {
		return ErrTxQueueFull
	}

	for _, frame := range frames {
		heap.Push(&q.entries, egressEntry{
			frame:    frame,
			priority: priority,
			seq:      q.nextSeq,
		})
		q.nextSeq++
	}

	q.depth.Add(uint32(len(frames)))

	return nil
}

// peek returns the highest-priority pending frame without removing it.
func (q *egressQueue) peek() (can.Frame, bool) {
	if len(q.entries) == 0 {
		return can.Frame{}, false
	}

	return q.entries[0].frame, true
}

// pop removes the highest-priority pending frame.
func (q *egressQueue) pop() {
	if len(q.entries) > 0 {
		heap.Pop(&q.entries)
		q.depth.Add(^uint32(0)) // decrement
	}
}

// size is safe to read from any context.
func (q *egressQueue) size() int {
	return int(q.depth.Load())
}

type egressHeap []egressEntry

func (h egressHeap) Len() int {
	return len(h)
}

// Less orders by priority first, lower value first, then by enqueue
// sequence so equal-priority frames stay FIFO.
func (h egressHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h egressHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *egressHeap) Push(x interface{}) {
	entry := x.(egressEntry)
	*h = append(*h, entry)
}

func (h *egressHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]

	return entry
}
