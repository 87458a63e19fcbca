package node

import (
	"sync"

	"github.com/edu-rossrobotics/cyphalnode/can"
	"github.com/edu-rossrobotics/cyphalnode/codec"
)

// OnTransferReceived is invoked synchronously during Spin when a complete
// transfer arrives for a subscribed port. The transfer's payload is only
// valid for the duration of the call; the callback must copy what it
// keeps. Callbacks must not call back into Spin.
type OnTransferReceived func(t *codec.Transfer, n *Node)

// A Subscription is one registry entry: the callback registered for a
// port together with the codec-internal reassembly state created for it.
type Subscription struct {
	Kind       codec.TransferKind
	PortID     can.PortID
	Callback   OnTransferReceived
	CodecState codec.RxState
}

// registry maps a port id to its subscription. Port ids are unique keys:
// a second subscription on the same port replaces the first. The map is
// mutated and looked up only from the cooperative context; every mutation
// also publishes a copied slice so other goroutines can snapshot the
// contents without touching the live map.
type registry struct {
	subs map[can.PortID]*Subscription

	publishedLock sync.RWMutex
	published     []Subscription
}

func newRegistry() *registry {
	return &registry{
		subs:      make(map[can.PortID]*Subscription),
		published: []Subscription{},
	}
}

func (r *registry) set(sub *Subscription) {
	r.subs[sub.PortID] = sub
	r.publish()
}

func (r *registry) lookup(portID can.PortID) (*Subscription, bool) {
	sub, ok := r.subs[portID]
	return sub, ok
}

func (r *registry) remove(portID can.PortID) {
	delete(r.subs, portID)
	r.publish()
}

func (r *registry) size() int {
	return len(r.subs)
}

// publish replaces the snapshot with a fresh copy of the map. A published
// slice is never mutated afterwards, so snapshot can hand it out as is.
func (r *registry) publish() {
	subs := make([]Subscription, 0, len(r.subs))
	for _, sub := range r.subs {
		subs = append(subs, *sub)
	}

	r.publishedLock.Lock()
	r.published = subs
	r.publishedLock.Unlock()
}

// snapshot returns the subscriptions as of the last mutation. Safe to
// call from any context; callers must not modify the result.
func (r *registry) snapshot() []Subscription {
	r.publishedLock.RLock()
	defer r.publishedLock.RUnlock()

	return r.published
}
