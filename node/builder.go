package node

import (
	"github.com/edu-rossrobotics/cyphalnode/can"
	"github.com/edu-rossrobotics/cyphalnode/codec"
)

// DefaultTxQueueCapacity is the egress frame capacity used when the
// builder is not given one.
const DefaultTxQueueCapacity = 100

// Builder can help building nodes.
type Builder struct {
	nodeID   can.NodeID
	cdc      codec.Codec
	transmit can.TransmitFunc
	txCap    int
	rxCap    int
	mtu      int
}

// MakeBuilder creates a builder with the default configuration: an unset
// node id, classic-CAN MTU, and default queue capacities.
func MakeBuilder() Builder {
	return Builder{
		nodeID: can.NodeIDUnset,
		txCap:  DefaultTxQueueCapacity,
		rxCap:  DefaultRxQueueCapacity,
		mtu:    can.MTUClassic,
	}
}

// WithNodeID sets the bus address of the node to build.
func (b Builder) WithNodeID(id can.NodeID) Builder {
	b.nodeID = id
	return b
}

// WithCodec sets the transfer codec the node forwards frames to.
func (b Builder) WithCodec(c codec.Codec) Builder {
	b.cdc = c
	return b
}

// WithTransmitFunc sets the function that hands outgoing frames to the
// transport driver.
func (b Builder) WithTransmitFunc(f can.TransmitFunc) Builder {
	b.transmit = f
	return b
}

// WithTxQueueCapacity sets the egress queue capacity in frames.
func (b Builder) WithTxQueueCapacity(capacity int) Builder {
	b.txCap = capacity
	return b
}

// WithRxQueueCapacity sets the ingress buffer capacity in frames.
func (b Builder) WithRxQueueCapacity(capacity int) Builder {
	b.rxCap = capacity
	return b
}

// WithMTU sets the maximum frame payload size handed to the codec when
// serializing outgoing transfers.
func (b Builder) WithMTU(mtu int) Builder {
	b.mtu = mtu
	return b
}

// Build creates the node. It panics when no codec is given or a capacity
// is not positive; these are construction mistakes, not runtime failures.
func (b Builder) Build(name string) *Node {
	if b.cdc == nil {
		panic("node: no codec given")
	}

	if b.txCap <= 0 || b.rxCap <= 0 {
		panic("node: queue capacities must be positive")
	}

	if b.mtu <= 0 || b.mtu > can.MTUMax {
		panic("node: invalid mtu")
	}

	return &Node{
		name:     name,
		nodeID:   b.nodeID,
		cdc:      b.cdc,
		transmit: b.transmit,
		mtu:      b.mtu,
		ingress:  newIngressRing(b.rxCap),
		subs:     newRegistry(),
		alloc:    newTransferIDAllocator(),
		egress:   newEgressQueue(b.txCap),
	}
}
