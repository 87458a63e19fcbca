// Package node implements the session layer of a Cyphal/CAN node: it
// buffers frames arriving from the transport, demultiplexes reassembled
// transfers to subscribers by port id, correlates service responses with
// outstanding requests, sequences outgoing transfer ids per port, and
// drains serialized frames to the transport in strict priority order.
//
// All protocol processing happens inside Spin, which the owner calls
// periodically from a single cooperative context. OnFrameReceived is the
// one entry point safe to call concurrently from a higher-priority
// context such as a receive interrupt.
package node

import (
	"sync"

	"code.hybscloud.com/atomix"

	"github.com/edu-rossrobotics/cyphalnode/can"
	"github.com/edu-rossrobotics/cyphalnode/codec"
)

// A Node is one session endpoint on the bus.
//
// The counter accessors, NodeID, Subscriptions, and TxQueueSize are safe
// to call from any goroutine, so an external observer can inspect a live
// node while the cooperative context spins. Everything else belongs to
// the cooperative context.
type Node struct {
	HookableBase

	name     string
	nodeID   can.NodeID
	idLock   sync.RWMutex
	cdc      codec.Codec
	transmit can.TransmitFunc
	mtu      int

	ingress *ingressRing
	subs    *registry
	alloc   *transferIDAllocator
	egress  *egressQueue

	transfersDispatched atomix.Uint32
	transfersDiscarded  atomix.Uint32
	framesRejected      atomix.Uint32
	framesSent          atomix.Uint32
	dropsReported       uint64
}

// Name returns the name of the node.
func (n *Node) Name() string {
	return n.name
}

// NodeID returns the node's current bus address. Safe to call from any
// context.
func (n *Node) NodeID() can.NodeID {
	n.idLock.RLock()
	defer n.idLock.RUnlock()

	return n.nodeID
}

// SetNodeID updates the node's bus address, from the cooperative context.
// The new address applies to frames processed after the call;
// coordinating the change with in-flight transfers is the caller's
// responsibility.
func (n *Node) SetNodeID(id can.NodeID) {
	n.idLock.Lock()
	n.nodeID = id
	n.idLock.Unlock()
}

// Spin runs one cooperative processing cycle: every buffered incoming
// frame is fed through the codec and completed transfers are dispatched
// to their subscribers, then the egress queue is drained. Receive runs
// before transmit so a request observed in this cycle can be answered in
// the same cycle.
func (n *Node) Spin() {
	n.handleReceive()
	n.handleTransmit()
}

// OnFrameReceived captures one frame from the transport driver. It only
// performs a non-blocking enqueue and is the single entry point that may
// be called from an interrupt context concurrently with Spin. On a full
// ingress buffer the frame is dropped and false is returned; drops are
// counted and visible through FramesDropped.
func (n *Node) OnFrameReceived(frame can.Frame) bool {
	return n.ingress.enqueue(frame)
}

// Subscribe registers a callback for completed transfers of the given
// kind on the given port. A prior subscription on the same port is torn
// down and replaced. Returns the codec's error when registration is
// rejected, in which case the port ends up unsubscribed.
func (n *Node) Subscribe(
	kind codec.TransferKind,
	portID can.PortID,
	maxPayloadSize int,
	callback OnTransferReceived,
) error {
	if old, ok := n.subs.lookup(portID); ok {
		_ = n.cdc.RxUnsubscribe(old.Kind, portID)
		n.subs.remove(portID)
	}

	state, err := n.cdc.RxSubscribe(kind, portID, maxPayloadSize)
	if err != nil {
		return err
	}

	n.subs.set(&Subscription{
		Kind:       kind,
		PortID:     portID,
		Callback:   callback,
		CodecState: state,
	})

	return nil
}

// Unsubscribe deregisters the port with the codec and removes the
// registry entry. The entry is removed even when the codec call fails, so
// the registry never retains a dangling codec subscription; the codec's
// error is still returned.
func (n *Node) Unsubscribe(kind codec.TransferKind, portID can.PortID) error {
	err := n.cdc.RxUnsubscribe(kind, portID)
	n.subs.remove(portID)

	return err
}

// Subscribed reports whether a subscription currently exists for the port.
func (n *Node) Subscribed(portID can.PortID) bool {
	_, ok := n.subs.lookup(portID)
	return ok
}

// Subscriptions returns a snapshot of the registry contents, published
// when the registry last changed. Safe to call from any context; callers
// must not modify the returned slice.
func (n *Node) Subscriptions() []Subscription {
	return n.subs.snapshot()
}

// NextTransferID issues the next outgoing transfer id for the port:
// 0 for a port never used before, then the previous id plus one modulo
// can.TransferIDModulo.
func (n *Node) NextTransferID(portID can.PortID) can.TransferID {
	return n.alloc.next(portID)
}

// EnqueueTransfer serializes one outgoing transfer at nominal priority
// and inserts its frames into the egress queue. The frames go out during
// subsequent Spin cycles. Fails with the codec's error on serialization
// problems, or ErrTxQueueFull when the queue cannot take the whole
// transfer, in which case no frame of it is enqueued.
func (n *Node) EnqueueTransfer(
	remoteNodeID can.NodeID,
	kind codec.TransferKind,
	portID can.PortID,
	transferID can.TransferID,
	payload []byte,
) error {
	return n.EnqueueTransferWithPriority(can.PriorityNominal,
		remoteNodeID, kind, portID, transferID, payload)
}

// EnqueueTransferWithPriority is EnqueueTransfer with an explicit
// transfer priority.
func (n *Node) EnqueueTransferWithPriority(
	priority can.Priority,
	remoteNodeID can.NodeID,
	kind codec.TransferKind,
	portID can.PortID,
	transferID can.TransferID,
	payload []byte,
) error {
	meta := codec.TransferMetadata{
		Priority:     priority,
		Kind:         kind,
		PortID:       portID,
		RemoteNodeID: remoteNodeID,
		TransferID:   transferID,
	}

	frames, err := n.cdc.TxSerialize(meta, payload, n.mtu)
	if err != nil {
		return err
	}

	if err := n.egress.push(frames, priority); err != nil {
		return err
	}

	if n.NumHooks() > 0 {
		n.InvokeHook(HookCtx{
			Domain: n,
			Pos:    HookPosTransferEnqueued,
			Item:   meta,
			Detail: len(frames),
		})
	}

	return nil
}

// FramesDropped returns the number of incoming frames dropped on a full
// ingress buffer. Safe to read from any context.
func (n *Node) FramesDropped() uint64 {
	return n.ingress.droppedCount()
}

// TransfersDispatched returns the number of transfers handed to
// subscriber callbacks. Safe to read from any context.
func (n *Node) TransfersDispatched() uint64 {
	return uint64(n.transfersDispatched.Load())
}

// TransfersDiscarded returns the number of reassembled transfers dropped
// for lack of a subscriber or failed response correlation. Safe to read
// from any context.
func (n *Node) TransfersDiscarded() uint64 {
	return uint64(n.transfersDiscarded.Load())
}

// FramesRejected returns the number of incoming frames the codec refused
// to process. Safe to read from any context.
func (n *Node) FramesRejected() uint64 {
	return uint64(n.framesRejected.Load())
}

// FramesSent returns the number of frames accepted by the transmit
// function. Safe to read from any context.
func (n *Node) FramesSent() uint64 {
	return uint64(n.framesSent.Load())
}

// TxQueueSize returns the number of frames pending transmission. Safe to
// read from any context.
func (n *Node) TxQueueSize() int {
	return n.egress.size()
}

func (n *Node) handleReceive() {
	n.ingress.drain(n.receiveOne)
	n.reportDrops()
}

// reportDrops surfaces frames lost on the arrival path. The arrival
// context only counts drops, so the hook fires here, carrying the number
// of frames lost since the previous cycle.
func (n *Node) reportDrops() {
	dropped := n.ingress.droppedCount()
	if dropped == n.dropsReported {
		return
	}

	delta := dropped - n.dropsReported
	n.dropsReported = dropped

	if n.NumHooks() > 0 {
		n.InvokeHook(HookCtx{
			Domain: n,
			Pos:    HookPosFramesDropped,
			Detail: delta,
		})
	}
}

func (n *Node) receiveOne(frame can.Frame) {
	transfer, err := n.cdc.RxAccept(frame, n.nodeID)
	if err != nil {
		n.rejectFrame(frame, err)
		return
	}

	if transfer == nil {
		return
	}

	defer n.cdc.Free(transfer)

	sub, ok := n.subs.lookup(transfer.Metadata.PortID)
	if !ok {
		n.discard(transfer)
		return
	}

	if transfer.Metadata.Kind == codec.KindResponse {
		n.dispatchResponse(sub, transfer)
		return
	}

	n.dispatch(sub, transfer)
}

// dispatchResponse applies request/response correlation: the response is
// delivered only when a request was issued on the port and its transfer
// id matches. A delivered response tears down its subscription, one
// response per request.
func (n *Node) dispatchResponse(sub *Subscription, t *codec.Transfer) {
	pending, ok := n.alloc.pending(t.Metadata.PortID)
	if !ok || pending != t.Metadata.TransferID {
		n.discard(t)
		return
	}

	n.dispatch(sub, t)
	_ = n.Unsubscribe(codec.KindResponse, t.Metadata.PortID)
}

// rejectFrame records a frame the codec refused. No transfer exists yet,
// so there is nothing to free or dispatch.
func (n *Node) rejectFrame(frame can.Frame, err error) {
	n.framesRejected.Add(1)

	if n.NumHooks() > 0 {
		n.InvokeHook(HookCtx{
			Domain: n,
			Pos:    HookPosFrameRejected,
			Item:   frame,
			Detail: err,
		})
	}
}

func (n *Node) dispatch(sub *Subscription, t *codec.Transfer) {
	sub.Callback(t, n)
	n.transfersDispatched.Add(1)

	if n.NumHooks() > 0 {
		n.InvokeHook(HookCtx{
			Domain: n,
			Pos:    HookPosTransferDispatched,
			Item:   t,
		})
	}
}

func (n *Node) discard(t *codec.Transfer) {
	n.transfersDiscarded.Add(1)

	if n.NumHooks() > 0 {
		n.InvokeHook(HookCtx{
			Domain: n,
			Pos:    HookPosTransferDiscarded,
			Item:   t,
		})
	}
}

func (n *Node) handleTransmit() {
	for n.transmitOne() {
	}
}

// transmitOne offers the highest-priority pending frame to the transmit
// function. A busy transport leaves the frame queued and ends the drain
// for this cycle; the same frame is offered again on the next Spin.
func (n *Node) transmitOne() bool {
	if n.transmit == nil {
		return false
	}

	frame, ok := n.egress.peek()
	if !ok {
		return false
	}

	if !n.transmit(frame) {
		if n.NumHooks() > 0 {
			n.InvokeHook(HookCtx{
				Domain: n,
				Pos:    HookPosTransmitBlocked,
				Item:   frame,
			})
		}

		return false
	}

	n.egress.pop()
	n.framesSent.Add(1)

	if n.NumHooks() > 0 {
		n.InvokeHook(HookCtx{
			Domain: n,
			Pos:    HookPosFrameSent,
			Item:   frame,
		})
	}

	return true
}
