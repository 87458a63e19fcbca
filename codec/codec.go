// Package codec declares the boundary between the node session and the
// external transfer codec, the library that reassembles transfers from
// frames and fragments transfers into frames. The session never touches
// the wire format itself: it feeds frames in, gets completed transfers
// out, and hands transfers to be serialized back as frame sequences.
package codec

import (
	"errors"

	"github.com/edu-rossrobotics/cyphalnode/can"
)

// A TransferKind distinguishes the three transfer categories of the
// protocol. The numeric values match the on-wire encoding.
type TransferKind uint8

const (
	// KindMessage is a multicast transfer, from publisher to all subscribers.
	KindMessage TransferKind = iota

	// KindResponse is a point-to-point transfer, from server to client.
	KindResponse

	// KindRequest is a point-to-point transfer, from client to server.
	KindRequest
)

var kindNames = [...]string{"Message", "Response", "Request"}

// String returns the name of the transfer kind.
func (k TransferKind) String() string {
	if int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k]
}

// TransferMetadata describes a transfer independently of its payload. The
// codec produces it on receive; the session constructs it on send.
type TransferMetadata struct {
	Priority     can.Priority
	Kind         TransferKind
	PortID       can.PortID
	RemoteNodeID can.NodeID
	TransferID   can.TransferID
}

// A Transfer is a fully reassembled protocol-level message. Payload memory
// is owned by the codec and must be returned with exactly one Free call
// once the transfer has been processed.
type Transfer struct {
	Metadata  TransferMetadata
	Timestamp can.Microsecond
	Payload   []byte
}

// RxState is opaque per-subscription reassembly state owned by the codec.
// The session stores it in the subscription registry and never inspects it.
type RxState interface{}

// Errors reported across the codec boundary. Implementations wrap these so
// the session can classify failures without knowing codec internals.
var (
	// ErrInvalidArgument reports malformed transfer metadata or payload
	// parameters passed by the caller.
	ErrInvalidArgument = errors.New("codec: invalid argument")

	// ErrOutOfMemory reports exhaustion of the codec's deterministic
	// allocation arena.
	ErrOutOfMemory = errors.New("codec: out of memory")
)

// Codec is the external transfer codec. Implementations reassemble
// incoming transfers from frames and fragment outgoing transfers into
// frames. All methods are called from the cooperative context only.
type Codec interface {
	// RxSubscribe registers interest in transfers of the given kind on the
	// given port and returns the codec-internal reassembly state for the
	// new subscription. Registration may fail on resource exhaustion.
	RxSubscribe(
		kind TransferKind,
		portID can.PortID,
		maxPayloadSize int,
	) (RxState, error)

	// RxUnsubscribe tears down the codec-internal state for a previous
	// registration.
	RxUnsubscribe(kind TransferKind, portID can.PortID) error

	// RxAccept feeds one frame into reassembly using the local node
	// address for destination filtering. A nil transfer with a nil error
	// means the frame was consumed toward a not-yet-complete transfer, or
	// carried no subscribed port. A returned transfer owns codec memory
	// that the caller must release with Free.
	RxAccept(frame can.Frame, localID can.NodeID) (*Transfer, error)

	// TxSerialize fragments one outgoing transfer into frames of at most
	// mtu payload bytes each. The frames carry the transfer's priority in
	// their identifiers.
	TxSerialize(
		meta TransferMetadata,
		payload []byte,
		mtu int,
	) ([]can.Frame, error)

	// Free returns the payload memory of a reassembled transfer to the
	// codec's arena. Must be called exactly once per transfer returned by
	// RxAccept.
	Free(t *Transfer)
}
