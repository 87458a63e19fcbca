package can

// A NodeID is the address of a node on the bus.
type NodeID uint8

// A PortID addresses a transfer stream. Subject ports carry broadcast
// messages, service ports carry request/response pairs.
type PortID uint16

// A TransferID is a wrapping sequence number that distinguishes successive
// transfers on the same port from the same sender.
type TransferID uint8

// A Microsecond is a monotonic timestamp provided by the transport driver.
type Microsecond uint64

// Parameter ranges are inclusive. The lower bound is zero for all.
const (
	SubjectIDMax PortID = 8191
	ServiceIDMax PortID = 511
	NodeIDMax    NodeID = 127

	// NodeIDUnset marks a node that has no address assigned yet, or a
	// broadcast destination for outgoing message transfers.
	NodeIDUnset NodeID = 255

	// TransferIDBitLength is the width of the on-wire transfer-id field.
	TransferIDBitLength = 5

	// TransferIDModulo is the modulus of the per-port transfer-id sequence.
	TransferIDModulo TransferID = 1 << TransferIDBitLength
)

// IsSet reports whether the node id holds a valid assigned address.
func (id NodeID) IsSet() bool {
	return id <= NodeIDMax
}
