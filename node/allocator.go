package node

import (
	"github.com/edu-rossrobotics/cyphalnode/can"
)

// transferIDAllocator hands out the per-port transfer-id sequence for
// transfers this node originates. Each port counts independently:
// 0, 1, ..., TransferIDModulo-1, 0, ...
//
// The table of last-issued ids doubles as the pending-request record: an
// incoming response is accepted only when its transfer id equals the last
// id issued for its port. Issuing a new request on a port before the
// previous response resolves silently supersedes the pending record.
type transferIDAllocator struct {
	last map[can.PortID]can.TransferID
}

func newTransferIDAllocator() *transferIDAllocator {
	return &transferIDAllocator{
		last: make(map[can.PortID]can.TransferID),
	}
}

// next returns 0 for a port never seen before, otherwise the previously
// issued id plus one modulo TransferIDModulo, and records the returned
// value as the new last-issued id for the port.
func (a *transferIDAllocator) next(portID can.PortID) can.TransferID {
	id := can.TransferID(0)
	if prev, ok := a.last[portID]; ok {
		id = (prev + 1) % can.TransferIDModulo
	}

	a.last[portID] = id

	return id
}

// pending returns the last-issued transfer id for the port, if any.
func (a *transferIDAllocator) pending(
	portID can.PortID,
) (can.TransferID, bool) {
	id, ok := a.last[portID]
	return id, ok
}
