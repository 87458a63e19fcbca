package busrecording

import (
	"github.com/rs/xid"

	"github.com/edu-rossrobotics/cyphalnode/can"
	"github.com/edu-rossrobotics/cyphalnode/codec"
	"github.com/edu-rossrobotics/cyphalnode/node"
)

// TransferTrace is one row in the transfer trace table.
type TransferTrace struct {
	ID         string
	Node       string
	Event      string
	Kind       string
	Priority   string
	PortID     uint16
	RemoteNode uint8
	TransferID uint8
	PayloadLen int
	Timestamp  uint64
}

// FrameTrace is one row in the frame trace table.
type FrameTrace struct {
	ID        string
	Node      string
	Event     string
	CANID     uint32
	Length    int
	Timestamp uint64
}

// Table names used by the trace hook.
const (
	TransferTraceTable = "transfer_trace"
	FrameTraceTable    = "frame_trace"
)

// A TraceHook records node activity through a DataRecorder. Attach it to a
// node with AcceptHook.
type TraceHook struct {
	nodeName string
	recorder DataRecorder
}

// NewTraceHook creates the trace tables and returns a hook that fills
// them with the given node's traffic.
func NewTraceHook(nodeName string, recorder DataRecorder) *TraceHook {
	recorder.CreateTable(TransferTraceTable, TransferTrace{})
	recorder.CreateTable(FrameTraceTable, FrameTrace{})

	return &TraceHook{
		nodeName: nodeName,
		recorder: recorder,
	}
}

// Func records one hook firing.
func (h *TraceHook) Func(ctx node.HookCtx) {
	switch item := ctx.Item.(type) {
	case *codec.Transfer:
		h.recorder.InsertData(TransferTraceTable, TransferTrace{
			ID:         xid.New().String(),
			Node:       h.nodeName,
			Event:      ctx.Pos.Name,
			Kind:       item.Metadata.Kind.String(),
			Priority:   item.Metadata.Priority.String(),
			PortID:     uint16(item.Metadata.PortID),
			RemoteNode: uint8(item.Metadata.RemoteNodeID),
			TransferID: uint8(item.Metadata.TransferID),
			PayloadLen: len(item.Payload),
			Timestamp:  uint64(item.Timestamp),
		})
	case can.Frame:
		h.recorder.InsertData(FrameTraceTable, FrameTrace{
			ID:        xid.New().String(),
			Node:      h.nodeName,
			Event:     ctx.Pos.Name,
			CANID:     item.ID,
			Length:    item.Length,
			Timestamp: uint64(item.Timestamp),
		})
	}
}
