package node

// HookPos defines the enum of possible hooking positions.
type HookPos struct {
	Name string
}

// HookPosTransferDispatched marks when a reassembled transfer is handed to
// a subscriber callback.
var HookPosTransferDispatched = &HookPos{Name: "Transfer Dispatched"}

// HookPosTransferDiscarded marks when a reassembled transfer is dropped,
// either because no subscriber exists for its port or because a response
// failed request correlation.
var HookPosTransferDiscarded = &HookPos{Name: "Transfer Discarded"}

// HookPosTransferEnqueued marks when an outgoing transfer has been
// serialized into the egress queue.
var HookPosTransferEnqueued = &HookPos{Name: "Transfer Enqueued"}

// HookPosFrameSent marks when the transmit function accepts a frame.
var HookPosFrameSent = &HookPos{Name: "Frame Sent"}

// HookPosTransmitBlocked marks when the transmit function reports busy and
// egress draining stops for the cycle.
var HookPosTransmitBlocked = &HookPos{Name: "Transmit Blocked"}

// HookPosFramesDropped marks the start of a processing cycle that found
// frames lost on a full ingress buffer. The arrival path only counts
// drops, so the hook fires from the cooperative context with the number
// of frames lost since the previous cycle in Detail.
var HookPosFramesDropped = &HookPos{Name: "Frames Dropped"}

// HookPosFrameRejected marks when the codec refuses an incoming frame.
// Item carries the frame and Detail the codec's error.
var HookPosFrameRejected = &HookPos{Name: "Frame Rejected"}

// HookCtx is the context that holds all the information about the site
// that a hook is triggered.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accepts Hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)
}

// Hook is a short piece of program that can be invoked by a hookable
// object. Hooks fire from the cooperative context only, never from the
// frame-arrival path.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other types that
// implement the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.Hooks)
}

// InvokeHook triggers the registered Hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
