package node

import (
	"github.com/rs/zerolog"

	"github.com/edu-rossrobotics/cyphalnode/can"
	"github.com/edu-rossrobotics/cyphalnode/codec"
)

// A LogHook writes hook firings through a structured logger. Attach one
// with AcceptHook to trace a node's traffic; a node with no hooks pays
// nothing on the processing path.
type LogHook struct {
	logger zerolog.Logger
}

// NewLogHook creates a hook that logs node activity at debug level.
func NewLogHook(logger zerolog.Logger) *LogHook {
	return &LogHook{logger: logger}
}

// Func logs one hook firing.
func (h *LogHook) Func(ctx HookCtx) {
	switch item := ctx.Item.(type) {
	case *codec.Transfer:
		h.logger.Debug().
			Str("pos", ctx.Pos.Name).
			Str("kind", item.Metadata.Kind.String()).
			Uint16("port", uint16(item.Metadata.PortID)).
			Uint8("remote", uint8(item.Metadata.RemoteNodeID)).
			Uint8("transfer_id", uint8(item.Metadata.TransferID)).
			Msg("transfer")
	case codec.TransferMetadata:
		frames, _ := ctx.Detail.(int)
		h.logger.Debug().
			Str("pos", ctx.Pos.Name).
			Str("kind", item.Kind.String()).
			Uint16("port", uint16(item.PortID)).
			Str("priority", item.Priority.String()).
			Int("frames", frames).
			Msg("transfer enqueued")
	case can.Frame:
		ev := h.logger.Debug()
		if ctx.Pos == HookPosFrameRejected {
			ev = h.logger.Warn()
			if err, ok := ctx.Detail.(error); ok {
				ev = ev.Err(err)
			}
		}
		ev.Str("pos", ctx.Pos.Name).
			Uint32("can_id", item.ID).
			Int("len", item.Length).
			Msg("frame")
	default:
		if ctx.Pos == HookPosFramesDropped {
			count, _ := ctx.Detail.(uint64)
			h.logger.Warn().
				Str("pos", ctx.Pos.Name).
				Uint64("count", count).
				Msg("ingress frames dropped")
		}
	}
}
