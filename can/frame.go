package can

// Transport MTUs. The payload of a single frame never exceeds MTUMax.
const (
	MTUClassic = 8
	MTUFD      = 64
	MTUMax     = MTUFD
)

// A Frame is a single bus-level message, the unit of transport. Frames are
// immutable once captured and are passed by value, so a frame handed to
// the session from an interrupt context shares no memory with the driver.
type Frame struct {
	// ID is the 29-bit extended CAN identifier.
	ID uint32

	// Length is the number of valid payload bytes in Data.
	Length int

	Data [MTUMax]byte

	// Timestamp records when the frame was seen on the bus.
	Timestamp Microsecond
}

// MakeFrame captures a frame from driver-owned payload memory. The payload
// is copied and truncated at MTUMax bytes.
func MakeFrame(id uint32, payload []byte, timestamp Microsecond) Frame {
	f := Frame{
		ID:        id,
		Length:    len(payload),
		Timestamp: timestamp,
	}

	if f.Length > MTUMax {
		f.Length = MTUMax
	}

	copy(f.Data[:], payload[:f.Length])

	return f
}

// Payload returns the valid portion of the frame data.
func (f *Frame) Payload() []byte {
	return f.Data[:f.Length]
}

// A TransmitFunc hands one frame to the transport driver. It must not
// block: it returns true when the frame is accepted for transmission and
// false when the transport is busy, in which case the frame stays queued
// and is offered again on the next drain cycle.
type TransmitFunc func(frame Frame) bool
