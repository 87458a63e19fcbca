package can

// A Priority is the transfer priority level. Lower values win bus
// arbitration and transmit first.
type Priority uint8

// Transfer priority level mnemonics per the usual Cyphal recommendations.
// PriorityNominal is the default for outgoing transfers.
const (
	PriorityExceptional Priority = iota
	PriorityImmediate
	PriorityFast
	PriorityHigh
	PriorityNominal
	PriorityLow
	PrioritySlow
	PriorityOptional

	PriorityMax = PriorityOptional
)

var priorityNames = [...]string{
	"Exceptional",
	"Immediate",
	"Fast",
	"High",
	"Nominal",
	"Low",
	"Slow",
	"Optional",
}

// String returns the mnemonic of the priority level.
func (p Priority) String() string {
	if int(p) >= len(priorityNames) {
		return "Unknown"
	}

	return priorityNames[p]
}
