// Package can defines the bus-level vocabulary shared by the session layer
// and its collaborators: frames, transfer priorities, and the identifier
// ranges of the Cyphal/CAN transport.
package can
