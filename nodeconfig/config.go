// Package nodeconfig loads node construction parameters from TOML files,
// so deployments can tune bus addresses, MTU, and queue capacities without
// recompiling.
package nodeconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/edu-rossrobotics/cyphalnode/can"
	"github.com/edu-rossrobotics/cyphalnode/node"
)

// Config holds the tunable construction parameters of a node.
type Config struct {
	Name            string `toml:"name"`
	NodeID          uint8  `toml:"node_id"`
	MTUBytes        int    `toml:"mtu_bytes"`
	TxQueueCapacity int    `toml:"tx_queue_capacity"`
	RxQueueCapacity int    `toml:"rx_queue_capacity"`
}

// Default returns the configuration a node is built with when no file is
// given: an unset node id, classic-CAN MTU, default queue capacities.
func Default() Config {
	return Config{
		Name:            "Node",
		NodeID:          uint8(can.NodeIDUnset),
		MTUBytes:        can.MTUClassic,
		TxQueueCapacity: node.DefaultTxQueueCapacity,
		RxQueueCapacity: node.DefaultRxQueueCapacity,
	}
}

// Load reads a TOML file and overlays it on the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("nodeconfig: load %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the parameter ranges.
func (c Config) Validate() error {
	if c.MTUBytes <= 0 || c.MTUBytes > can.MTUMax {
		return fmt.Errorf("nodeconfig: mtu_bytes %d out of range [1, %d]",
			c.MTUBytes, can.MTUMax)
	}

	if c.TxQueueCapacity <= 0 {
		return fmt.Errorf("nodeconfig: tx_queue_capacity %d must be positive",
			c.TxQueueCapacity)
	}

	if c.RxQueueCapacity <= 0 {
		return fmt.Errorf("nodeconfig: rx_queue_capacity %d must be positive",
			c.RxQueueCapacity)
	}

	if id := can.NodeID(c.NodeID); !id.IsSet() && id != can.NodeIDUnset {
		return fmt.Errorf("nodeconfig: node_id %d out of range [0, %d]",
			c.NodeID, can.NodeIDMax)
	}

	return nil
}

// Builder returns a node builder preloaded with this configuration. The
// caller still supplies the codec and transmit function.
func (c Config) Builder() node.Builder {
	return node.MakeBuilder().
		WithNodeID(can.NodeID(c.NodeID)).
		WithMTU(c.MTUBytes).
		WithTxQueueCapacity(c.TxQueueCapacity).
		WithRxQueueCapacity(c.RxQueueCapacity)
}
