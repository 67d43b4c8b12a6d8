// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import "fmt"

// Config bundles the tunables of the daware algorithm. The zero Config is
// not ready to use; call SetDefaults or DefaultConfig first.
type Config struct {
	// InsertionThreshold is the range length at or below which quick
	// switches to insertion sort.
	InsertionThreshold int `json:"insertionThreshold"`

	// InduceThreshold controls how eagerly induce repartitions a
	// to-be-induced band instead of falling through to the linear
	// upper/lower induction scans. The band is repartitioned while
	// (e-b)*InduceThreshold < (b-a)+(f-e).
	InduceThreshold int32 `json:"induceThreshold"`

	// ScratchThreshold is the minimum range length, at or above which
	// copy-assisted sorting is attempted, provided a large enough
	// scratch buffer is available.
	ScratchThreshold int `json:"scratchThreshold"`

	// ScratchCapacity bounds the size of the scratch buffer daware
	// allocates for copy-assisted sorting. Ranges larger than this
	// fall back to sorting sa in place.
	ScratchCapacity int `json:"scratchCapacity"`

	// UseCopy enables copy-assisted sorting in daware's group descent
	// and induction phases.
	UseCopy bool `json:"useCopy"`
}

// DefaultConfig returns a Config with the tunables set to the values daware
// uses when none are supplied.
func DefaultConfig() Config {
	c := Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills zero-valued fields with their defaults.
func (c *Config) SetDefaults() {
	if c.InsertionThreshold == 0 {
		c.InsertionThreshold = 32
	}
	if c.InduceThreshold == 0 {
		c.InduceThreshold = 2
	}
	if c.ScratchThreshold == 0 {
		c.ScratchThreshold = 1024
	}
	if c.ScratchCapacity == 0 {
		c.ScratchCapacity = 64 * 1024
	}
}

// Verify checks that the Config is usable, returning an error describing
// the first problem found.
func (c Config) Verify() error {
	if c.InsertionThreshold < 0 {
		return fmt.Errorf("suffix: InsertionThreshold=%d must be >= 0",
			c.InsertionThreshold)
	}
	if c.InduceThreshold <= 0 {
		return fmt.Errorf("suffix: InduceThreshold=%d must be > 0",
			c.InduceThreshold)
	}
	if c.ScratchThreshold < 0 {
		return fmt.Errorf("suffix: ScratchThreshold=%d must be >= 0",
			c.ScratchThreshold)
	}
	if c.ScratchCapacity < 0 {
		return fmt.Errorf("suffix: ScratchCapacity=%d must be >= 0",
			c.ScratchCapacity)
	}
	return nil
}

// Clone returns a copy of c.
func (c Config) Clone() Config { return c }
