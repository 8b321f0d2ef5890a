// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package arena

// Cap returns the total capacity of the block in bytes.
func (a *Arena) Cap() int { return len(a.block) }

// Free returns the number of bytes still available for allocation.
func (a *Arena) Free() int { return len(a.block) - int(a.top) }

// Utilization returns the ratio of reserved bytes to capacity, from 0 to 1.
// An arena with no capacity reports 0.
func (a *Arena) Utilization() float64 {
	if len(a.block) == 0 {
		return 0
	}
	return float64(a.top) / float64(len(a.block))
}

// Metrics returns a snapshot of the usage of a.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		InUse:       a.Top(),
		Capacity:    a.Cap(),
		Free:        a.Free(),
		Utilization: a.Utilization(),
	}
}

// Metrics records usage statistics for an arena.
type Metrics struct {
	InUse       int     // bytes reserved, including padding
	Capacity    int     // total bytes in the block
	Free        int     // bytes still available
	Utilization float64 // InUse / Capacity
}
