// Package roadmap - derived views over a built Matrix.
//
// These helpers answer the planning questions that precede a solve: which
// capabilities does a mission truly hinge on, and how contested is each
// capability across the portfolio. They are read-only and allocation-light.
package roadmap

// CriticalCapabilities returns, in column order, the names of the
// capabilities whose dependency for mission m is at or above threshold —
// the set the optimizer will force up to the operational floor when that
// mission executes.
//
// Out-of-range m yields nil (a mission the roadmap does not cover depends
// on nothing).
//
// Complexity: O(C).
func (rm *Matrix) CriticalCapabilities(m int, threshold float64) []string {
	if m < 0 || m >= len(rm.rows) {
		return nil
	}

	var out []string
	for c := range rm.capabilities {
		if rm.rows[m][c].Dependency >= threshold {
			out = append(out, rm.capabilities[c])
		}
	}

	return out
}

// UsageStats returns, per capability name, how many missions depend on it
// at or above threshold. Capabilities no mission depends on report 0, so
// the map always carries every capability.
//
// Complexity: O(M·C) time, O(C) space.
func (rm *Matrix) UsageStats(threshold float64) map[string]int {
	stats := make(map[string]int, len(rm.capabilities))

	var (
		m int
		c int
	)
	for c = 0; c < len(rm.capabilities); c++ {
		stats[rm.capabilities[c]] = 0
		for m = 0; m < len(rm.rows); m++ {
			if rm.rows[m][c].Dependency >= threshold {
				stats[rm.capabilities[c]]++
			}
		}
	}

	return stats
}
