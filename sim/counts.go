package sim

import (
	"fmt"
	"sort"
	"strings"
)

// Counts maps an observed classical bitstring (most-significant classical
// bit first) to its occurrence frequency over a run's shots.
//
// Invariant: for any successful execution, Total() equals the requested
// shot count exactly.
type Counts map[string]int

// Total returns the sum of all frequencies.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Probability returns the empirical probability of the given bitstring,
// i.e. its frequency over Total(). Returns 0 for an empty Counts.
func (c Counts) Probability(key string) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c[key]) / float64(total)
}

// merge folds other into c.
func (c Counts) merge(other Counts) {
	for k, v := range other {
		c[k] += v
	}
}

// String renders the distribution in key order, e.g. {0: 512, 1: 488}.
func (c Counts) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %d", k, c[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
