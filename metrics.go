package vector

// counters accumulate per-instance statistics. They stay with the Vector
// value and are not exchanged by Swap.
type counters struct {
	reallocations int
	relocations   int
	failures      int
}

// Bytes returns the size of the backing block in bytes.
func (v *Vector[T]) Bytes() int {
	return v.data.Bytes()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.data.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocations returns how many times the vector moved to a new block.
func (v *Vector[T]) Reallocations() int {
	return v.stats.reallocations
}

// Relocations returns the total number of elements moved or copied into
// new blocks.
func (v *Vector[T]) Relocations() int {
	return v.stats.relocations
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.size,
		Capacity:      v.data.Capacity(),
		Bytes:         v.Bytes(),
		Utilization:   v.Utilization(),
		Reallocations: v.stats.reallocations,
		Relocations:   v.stats.relocations,
		Failures:      v.stats.failures,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Slots in the backing block
	Bytes         int     // Backing block size in bytes
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
	Reallocations int     // Blocks replaced by growth, shrinking or relocating inserts
	Relocations   int     // Elements moved or copied into new blocks
	Failures      int     // Operations that returned an error
}
