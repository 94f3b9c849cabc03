package governance

// Enumerate returns every proposal id below counter in ascending order.
func Enumerate(counter uint64) []uint64 {
	ids := make([]uint64, counter)
	for i := range ids {
		ids[i] = uint64(i)
	}
	return ids
}
