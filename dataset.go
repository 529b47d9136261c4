package tally

// A Dataset is an ordered, immutable sequence of Records. Implementations must
// not be mutated while a reduction is running: workers read from it concurrently
// without any locking.
type Dataset interface {
	Len() int                       // Len returns the number of Records in this Dataset
	Window(start, end int) []Record // Window returns a borrowed, read-only view of the Records in [start, end)
	Fingerprint() uint64            // Fingerprint returns a hash of the Dataset's content, computed at construction
}
