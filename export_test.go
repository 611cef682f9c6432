package list

// Validate checks the ring invariants of l.
func Validate[V any](l *List[V]) error {
	return l.validate()
}
