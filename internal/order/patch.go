package order

// ApplyPatch sets order indices verbatim from patch, keyed by record id, and
// returns the records whose index actually changed, in collection order.
// Records absent from patch and patch ids absent from records are ignored. The
// resulting indices are not checked for contiguity; the caller supplies a
// complete ordering for the records it touches.
func ApplyPatch[T Orderable](records []T, patch map[string]int) []T {
	if len(patch) == 0 {
		return nil
	}

	var changed []T
	for _, r := range records {
		idx, ok := patch[r.GetID()]
		if !ok || idx == r.GetOrderIndex() {
			continue
		}
		r.SetOrderIndex(idx)
		changed = append(changed, r)
	}
	return changed
}

// Snapshot captures the current order index of every record by id.
func Snapshot[T Orderable](records []T) map[string]int {
	snap := make(map[string]int, len(records))
	for _, r := range records {
		snap[r.GetID()] = r.GetOrderIndex()
	}
	return snap
}

// OrderChanges returns the records whose order index differs from before.
// Records missing from before are treated as changed.
func OrderChanges[T Orderable](before map[string]int, records []T) []T {
	var changed []T
	for _, r := range records {
		if idx, ok := before[r.GetID()]; ok && idx == r.GetOrderIndex() {
			continue
		}
		changed = append(changed, r)
	}
	return changed
}
