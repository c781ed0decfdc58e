// Package order maintains stable, gap-free order indices over the collections
// a user reorders by hand: items within a list and lists within a workspace.
package order

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotContiguous is returned by CheckContiguous when a collection's order
// indices are not exactly 0..n-1.
var ErrNotContiguous = errors.New("order indices are not contiguous")

// Orderable is anything with a stable id and a mutable order index.
type Orderable interface {
	GetID() string
	GetOrderIndex() int
	SetOrderIndex(int)
}

// Completable is an Orderable that can be done. Sequences partition these so
// that incomplete records come first.
type Completable interface {
	Orderable
	IsDone() bool
}

// Sequence is an ordered view over a caller-supplied collection. It holds its
// own copy of the slice; the records themselves are shared, so index updates
// are visible to the caller.
type Sequence[T Orderable] struct {
	records []T
}

// Build creates a sequence in the given order. An empty input yields an empty
// sequence.
func Build[T Orderable](records []T) *Sequence[T] {
	s := &Sequence[T]{records: make([]T, len(records))}
	copy(s.records, records)
	return s
}

// IndexOf returns the current position of id, or -1.
func (s *Sequence[T]) IndexOf(id string) int {
	for i, r := range s.records {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}

// MoveNode removes the record with the given id and reinserts it at target.
// target is clamped to [0, n-1]: negative values insert at the head and values
// past the end append. It reports false, leaving the sequence untouched, when
// id is not present. Order indices are not renumbered; call
// ReassignContiguousIndices afterwards.
func (s *Sequence[T]) MoveNode(id string, target int) bool {
	from := s.IndexOf(id)
	if from < 0 {
		return false
	}

	target = clamp(target, len(s.records)-1)
	if target == from {
		return true
	}

	moving := s.records[from]
	if from < target {
		copy(s.records[from:target], s.records[from+1:target+1])
	} else {
		copy(s.records[target+1:from+1], s.records[target:from])
	}
	s.records[target] = moving
	return true
}

// Remove drops the record with the given id without renumbering.
func (s *Sequence[T]) Remove(id string) bool {
	idx := s.IndexOf(id)
	if idx < 0 {
		return false
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return true
}

// ReassignContiguousIndices sets every record's order index to its position.
func (s *Sequence[T]) ReassignContiguousIndices() {
	for i, r := range s.records {
		r.SetOrderIndex(i)
	}
}

// PartitionByCompletion moves done records behind the incomplete ones,
// keeping the relative order inside both groups, then renumbers. Records that
// do not implement Completable count as incomplete.
func (s *Sequence[T]) PartitionByCompletion() {
	pending := make([]T, 0, len(s.records))
	var done []T
	for _, r := range s.records {
		if c, ok := any(r).(Completable); ok && c.IsDone() {
			done = append(done, r)
			continue
		}
		pending = append(pending, r)
	}
	s.records = append(pending, done...)
	s.ReassignContiguousIndices()
}

// ToSlice returns the records in current order as a fresh slice.
func (s *Sequence[T]) ToSlice() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// SortByOrderIndex stable-sorts records by their current order index.
func SortByOrderIndex[T Orderable](records []T) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].GetOrderIndex() < records[j].GetOrderIndex()
	})
}

// CheckContiguous verifies that the order indices of records are exactly
// {0, ..., n-1} with no duplicates.
func CheckContiguous[T Orderable](records []T) error {
	seen := make([]bool, len(records))
	for _, r := range records {
		idx := r.GetOrderIndex()
		if idx < 0 || idx >= len(records) {
			return fmt.Errorf("%w: %s has index %d in a collection of %d", ErrNotContiguous, r.GetID(), idx, len(records))
		}
		if seen[idx] {
			return fmt.Errorf("%w: index %d used twice", ErrNotContiguous, idx)
		}
		seen[idx] = true
	}
	return nil
}

func clamp(target, last int) int {
	if target < 0 {
		return 0
	}
	if target > last {
		return last
	}
	return target
}
