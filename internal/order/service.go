package order

import (
	"github.com/dmehra2102/todoboard/internal/domain"
	"go.uber.org/zap"
)

// Service is the entry point used by the write path. Every method rewrites the
// caller's slice in place (same length, same backing array) and touches
// nothing but element order and order indices.
type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// ReorderItems moves an item to newIndex and then re-buckets the list so that
// incomplete items stay above completed ones, whatever index was requested.
// An unknown id still re-buckets but moves nothing.
func (s *Service) ReorderItems(items []*domain.Item, movedID string, newIndex int) {
	seq := Build(items)
	if !seq.MoveNode(movedID, newIndex) {
		s.logger.Debug("move skipped, item not in list",
			zap.String("item_id", movedID),
			zap.Int("new_index", newIndex),
		)
	}
	seq.PartitionByCompletion()
	copy(items, seq.ToSlice())
}

// ReorderLists moves a list to newIndex. Lists have no completion state, so
// the result is a plain move followed by renumbering.
func (s *Service) ReorderLists(lists []*domain.TodoList, movedID string, newIndex int) {
	seq := Build(lists)
	if !seq.MoveNode(movedID, newIndex) {
		s.logger.Debug("move skipped, list not in workspace",
			zap.String("list_id", movedID),
			zap.Int("new_index", newIndex),
		)
	}
	seq.ReassignContiguousIndices()
	copy(lists, seq.ToSlice())
}

// RebucketItems applies the completion partition without moving anything.
func (s *Service) RebucketItems(items []*domain.Item) {
	seq := Build(items)
	seq.PartitionByCompletion()
	copy(items, seq.ToSlice())
}

// RemoveAndCompact drops the record with the given id and renumbers the rest
// 0..n-1 in their current order. The caller's slice is left as it was; the
// survivors are returned. An unknown id only renumbers.
func RemoveAndCompact[T Orderable](records []T, id string) []T {
	seq := Build(records)
	seq.Remove(id)
	seq.ReassignContiguousIndices()
	return seq.ToSlice()
}
