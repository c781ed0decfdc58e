package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPatch_OnlyTouchesPatchedRecords(t *testing.T) {
	in := tasks("A", "B", "C", "D", "E")

	changed := ApplyPatch(in, map[string]int{"B": 3, "D": 1})

	require.Len(t, changed, 2)
	assert.Equal(t, []string{"B", "D"}, ids(changed))
	assert.Equal(t, []int{0, 3, 2, 1, 4}, indices(in))
}

func TestApplyPatch_UnchangedValuesAreNotReported(t *testing.T) {
	in := tasks("A", "B", "C")

	changed := ApplyPatch(in, map[string]int{"A": 0, "C": 1, "B": 2})

	assert.Equal(t, []string{"B", "C"}, ids(changed))
	assert.Equal(t, []int{0, 2, 1}, indices(in))
}

func TestApplyPatch_UnknownIDsIgnored(t *testing.T) {
	in := tasks("A", "B")

	changed := ApplyPatch(in, map[string]int{"ghost": 0})

	assert.Empty(t, changed)
	assert.Equal(t, []int{0, 1}, indices(in))
}

func TestApplyPatch_EmptyPatch(t *testing.T) {
	in := tasks("A", "B")

	assert.Empty(t, ApplyPatch(in, nil))
	assert.Empty(t, ApplyPatch(in, map[string]int{}))
	assert.Equal(t, []int{0, 1}, indices(in))
}

func TestApplyPatch_Lists(t *testing.T) {
	in := []*folder{{id: "X", index: 0}, {id: "Y", index: 1}, {id: "Z", index: 2}}

	changed := ApplyPatch(in, map[string]int{"X": 2, "Z": 0})

	assert.Equal(t, []string{"X", "Z"}, ids(changed))
	assert.Equal(t, []int{2, 1, 0}, indices(in))
}

func TestOrderChanges(t *testing.T) {
	in := tasks("A", "B", "C+", "D")
	before := Snapshot(in)

	seq := Build(in)
	seq.MoveNode("D", 0)
	seq.ReassignContiguousIndices()
	out := seq.ToSlice()

	changed := OrderChanges(before, out)
	assert.Equal(t, []string{"D", "A", "B", "C"}, ids(changed))

	assert.Empty(t, OrderChanges(Snapshot(out), out))
}

func TestOrderChanges_NewRecordCountsAsChanged(t *testing.T) {
	in := tasks("A", "B")
	before := Snapshot(in)
	in = append(in, &task{id: "C", index: 2})

	assert.Equal(t, []string{"C"}, ids(OrderChanges(before, in)))
}
