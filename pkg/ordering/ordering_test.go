package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
	"github.com/thinhdnn/ai-test-management-sub002/pkg/ordering"
)

func TestComputeReorderAppliesRequestedOrdersVerbatim(t *testing.T) {
	a, b, c := idwrap.NewNow(), idwrap.NewNow(), idwrap.NewNow()
	current := []ordering.Position{
		{ID: a, Order: 1},
		{ID: b, Order: 2},
		{ID: c, Order: 3},
	}
	requested := []ordering.Position{
		{ID: c, Order: 1},
		{ID: a, Order: 5},
		{ID: b, Order: 9},
	}

	result, err := ordering.ComputeReorder(current, requested)
	require.NoError(t, err)
	require.Len(t, result, 3)

	// Non-contiguous orders are kept as given, not renumbered.
	assert.Equal(t, requested, result)
}

func TestComputeReorderAcceptsSubsetOfSiblings(t *testing.T) {
	a, b := idwrap.NewNow(), idwrap.NewNow()
	current := []ordering.Position{
		{ID: a, Order: 1},
		{ID: b, Order: 2},
	}

	result, err := ordering.ComputeReorder(current, []ordering.Position{{ID: b, Order: 7}})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, b, result[0].ID)
	assert.Equal(t, int64(7), result[0].Order)
}

func TestComputeReorderUnknownID(t *testing.T) {
	a := idwrap.NewNow()
	current := []ordering.Position{{ID: a, Order: 1}}
	requested := []ordering.Position{{ID: idwrap.NewNow(), Order: 1}}

	result, err := ordering.ComputeReorder(current, requested)
	require.ErrorIs(t, err, ordering.ErrIDNotFound)
	assert.Nil(t, result)
}

func TestComputeReindexAfterRemoval(t *testing.T) {
	a, b, c := idwrap.NewNow(), idwrap.NewNow(), idwrap.NewNow()

	result := ordering.ComputeReindexAfterRemoval([]idwrap.IDWrap{b, a, c})
	require.Len(t, result, 3)
	assert.Equal(t, ordering.Position{ID: b, Order: 1}, result[0])
	assert.Equal(t, ordering.Position{ID: a, Order: 2}, result[1])
	assert.Equal(t, ordering.Position{ID: c, Order: 3}, result[2])
}

func TestComputeReindexAfterRemovalEmpty(t *testing.T) {
	result := ordering.ComputeReindexAfterRemoval(nil)
	assert.Empty(t, result)
}

func TestComputeAppendOrder(t *testing.T) {
	assert.Equal(t, int64(1), ordering.ComputeAppendOrder(0))
	assert.Equal(t, int64(6), ordering.ComputeAppendOrder(5))
	// Negative max never comes out of the store but must not underflow
	// the 1-based sequence.
	assert.Equal(t, int64(1), ordering.ComputeAppendOrder(-3))
}
