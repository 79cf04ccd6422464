// Package ordering holds the pure order math for sibling sets (steps of
// one test case, test cases of one project). It never touches the store;
// persistence and transactions belong to pkg/mutation.
package ordering

import (
	"errors"
	"fmt"

	"github.com/thinhdnn/ai-test-management-sub002/pkg/idwrap"
)

var ErrIDNotFound = errors.New("ordering: id not found in sibling set")

// Position pairs a sibling id with its order value.
type Position struct {
	ID    idwrap.IDWrap
	Order int64
}

// ComputeReorder applies the caller-supplied absolute orders verbatim.
// Requested ids must all exist in the current sibling set; the requested
// order values are trusted as given and not renumbered, so a caller may
// submit non-contiguous orders on purpose.
func ComputeReorder(current []Position, requested []Position) ([]Position, error) {
	known := make(map[idwrap.IDWrap]struct{}, len(current))
	for _, pos := range current {
		known[pos.ID] = struct{}{}
	}

	result := make([]Position, 0, len(requested))
	for _, req := range requested {
		if _, ok := known[req.ID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrIDNotFound, req.ID.String())
		}
		result = append(result, Position{ID: req.ID, Order: req.Order})
	}
	return result, nil
}

// ComputeReindexAfterRemoval assigns a dense 1-based sequence to the
// remaining siblings, preserving their relative input order. Every
// deletion must be followed by this so the set never keeps gaps.
func ComputeReindexAfterRemoval(remaining []idwrap.IDWrap) []Position {
	result := make([]Position, 0, len(remaining))
	for i, id := range remaining {
		result = append(result, Position{ID: id, Order: int64(i) + 1})
	}
	return result
}

// ComputeAppendOrder returns the order for a sibling appended at the end
// of the set. currentMax is 0 for an empty set, which maps to order 1.
func ComputeAppendOrder(currentMax int64) int64 {
	if currentMax < 0 {
		currentMax = 0
	}
	return currentMax + 1
}
