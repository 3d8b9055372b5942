package bot

import "sort"

// ColumnOrder lists column indices center-out. Ties in distance go to the
// lower index, so width 7 gives [3 2 4 1 5 0 6].
type ColumnOrder []int

func NewColumnOrder(width int) ColumnOrder {
	order := make(ColumnOrder, width)
	for i := range order {
		order[i] = i
	}

	// distance is doubled so even widths stay in integers
	distance := func(col int) int {
		d := 2*col - (width - 1)
		if d < 0 {
			return -d
		}
		return d
	}
	sort.SliceStable(order, func(i, j int) bool {
		return distance(order[i]) < distance(order[j])
	})

	return order
}
