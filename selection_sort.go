package main

// selectionSteps swaps the leftmost minimum of the unsorted suffix into place on every
// pass, even when it is already there, and yields after each swap.
func selectionSteps(d *SortingDemo, yield func(Step) bool) {
	for i := 0; i < len(d.data)-1; i++ {
		smallest := i
		for j := i + 1; j < len(d.data); j++ {
			if d.less(d.data[j], d.data[smallest]) {
				smallest = j
			}
		}

		d.Swap(i, smallest)
		if !d.emit(yield, i, smallest) {
			return
		}
	}
}
