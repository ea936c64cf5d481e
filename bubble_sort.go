package main

// bubbleSteps yields after every pass and stops after the first pass without a swap.
func bubbleSteps(d *SortingDemo, yield func(Step) bool) {
	n := len(d.data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if d.less(d.data[j+1], d.data[j]) {
				d.Swap(j, j+1)
				swapped = true
			}
		}

		if !d.emit(yield, i, -1) || !swapped {
			return
		}
	}
}
