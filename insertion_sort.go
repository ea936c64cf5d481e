package main

// insertionSteps shifts each element left past larger ones and yields once it is placed.
func insertionSteps(d *SortingDemo, yield func(Step) bool) {
	for i := 1; i < len(d.data); i++ {
		current := d.data[i]
		pos := i
		for pos > 0 && d.less(current, d.data[pos-1]) {
			d.set(pos, d.data[pos-1])
			pos--
		}
		d.set(pos, current)

		if !d.emit(yield, i-1, -1) {
			return
		}
	}
}
