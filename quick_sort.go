package main

// quickSteps runs quicksort with the last element as pivot and yields after every partition.
func quickSteps(d *SortingDemo, yield func(Step) bool) {
	pass := 0
	var sortRange func(lo, hi int) bool
	sortRange = func(lo, hi int) bool {
		if lo >= hi {
			return true
		}
		p := d.partition(lo, hi)
		if !d.emit(yield, pass, -1) {
			return false
		}
		pass++
		return sortRange(lo, p-1) && sortRange(p+1, hi)
	}
	sortRange(0, len(d.data)-1)
}

// partition moves everything not greater than d.data[hi] before it and returns the pivot index
func (d *SortingDemo) partition(lo, hi int) int {
	pivot := d.data[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if !d.less(pivot, d.data[j]) {
			i++
			d.Swap(i, j)
		}
	}
	d.Swap(i+1, hi)
	return i + 1
}
