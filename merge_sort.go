package main

import "slices"

// mergeSteps runs top-down merge sort and yields after every merge.
func mergeSteps(d *SortingDemo, yield func(Step) bool) {
	pass := 0
	var sortRange func(lo, hi int) bool
	sortRange = func(lo, hi int) bool {
		if hi-lo < 2 {
			return true
		}
		mid := lo + (hi-lo)/2
		if !sortRange(lo, mid) || !sortRange(mid, hi) {
			return false
		}
		d.merge(lo, mid, hi)
		ok := d.emit(yield, pass, -1)
		pass++
		return ok
	}
	sortRange(0, len(d.data))
}

// merge combines the sorted runs [lo,mid) and [mid,hi)
func (d *SortingDemo) merge(lo, mid, hi int) {
	left := slices.Clone(d.data[lo:mid])
	right := slices.Clone(d.data[mid:hi])

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if d.less(left[i], right[j]) {
			d.set(k, left[i])
			i++
		} else {
			d.set(k, right[j])
			j++
		}
		k++
	}
	for ; i < len(left); i++ {
		d.set(k, left[i])
		k++
	}
	for ; j < len(right); j++ {
		d.set(k, right[j])
		k++
	}
}
