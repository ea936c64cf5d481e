package main

// radixSteps runs an LSD radix sort in base 10 and yields after every digit.
// Values are keyed by their distance from the minimum so negatives sort too.
func radixSteps(d *SortingDemo, yield func(Step) bool) {
	if len(d.data) == 0 {
		return
	}
	minVal := d.data[0]
	for _, v := range d.data[1:] {
		if d.less(v, minVal) {
			minVal = v
		}
	}
	key := func(v int) uint64 {
		return uint64(v) - uint64(minVal)
	}

	var maxKey uint64
	for _, v := range d.data {
		maxKey = max(maxKey, key(v))
	}

	output := make([]int, len(d.data))
	pass := 0
	for exp := uint64(1); maxKey/exp > 0; exp *= 10 {
		var count [10]int
		for _, v := range d.data {
			count[(key(v)/exp)%10]++
		}
		for i := 1; i < len(count); i++ {
			count[i] += count[i-1]
		}
		for i := len(d.data) - 1; i >= 0; i-- {
			digit := (key(d.data[i]) / exp) % 10
			output[count[digit]-1] = d.data[i]
			count[digit]--
		}
		for i, v := range output {
			d.set(i, v)
		}

		if !d.emit(yield, pass, -1) {
			return
		}
		pass++
		if exp > maxKey/10 {
			return
		}
	}
}
